/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package mapper resolves normalized error codes and reasons into HTTP and
// gRPC statuses, and classifies HTTP statuses reported by ORMs back into
// codes.
//
// # Resolution
//
// A Mapper resolves a (code, reason) pair in this order:
//
//  1. exact override for the code;
//  2. deepest reason-prefix rule for the code ("*" matches one segment);
//  3. code default;
//  4. fallback (500 / codes.Internal).
//
// The defaults send code.Unprocessable to 422 and code.Internal to 500, which
// is what the translator relies on for validation failures and developer
// faults. A service that prefers 400 for validation can say so:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPPrefix(code.Unprocessable, "orm.validation", http.StatusBadRequest),
//	)
//
// # Classification
//
// CodeFor maps a status carried by an ORM error (for example 409 from a
// unique-index clash) to a code. Unknown 4xx statuses classify as
// code.Invalid, anything else as code.Internal.
//
// # Immutability
//
// New copies every input. The result is safe for concurrent use.
package mapper
