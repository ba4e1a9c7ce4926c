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


// Package ormerrors translates errors raised by a data-mapping layer into
// normalized HTTP errors.
//
// Translate accepts any value and always returns a usable *Error:
//
//   - an *Error passes through unchanged;
//   - an *orm.Error keeps the status and reason the ORM chose;
//   - an *orm.ValidationError becomes a 422 with one FieldProblem per
//     violation, optionally labelled with a resource and restricted to an
//     allow-list of attributes;
//   - anything else (usage errors, unknown errors, non-error values) becomes
//     a 500 flagged as a developer fault.
//
// Driver errors (pgx, validator, DynamoDB) are lifted into ORM kinds by the
// converters under driver/, registered with WithConverters. Serialization to
// HTTP and gRPC lives in httpx and grpcx.
package ormerrors
