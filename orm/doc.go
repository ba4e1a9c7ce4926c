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

// Package orm models the errors a data-mapping layer reports.
//
// Three kinds exist:
//
//   - *Error: a failed query or model operation with its own HTTP status
//     and a reason phrase;
//   - *ValidationError: one or more attributes violated model rules;
//   - *UsageError: the ORM was called incorrectly.
//
// Drivers (see dirpx.dev/ormerrors/driver/...) lift their native errors into
// these kinds through a Converter so the translator only has to understand
// this package.
package orm
