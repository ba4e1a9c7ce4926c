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

package apis

// FieldProblem is one record of a validation failure: a single violated rule
// on a single attribute.
//
// The JSON shape follows the GitHub-style 422 body:
//
//	{"resource": "user", "field": "email", "code": "unique"}
type FieldProblem struct {
	// Resource names the entity the attribute belongs to. Omitted when the
	// caller did not supply one.
	Resource string `json:"resource,omitempty"`

	// Field is the attribute name. Always set.
	Field string `json:"field"`

	// Code is the violated rule identifier. Omitted when the ORM did not
	// name the rule.
	Code string `json:"code,omitempty"`
}
