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

// Payload is the public HTTP body of a normalized error.
//
// The shape is compatible with hapi/boom output payloads so existing clients
// can consume it unchanged:
//
//	{
//	  "statusCode": 422,
//	  "error": "Unprocessable Entity",
//	  "message": "Validation Failed",
//	  "validation": [{"field": "email", "code": "unique"}]
//	}
type Payload struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`

	// Validation is present only when at least one problem was collected.
	Validation []FieldProblem `json:"validation,omitempty"`
}

// PayloadProvider is implemented by errors that can render their own public
// HTTP body.
type PayloadProvider interface {
	error

	Payload() Payload
}
