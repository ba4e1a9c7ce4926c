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

// ErrorDescriptor is a flat record of one normalized error, meant for
// structured logs and message buses. Unlike Payload it keeps the internal
// message and the developer-fault flag.
type ErrorDescriptor struct {
	Code       string `json:"code"`
	Reason     string `json:"reason,omitempty"`
	Kind       string `json:"kind,omitempty"`
	HTTPStatus int    `json:"http_status"`
	GRPCCode   int    `json:"grpc_code,omitempty"`
	Message    string `json:"message,omitempty"`

	// DeveloperFault is true when the failure is attributable to our code.
	DeveloperFault bool `json:"developer_fault,omitempty"`

	// Fields lists the attribute names that failed validation, in order,
	// without duplicates.
	Fields []string `json:"fields,omitempty"`
}
