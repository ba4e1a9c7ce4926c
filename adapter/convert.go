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


package adapter

import (
	"net/http"

	"dirpx.dev/ormerrors"
	"dirpx.dev/ormerrors/apis"
)

// InternalMessage replaces the message of every 5xx payload.
const InternalMessage = "An internal server error occurred"

// ToPayload converts a normalized error into its public HTTP body.
//
// The error text is the standard status text. For 5xx statuses the message
// is replaced with InternalMessage; the original stays on e for logging.
// Validation problems are copied so the payload does not alias e.
func ToPayload(e *ormerrors.Error) apis.Payload {
	if e == nil {
		return apis.Payload{}
	}
	status := e.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}
	p := apis.Payload{
		StatusCode: status,
		Error:      http.StatusText(status),
		Message:    e.Message,
	}
	if p.Error == "" {
		p.Error = "Unknown"
	}
	if status >= http.StatusInternalServerError {
		p.Message = InternalMessage
	}
	if len(e.Validation) > 0 {
		p.Validation = append([]apis.FieldProblem(nil), e.Validation...)
	}
	return p
}

// ToDescriptor converts a normalized error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging or message bus
// propagation. Unlike ToPayload it keeps the internal message.
func ToDescriptor(e *ormerrors.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	d := apis.ErrorDescriptor{
		Code:           string(e.Code),
		Reason:         string(e.Reason),
		Kind:           e.Kind().String(),
		HTTPStatus:     st.HTTP,
		GRPCCode:       int(st.GRPC),
		Message:        e.Message,
		DeveloperFault: e.DeveloperFault,
	}
	if d.HTTPStatus == 0 {
		d.HTTPStatus = e.StatusCode
	}
	seen := make(map[string]struct{}, len(e.Validation))
	for _, p := range e.Validation {
		if _, ok := seen[p.Field]; ok {
			continue
		}
		seen[p.Field] = struct{}{}
		d.Fields = append(d.Fields, p.Field)
	}
	return d
}
