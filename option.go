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

package ormerrors

import (
	"dirpx.dev/ormerrors/apis"
	"dirpx.dev/ormerrors/reason"
)

// Option transforms an Error under construction. Intended for E(...).
type Option func(*Error) *Error

// WithReasonOption sets the reason.
func WithReasonOption(r reason.Reason) Option {
	return func(e *Error) *Error { return e.WithReason(r) }
}

// WithStatusOption sets the HTTP status explicitly.
func WithStatusOption(status int) Option {
	return func(e *Error) *Error { return e.WithStatus(status) }
}

// WithValidationOption appends validation problems.
func WithValidationOption(problems []apis.FieldProblem) Option {
	return func(e *Error) *Error { return e.WithValidation(problems...) }
}

// WithDataOption attaches diagnostic data.
func WithDataOption(data any) Option {
	return func(e *Error) *Error { return e.WithData(data) }
}

// WithCauseOption attaches a cause.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error { return e.WithCause(err) }
}

// DeveloperFaultOption flags the error as a developer fault.
func DeveloperFaultOption() Option {
	return func(e *Error) *Error {
		cp := *e
		cp.DeveloperFault = true
		return &cp
	}
}
