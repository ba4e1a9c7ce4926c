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
	"fmt"
	"net/http"
	"slices"

	"dirpx.dev/ormerrors/apis"
	"dirpx.dev/ormerrors/code"
	"dirpx.dev/ormerrors/reason"
)

// Error is the normalized error handed to the HTTP or gRPC layer.
//
// It carries:
//   - StatusCode: the HTTP status to answer with;
//   - Message: human-readable description (internal for 5xx, see adapter);
//   - Validation: per-field problems, only for validation failures;
//   - Code / Reason: machine-readable classification;
//   - DeveloperFault: set when our own code is to blame;
//   - Data: diagnostic context attached on developer faults;
//   - Cause: the original error, for errors.Is / errors.As.
//
// All With* helpers return a shallow copy; an Error is never mutated after
// it is returned by the translator.
type Error struct {
	Code       code.Code
	Reason     reason.Reason
	StatusCode int
	Message    string

	// Validation is nil unless at least one problem was collected.
	Validation []apis.FieldProblem

	// DeveloperFault marks failures attributable to application logic so
	// logging and monitoring can tell them apart from bad input.
	DeveloperFault bool

	// Data holds the value that could not be classified, if any. It is
	// never interpreted.
	Data any

	Cause error
}

var (
	_ apis.CodedError       = (*Error)(nil)
	_ apis.ReasonedError    = (*Error)(nil)
	_ apis.StatusCoder      = (*Error)(nil)
	_ apis.ValidatedError   = (*Error)(nil)
	_ apis.DeveloperFaulter = (*Error)(nil)
)

// E builds an Error with code c and message msg, then applies opts. When
// no option sets a status, it is resolved from c through the default
// mapper.
//
//	return ormerrors.E(code.Conflict, "email already taken",
//	    ormerrors.WithReasonOption(reason.Upstream),
//	)
func E(c code.Code, msg string, opts ...Option) *Error {
	e := &Error{Code: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	if e.StatusCode == 0 {
		e.StatusCode = defaultMapper.HTTPStatus(e.Code, e.Reason)
	}
	return e
}

// BadData returns a 422 validation failure listing problems.
func BadData(msg string, problems ...apis.FieldProblem) *Error {
	return E(code.Unprocessable, msg,
		WithReasonOption(reason.Validation),
		WithStatusOption(http.StatusUnprocessableEntity),
		WithValidationOption(problems),
	)
}

// BadImplementation returns a 500 developer fault. data is attached as
// diagnostic context.
func BadImplementation(msg string, data any) *Error {
	return E(code.Internal, msg,
		WithStatusOption(http.StatusInternalServerError),
		WithDataOption(data),
		DeveloperFaultOption(),
	)
}

// Wrap returns an error answering with status and caused by err. The code
// is classified from status and an empty msg takes err's text.
func Wrap(err error, status int, msg string) *Error {
	if msg == "" && err != nil {
		msg = err.Error()
	}
	return E(defaultMapper.CodeFor(status), msg,
		WithStatusOption(status),
		WithCauseOption(err),
	)
}

// Error implements error as "<code>: <message>" or
// "<code>:<reason>: <message>".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s:%s: %s", e.Code, e.Reason, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) ErrorCode() string { return string(e.Code) }

func (e *Error) ErrorReason() string { return string(e.Reason) }

func (e *Error) HTTPStatus() int { return e.StatusCode }

func (e *Error) ValidationProblems() []apis.FieldProblem { return e.Validation }

func (e *Error) IsDeveloperFault() bool { return e.DeveloperFault }

// WithReason returns a copy of e with r set.
func (e *Error) WithReason(r reason.Reason) *Error {
	cp := *e
	cp.Reason = r
	return &cp
}

// WithMessage returns a copy of e with a replaced message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithStatus returns a copy of e answering with status.
func (e *Error) WithStatus(status int) *Error {
	cp := *e
	cp.StatusCode = status
	return &cp
}

// WithValidation returns a copy of e with problems appended. The backing
// array is always copied.
func (e *Error) WithValidation(problems ...apis.FieldProblem) *Error {
	if len(problems) == 0 {
		return e
	}
	cp := *e
	cp.Validation = append(slices.Clone(e.Validation), problems...)
	return &cp
}

// WithData returns a copy of e carrying diagnostic data.
func (e *Error) WithData(data any) *Error {
	cp := *e
	cp.Data = data
	return &cp
}

// WithCause returns a copy of e wrapping err. A nil err returns e.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
