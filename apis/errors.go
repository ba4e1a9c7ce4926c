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

// CodedError is an error classified into a machine-readable code.
type CodedError interface {
	error

	// ErrorCode returns the canonical code, e.g. "unprocessable".
	ErrorCode() string
}

// ReasonedError refines its code with a dot-separated reason such as
// "orm.validation". The reason may be empty.
type ReasonedError interface {
	error

	ErrorReason() string
}

// StatusCoder is implemented by errors that already know their HTTP status.
type StatusCoder interface {
	HTTPStatus() int
}

// ValidatedError exposes per-field validation problems.
//
// Implementations return nil when there is nothing to report. The returned
// slice must not be modified by the caller.
type ValidatedError interface {
	error

	ValidationProblems() []FieldProblem
}

// DeveloperFaulter reports whether an error is attributable to application
// logic rather than to the caller's input. Loggers use it to separate
// "our fault" from "bad request".
type DeveloperFaulter interface {
	IsDeveloperFault() bool
}
