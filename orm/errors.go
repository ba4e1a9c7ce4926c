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

package orm

import (
	"fmt"
	"net/http"
)

// Defaults applied to an Error that leaves Status or Reason unset.
const (
	DefaultStatus = http.StatusInternalServerError
	DefaultReason = "Encountered an unexpected error"
)

// Error is a generic ORM failure carrying the HTTP status the ORM chose.
type Error struct {
	// Status is the HTTP status. Zero means DefaultStatus.
	Status int

	// Reason is a short phrase describing the failure. Empty means
	// DefaultReason.
	Reason string

	// Err is the adapter error that caused this one, if any.
	Err error
}

// New returns an Error with the given status and reason.
func New(status int, reason string) *Error {
	return &Error{Status: status, Reason: reason}
}

// Wrap returns an Error caused by err.
func Wrap(err error, status int, reason string) *Error {
	return &Error{Status: status, Reason: reason, Err: err}
}

// HTTPStatus returns Status or DefaultStatus.
func (e *Error) HTTPStatus() int {
	if e.Status == 0 {
		return DefaultStatus
	}
	return e.Status
}

// ReasonPhrase returns Reason or DefaultReason.
func (e *Error) ReasonPhrase() string {
	if e.Reason == "" {
		return DefaultReason
	}
	return e.Reason
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.ReasonPhrase() + ": " + e.Err.Error()
	}
	return e.ReasonPhrase()
}

func (e *Error) Unwrap() error { return e.Err }

// ValidationError reports attribute-level rule violations.
type ValidationError struct {
	// Model optionally names the model that failed validation.
	Model string

	// Attributes maps attribute names to their violations in the order the
	// ORM reported them. Nil means the ORM attached no mapping at all.
	Attributes *Attributes

	// Reason overrides the default error text.
	Reason string
}

// NewValidation returns a ValidationError over attrs.
func NewValidation(attrs *Attributes) *ValidationError {
	return &ValidationError{Attributes: attrs}
}

func (e *ValidationError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = "validation failed"
	}
	if e.Model != "" {
		msg = e.Model + ": " + msg
	}
	if n := e.Attributes.Len(); n > 0 {
		msg = fmt.Sprintf("%s (%d invalid attribute(s): %v)", msg, n, e.Attributes.Names())
	}
	return msg
}

// UsageError reports a call the ORM rejected because the caller used it
// incorrectly: unknown model, malformed criteria, bad struct mapping.
type UsageError struct {
	Reason string
	Err    error
}

// NewUsage returns a UsageError with the given reason.
func NewUsage(reason string) *UsageError {
	return &UsageError{Reason: reason}
}

func (e *UsageError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = "invalid usage"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *UsageError) Unwrap() error { return e.Err }
