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

	"dirpx.dev/ormerrors/apis"
	"dirpx.dev/ormerrors/code"
	"dirpx.dev/ormerrors/mapper"
	"dirpx.dev/ormerrors/orm"
	"dirpx.dev/ormerrors/reason"
)

// Default messages.
const (
	ValidationMessage = "Validation Failed"
	NonErrorMessage   = "Could not convert non-error to normalized error"
)

var defaultMapper = mapper.Default()

// Translator turns ORM errors into normalized errors. It holds no mutable
// state and is safe for concurrent use.
type Translator struct {
	mapper     apis.Mapper
	converters []orm.Converter
	validation string
}

// TranslatorOption configures a Translator.
type TranslatorOption func(*Translator)

// WithMapper replaces the status mapper. It decides the status of
// validation failures and developer faults and classifies ORM statuses.
func WithMapper(m apis.Mapper) TranslatorOption {
	return func(t *Translator) {
		if m != nil {
			t.mapper = m
		}
	}
}

// WithConverters registers driver converters. They are tried in order on
// error inputs that are not already ORM kinds.
func WithConverters(convs ...orm.Converter) TranslatorOption {
	return func(t *Translator) { t.converters = append(t.converters, convs...) }
}

// WithValidationMessage replaces the message of validation failures.
func WithValidationMessage(msg string) TranslatorOption {
	return func(t *Translator) { t.validation = msg }
}

// New returns a Translator configured by opts.
func New(opts ...TranslatorOption) *Translator {
	t := &Translator{mapper: defaultMapper, validation: ValidationMessage}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var std = New()

// Translate normalizes v with the default Translator. See
// (*Translator).Translate.
func Translate(v any, hints ...any) *Error {
	return std.Translate(v, hints...)
}

// Classify reports the kind of v as the default Translator sees it.
func Classify(v any) Kind {
	return std.Classify(v)
}

// Mapper returns the status mapper in use.
func (t *Translator) Mapper() apis.Mapper { return t.mapper }

// Translate normalizes v. hints are interpreted by ParseHints, so both
//
//	tr.Translate(err, "user", []string{"email"})
//	tr.Translate(err, []string{"email"})
//
// are valid. The result is never nil. An *Error found in v's chain is
// returned as is.
func (t *Translator) Translate(v any, hints ...any) *Error {
	return t.TranslateWith(v, ParseHints(hints...))
}

// TranslateWith is Translate with typed hints.
func (t *Translator) TranslateWith(v any, h Hints) (out *Error) {
	defer func() {
		if r := recover(); r != nil {
			out = t.fault(reason.Unrecognized, fmt.Sprintf("panic while translating %T: %v", v, r), nil, v)
		}
	}()

	in := t.classify(v)
	switch in.kind {
	case KindNormalized:
		return in.normalized
	case KindUpstream:
		return t.upstream(in.upstream, in.err)
	case KindValidation:
		return t.validationFailure(in.validation, in.err, h)
	case KindUsage:
		return t.fault(reason.Usage, in.err.Error(), in.err, nil)
	case KindUnrecognized:
		return t.fault(reason.Unrecognized, in.err.Error(), in.err, nil)
	default:
		return t.fault(reason.NonError, NonErrorMessage, nil, v)
	}
}

// Classify reports the kind of v after running converters.
func (t *Translator) Classify(v any) Kind {
	return t.classify(v).kind
}

// input is v decided once: exactly one of the typed fields is set
// according to kind.
type input struct {
	kind       Kind
	err        error
	normalized *Error
	upstream   *orm.Error
	validation *orm.ValidationError
}

func (t *Translator) classify(v any) input {
	err, ok := v.(error)
	if !ok || err == nil {
		return input{kind: KindNonError}
	}
	if in, ok := match(err); ok {
		return in
	}
	if conv, ok := orm.Convert(err, t.converters...); ok {
		if in, ok := match(conv); ok {
			return in
		}
	}
	return input{kind: KindUnrecognized, err: err}
}

// match finds the outermost known kind in err's tree. Typed nil pointers
// of a known kind are not errors.
func match(err error) (input, bool) {
	var in input
	found := walk(err, func(e error) bool {
		switch x := e.(type) {
		case *Error:
			in = input{kind: KindNormalized, normalized: x}
			if x == nil {
				in = input{kind: KindNonError}
			}
		case *orm.ValidationError:
			in = input{kind: KindValidation, validation: x, err: err}
			if x == nil {
				in = input{kind: KindNonError}
			}
		case *orm.Error:
			in = input{kind: KindUpstream, upstream: x, err: err}
			if x == nil {
				in = input{kind: KindNonError}
			}
		case *orm.UsageError:
			in = input{kind: KindUsage, err: err}
			if x == nil {
				in = input{kind: KindNonError}
			}
		default:
			return false
		}
		return true
	})
	return in, found
}

// walk visits err and its wrapped errors depth first, stopping when fn
// returns true.
func walk(err error, fn func(error) bool) bool {
	for err != nil {
		if fn(err) {
			return true
		}
		switch x := err.(type) {
		case interface{ Unwrap() error }:
			err = x.Unwrap()
		case interface{ Unwrap() []error }:
			for _, e := range x.Unwrap() {
				if walk(e, fn) {
					return true
				}
			}
			return false
		default:
			return false
		}
	}
	return false
}

func (t *Translator) upstream(e *orm.Error, cause error) *Error {
	status := e.HTTPStatus()
	if status < 400 || status > 599 {
		msg := fmt.Sprintf("ORM error %q carries status %d which is not an HTTP error", e.ReasonPhrase(), status)
		return t.fault(reason.Status, msg, cause, nil)
	}
	return &Error{
		Code:       t.mapper.CodeFor(status),
		Reason:     reason.Upstream,
		StatusCode: status,
		Message:    e.Error(),
		Cause:      cause,
	}
}

func (t *Translator) validationFailure(e *orm.ValidationError, cause error, h Hints) *Error {
	return &Error{
		Code:       code.Unprocessable,
		Reason:     reason.Validation,
		StatusCode: t.mapper.HTTPStatus(code.Unprocessable, reason.Validation),
		Message:    t.validation,
		Validation: problems(e.Attributes, h),
		Cause:      cause,
	}
}

// fault builds a developer fault. Errors keep their message and become the
// cause; non-error values are attached as Data only.
func (t *Translator) fault(r reason.Reason, msg string, cause error, data any) *Error {
	status := t.mapper.HTTPStatus(code.Internal, r)
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{
		Code:           code.Internal,
		Reason:         r,
		StatusCode:     status,
		Message:        msg,
		DeveloperFault: true,
		Data:           data,
		Cause:          cause,
	}
}
