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


// Package validate lifts go-playground/validator failures into ORM errors.
package validate

import (
	"errors"

	"dirpx.dev/ormerrors/orm"
	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates s with the shared validator and converts the failure,
// so callers can hand the result straight to the translator.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	if out, ok := Convert(err); ok {
		return out
	}
	return err
}

// Convert is an orm.Converter for validator errors.
//
// ValidationErrors become an *orm.ValidationError: one attribute per field in
// reported order, one violation per failed tag. InvalidValidationError means
// a non-struct was validated and becomes an *orm.UsageError.
func Convert(err error) (error, bool) {
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		return &orm.UsageError{Reason: "invalid validation target", Err: err}, true
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil, false
	}
	attrs := orm.NewAttributes()
	for _, fe := range ve {
		attrs.Add(fe.Field(), orm.Violation{Rule: fe.Tag(), Message: fe.Error()})
	}
	return &orm.ValidationError{Model: model(ve), Attributes: attrs}, true
}

var _ orm.Converter = Convert

// model is the struct name of the first failing field's namespace.
func model(ve validator.ValidationErrors) string {
	if len(ve) == 0 {
		return ""
	}
	ns := ve[0].StructNamespace()
	for i := 0; i < len(ns); i++ {
		if ns[i] == '.' {
			return ns[:i]
		}
	}
	return ""
}
