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
	"testing"

	"dirpx.dev/ormerrors"
	"dirpx.dev/ormerrors/apis"
	"dirpx.dev/ormerrors/code"
	"dirpx.dev/ormerrors/orm"
	"dirpx.dev/ormerrors/reason"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestToPayload_Validation(t *testing.T) {
	e := ormerrors.Translate(orm.NewValidation(orm.NewAttributes().
		Add("email", orm.Violation{Rule: "unique"})), "user")

	p := ToPayload(e)
	assert.Equal(t, http.StatusUnprocessableEntity, p.StatusCode)
	assert.Equal(t, "Unprocessable Entity", p.Error)
	assert.Equal(t, "Validation Failed", p.Message)
	require.Len(t, p.Validation, 1)
	assert.Equal(t, apis.FieldProblem{Resource: "user", Field: "email", Code: "unique"}, p.Validation[0])

	p.Validation[0].Field = "changed"
	assert.Equal(t, "email", e.Validation[0].Field, "payload must not alias the error")
}

func TestToPayload_HidesInternalMessage(t *testing.T) {
	e := ormerrors.Translate(orm.NewUsage("unknown model `pet`"))

	p := ToPayload(e)
	assert.Equal(t, http.StatusInternalServerError, p.StatusCode)
	assert.Equal(t, "Internal Server Error", p.Error)
	assert.Equal(t, InternalMessage, p.Message)
	assert.Nil(t, p.Validation)
	assert.Equal(t, "unknown model `pet`", e.Message)
}

func TestToPayload_KeepsClientMessage(t *testing.T) {
	p := ToPayload(ormerrors.Translate(orm.New(http.StatusNotFound, "No record found")))
	assert.Equal(t, "Not Found", p.Error)
	assert.Equal(t, "No record found", p.Message)
}

func TestToPayload_Edges(t *testing.T) {
	assert.Equal(t, apis.Payload{}, ToPayload(nil))

	p := ToPayload(&ormerrors.Error{Message: "x"})
	assert.Equal(t, http.StatusInternalServerError, p.StatusCode)

	p = ToPayload(&ormerrors.Error{StatusCode: 499, Message: "closed"})
	assert.Equal(t, "Unknown", p.Error)
	assert.Equal(t, "closed", p.Message)
}

func TestToDescriptor(t *testing.T) {
	e := ormerrors.Translate(orm.NewValidation(orm.NewAttributes().
		Add("email", orm.Violation{Rule: "unique"}, orm.Violation{Rule: "email"}).
		Add("name", orm.Violation{Rule: "required"})))
	st := apis.Status{HTTP: http.StatusUnprocessableEntity, GRPC: codes.InvalidArgument}

	d := ToDescriptor(e, st)
	assert.Equal(t, apis.ErrorDescriptor{
		Code:       string(code.Unprocessable),
		Reason:     string(reason.Validation),
		Kind:       "validation",
		HTTPStatus: http.StatusUnprocessableEntity,
		GRPCCode:   int(codes.InvalidArgument),
		Message:    "Validation Failed",
		Fields:     []string{"email", "name"},
	}, d)
}

func TestToDescriptor_DeveloperFault(t *testing.T) {
	e := ormerrors.Translate(42)
	d := ToDescriptor(e, apis.Status{})
	assert.True(t, d.DeveloperFault)
	assert.Equal(t, "non_error", d.Kind)
	assert.Equal(t, http.StatusInternalServerError, d.HTTPStatus)
	assert.Equal(t, ormerrors.NonErrorMessage, d.Message)
	assert.Nil(t, d.Fields)

	assert.Equal(t, apis.ErrorDescriptor{}, ToDescriptor(nil, apis.Status{}))
}
