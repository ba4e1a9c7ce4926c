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


package validate

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"dirpx.dev/ormerrors"
	"dirpx.dev/ormerrors/apis"
	"dirpx.dev/ormerrors/orm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required"`
	Age   int    `validate:"gte=18"`
}

func TestConvert_ValidationErrors(t *testing.T) {
	err := v.Struct(signup{Email: "not-an-email", Age: 12})
	require.Error(t, err)

	out, ok := Convert(err)
	require.True(t, ok)
	var ve *orm.ValidationError
	require.True(t, errors.As(out, &ve))
	assert.Equal(t, "signup", ve.Model)
	assert.Equal(t, []string{"Email", "Name", "Age"}, ve.Attributes.Names())

	vs, _ := ve.Attributes.Get("Email")
	require.Len(t, vs, 1)
	assert.Equal(t, "email", vs[0].Rule)
	assert.NotEmpty(t, vs[0].Message)
}

func TestConvert_Translated(t *testing.T) {
	tr := ormerrors.New(ormerrors.WithConverters(Convert))

	e := tr.Translate(fmt.Errorf("bind: %w", v.Struct(signup{Email: "a@b.co"})), "signup", []string{"Name", "Age"})
	assert.Equal(t, http.StatusUnprocessableEntity, e.StatusCode)
	assert.Equal(t, []apis.FieldProblem{
		{Resource: "signup", Field: "Name", Code: "required"},
		{Resource: "signup", Field: "Age", Code: "gte"},
	}, e.Validation)
}

func TestConvert_InvalidTarget(t *testing.T) {
	out, ok := Convert(v.Struct(42))
	require.True(t, ok)
	var ue *orm.UsageError
	require.True(t, errors.As(out, &ue))

	e := ormerrors.New(ormerrors.WithConverters(Convert)).Translate(v.Struct(nil))
	assert.True(t, e.DeveloperFault)
	assert.Equal(t, ormerrors.KindUsage, e.Kind())
}

func TestConvert_Unrelated(t *testing.T) {
	out, ok := Convert(errors.New("x"))
	assert.False(t, ok)
	assert.Nil(t, out)
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(signup{Email: "a@b.co", Name: "Ann", Age: 30}))

	err := Struct(signup{Email: "a@b.co", Name: "Ann"})
	var ve *orm.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"Age"}, ve.Attributes.Names())
}
