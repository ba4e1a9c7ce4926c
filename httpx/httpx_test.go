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


package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dirpx.dev/ormerrors"
	"dirpx.dev/ormerrors/adapter"
	"dirpx.dev/ormerrors/apis"
	"dirpx.dev/ormerrors/orm"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWriter() (Writer, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return Writer{Logger: logger}, hook
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) apis.Payload {
	t.Helper()
	var p apis.Payload
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &p))
	return p
}

func TestWriter_Validation(t *testing.T) {
	w, hook := newWriter()
	rec := httptest.NewRecorder()

	err := orm.NewValidation(orm.NewAttributes().
		Add("thisAttr", orm.Violation{Rule: "isUnique"}).
		Add("thatAttr", orm.Violation{Rule: "required"}))
	w.WriteError(rec, err, "resourceName", []string{"thatAttr"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"statusCode": 422,
		"error": "Unprocessable Entity",
		"message": "Validation Failed",
		"validation": [{"resource": "resourceName", "field": "thatAttr", "code": "required"}]
	}`, rec.Body.String())

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	assert.Equal(t, "validation", hook.LastEntry().Data["kind"])
}

func TestWriter_NoValidationKey(t *testing.T) {
	w, _ := newWriter()
	rec := httptest.NewRecorder()
	w.WriteError(rec, orm.NewValidation(nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NotContains(t, rec.Body.String(), "validation")
}

func TestWriter_DeveloperFault(t *testing.T) {
	w, hook := newWriter()
	rec := httptest.NewRecorder()
	e := w.WriteError(rec, errors.New("db handle is nil"))

	assert.True(t, e.DeveloperFault)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	p := decode(t, rec)
	assert.Equal(t, adapter.InternalMessage, p.Message)
	assert.NotContains(t, rec.Body.String(), "db handle")

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "db handle is nil", entry.Message)
	assert.Equal(t, "unrecognized", entry.Data["kind"])
	assert.Equal(t, http.StatusInternalServerError, entry.Data["status"])
}

func TestWriter_NonErrorLogsData(t *testing.T) {
	w, hook := newWriter()
	rec := httptest.NewRecorder()
	w.WriteError(rec, map[string]any{"anything": true})

	require.Len(t, hook.Entries, 1)
	assert.Contains(t, hook.LastEntry().Data["data"], "anything")
}

func TestWriter_Nil(t *testing.T) {
	w, hook := newWriter()
	rec := httptest.NewRecorder()
	w.Write(rec, nil)

	assert.Equal(t, 0, rec.Body.Len())
	assert.Empty(t, hook.Entries)
}

func TestHandler(t *testing.T) {
	w, _ := newWriter()

	h := w.Handler(func(rw http.ResponseWriter, r *http.Request) error {
		return orm.New(http.StatusNotFound, "No record found")
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	p := decode(t, rec)
	assert.Equal(t, "No record found", p.Message)
	assert.Equal(t, "Not Found", p.Error)
}

func TestHandler_Success(t *testing.T) {
	h := Handler(func(rw http.ResponseWriter, r *http.Request) error {
		rw.WriteHeader(http.StatusNoContent)
		return nil
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/users/1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_RecoversPanic(t *testing.T) {
	w, hook := newWriter()
	h := w.Handler(func(rw http.ResponseWriter, r *http.Request) error {
		panic("unexpected state")
	})
	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, "non_error", hook.LastEntry().Data["kind"])
}

func TestHandler_PassesHints(t *testing.T) {
	w, _ := newWriter()
	h := w.Handler(func(rw http.ResponseWriter, r *http.Request) error {
		return ormerrors.BadData("bad")
	}, "user")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "bad", decode(t, rec).Message)
}

func TestHandler_AbortPropagates(t *testing.T) {
	w, _ := newWriter()
	h := w.Handler(func(rw http.ResponseWriter, r *http.Request) error {
		panic(http.ErrAbortHandler)
	})
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
