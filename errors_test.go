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
	"errors"
	"net/http"
	"strings"
	"testing"

	"dirpx.dev/ormerrors/apis"
	"dirpx.dev/ormerrors/code"
	"dirpx.dev/ormerrors/reason"
)

func TestError_Basics(t *testing.T) {
	e := E(code.Conflict, "email already taken",
		WithReasonOption(reason.MustParse("orm.upstream.unique")),
	)

	if e.Code != code.Conflict {
		t.Fatal("code mismatch")
	}
	if e.StatusCode != http.StatusConflict {
		t.Fatalf("status: got %d", e.StatusCode)
	}
	if e.DeveloperFault {
		t.Fatal("conflict is not a developer fault")
	}

	s := e.Error()
	for _, sub := range []string{"conflict", "orm.upstream.unique", "email already taken"} {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}
}

func TestError_ExplicitStatusWins(t *testing.T) {
	e := E(code.Internal, "x", WithStatusOption(http.StatusServiceUnavailable))
	if e.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status: got %d", e.StatusCode)
	}
}

func TestError_Immutability_CopyOnWrite(t *testing.T) {
	e1 := BadData("bad", apis.FieldProblem{Field: "a"})
	e2 := e1.WithValidation(apis.FieldProblem{Field: "b"})

	if len(e1.Validation) != 1 || len(e2.Validation) != 2 {
		t.Fatal("validation size mismatch")
	}
	e3 := e1.WithValidation(apis.FieldProblem{Field: "c"})
	if e2.Validation[1].Field != "b" || e3.Validation[1].Field != "c" {
		t.Fatal("copies share a backing array")
	}
	if e1.WithMessage("other").Message == e1.Message {
		t.Fatal("WithMessage did not apply")
	}
	if e1.Message != "bad" {
		t.Fatal("original mutated")
	}
}

func TestError_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := E(code.Internal, "x").WithCause(root)
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap mismatch")
	}
	if e.WithCause(nil) != e {
		t.Fatal("nil cause must return receiver")
	}
}

func TestBadData(t *testing.T) {
	e := BadData("Validation Failed", apis.FieldProblem{Field: "email", Code: "required"})
	if e.StatusCode != http.StatusUnprocessableEntity || e.Code != code.Unprocessable {
		t.Fatalf("got %d %s", e.StatusCode, e.Code)
	}
	if e.Reason != reason.Validation {
		t.Fatalf("reason: %q", e.Reason)
	}
	if got := e.ValidationProblems(); len(got) != 1 || got[0].Field != "email" {
		t.Fatalf("problems: %+v", got)
	}
}

func TestBadData_NoProblems(t *testing.T) {
	if e := BadData("x"); e.Validation != nil {
		t.Fatalf("want nil validation, got %+v", e.Validation)
	}
}

func TestBadImplementation(t *testing.T) {
	data := map[string]any{"anything": true}
	e := BadImplementation("boom", data)
	if e.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status: %d", e.StatusCode)
	}
	if !e.IsDeveloperFault() {
		t.Fatal("developer fault flag not set")
	}
	if e.Data == nil {
		t.Fatal("data not attached")
	}
}

func TestError_Interfaces(t *testing.T) {
	var err error = E(code.NotFound, "missing", WithReasonOption(reason.Upstream))

	var sc apis.StatusCoder
	if !errors.As(err, &sc) || sc.HTTPStatus() != http.StatusNotFound {
		t.Fatal("StatusCoder")
	}
	var ce apis.CodedError
	if !errors.As(err, &ce) || ce.ErrorCode() != "not_found" {
		t.Fatal("CodedError")
	}
	var re apis.ReasonedError
	if !errors.As(err, &re) || re.ErrorReason() != "orm.upstream" {
		t.Fatal("ReasonedError")
	}
}

func TestError_NilString(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatal("nil receiver")
	}
}

func TestWrap(t *testing.T) {
	root := errors.New("connection reset")
	e := Wrap(root, http.StatusServiceUnavailable, "")
	if e.Code != code.Unavailable || e.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("got %s %d", e.Code, e.StatusCode)
	}
	if e.Message != "connection reset" {
		t.Fatalf("message: %q", e.Message)
	}
	if !errors.Is(e, root) {
		t.Fatal("cause lost")
	}
	if got := Wrap(root, http.StatusTeapot, "tea").Code; got != code.Invalid {
		t.Fatalf("unknown 4xx: %s", got)
	}
}
