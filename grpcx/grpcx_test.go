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


package grpcx

import (
	"context"
	"errors"
	"testing"

	"dirpx.dev/ormerrors"
	"dirpx.dev/ormerrors/apis"
	"dirpx.dev/ormerrors/mapper"
	"dirpx.dev/ormerrors/orm"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/users.v1.Users/Create"}

func call(t *testing.T, ic grpc.UnaryServerInterceptor, fn grpc.UnaryHandler) error {
	t.Helper()
	_, err := ic(context.Background(), "req", info, fn)
	return err
}

func failing(err error) grpc.UnaryHandler {
	return func(context.Context, any) (any, error) { return nil, err }
}

func validationErr() *orm.ValidationError {
	return orm.NewValidation(orm.NewAttributes().
		Add("email", orm.Violation{Rule: "unique"}).
		Add("name", orm.Violation{Rule: "required"}))
}

func TestInterceptor_Validation(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	ic := UnaryServerInterceptor(nil, logger, "user", []string{"email"})

	err := call(t, ic, failing(validationErr()))
	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("not a status: %v", err)
	}
	if st.Code() != gcodes.InvalidArgument {
		t.Fatalf("code: %s", st.Code())
	}
	if st.Message() != "Validation Failed" {
		t.Fatalf("message: %q", st.Message())
	}

	ei, ok := ErrorInfo(err)
	if !ok {
		t.Fatal("ErrorInfo missing")
	}
	wantInfo := &errdetails.ErrorInfo{
		Reason: "orm.validation",
		Domain: Domain,
		Metadata: map[string]string{
			"code":        "unprocessable",
			"http_status": "422",
			"resource":    "user",
		},
	}
	if !proto.Equal(ei, wantInfo) {
		t.Fatalf("ErrorInfo: got %v want %v", ei, wantInfo)
	}

	got := FieldProblems(err)
	want := []apis.FieldProblem{{Resource: "user", Field: "email", Code: "unique"}}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("problems: got %+v want %+v", got, want)
	}

	if len(hook.Entries) != 1 || hook.LastEntry().Level != logrus.DebugLevel {
		t.Fatalf("log entries: %+v", hook.Entries)
	}
	if hook.LastEntry().Data["method"] != info.FullMethod {
		t.Fatalf("method field: %v", hook.LastEntry().Data["method"])
	}
}

func TestInterceptor_Upstream(t *testing.T) {
	logger, _ := test.NewNullLogger()
	ic := UnaryServerInterceptor(nil, logger)

	err := call(t, ic, failing(orm.New(404, "No record found")))
	st := gstatus.Convert(err)
	if st.Code() != gcodes.NotFound || st.Message() != "No record found" {
		t.Fatalf("got %s %q", st.Code(), st.Message())
	}
	if FieldProblems(err) != nil {
		t.Fatal("upstream errors carry no field problems")
	}
}

func TestInterceptor_DeveloperFault(t *testing.T) {
	logger, hook := test.NewNullLogger()
	ic := UnaryServerInterceptor(nil, logger)

	err := call(t, ic, failing(errors.New("nil pointer in repo")))
	st := gstatus.Convert(err)
	if st.Code() != gcodes.Internal {
		t.Fatalf("code: %s", st.Code())
	}
	if st.Message() == "nil pointer in repo" {
		t.Fatal("internal message leaked")
	}
	if len(hook.Entries) != 1 || hook.LastEntry().Level != logrus.ErrorLevel {
		t.Fatalf("log entries: %+v", hook.Entries)
	}
	if hook.LastEntry().Message != "nil pointer in repo" {
		t.Fatalf("logged message: %q", hook.LastEntry().Message)
	}
}

func TestInterceptor_Panic(t *testing.T) {
	logger, _ := test.NewNullLogger()
	ic := UnaryServerInterceptor(nil, logger)

	err := call(t, ic, func(context.Context, any) (any, error) { panic("boom") })
	if gstatus.Code(err) != gcodes.Internal {
		t.Fatalf("code: %s", gstatus.Code(err))
	}
	ei, ok := ErrorInfo(err)
	if !ok || ei.GetReason() != "orm.non_error" {
		t.Fatalf("ErrorInfo: %v", ei)
	}
}

func TestInterceptor_PassesStatusThrough(t *testing.T) {
	logger, hook := test.NewNullLogger()
	ic := UnaryServerInterceptor(nil, logger)

	in := gstatus.Error(gcodes.Unavailable, "downstream")
	if err := call(t, ic, failing(in)); err != in {
		t.Fatalf("got %v", err)
	}
	if len(hook.Entries) != 0 {
		t.Fatal("pass-through must not log")
	}
}

func TestInterceptor_Success(t *testing.T) {
	ic := UnaryServerInterceptor(nil, nil)
	resp, err := ic(context.Background(), "req", info, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	if err != nil || resp != "ok" {
		t.Fatalf("got %v %v", resp, err)
	}
}

func TestStatus_MapperOverride(t *testing.T) {
	m, err := mapper.New(mapper.WithGRPCPrefix("unprocessable", "orm.validation", int(gcodes.FailedPrecondition)))
	if err != nil {
		t.Fatal(err)
	}
	e := ormerrors.New(ormerrors.WithMapper(m)).Translate(validationErr())
	st := Status(m, e, ormerrors.Hints{})
	if st.Code() != gcodes.FailedPrecondition {
		t.Fatalf("code: %s", st.Code())
	}
	if got := FieldProblems(st.Err()); len(got) != 2 || got[1].Field != "name" {
		t.Fatalf("problems: %+v", got)
	}
}

func TestFieldProblems_NotStatus(t *testing.T) {
	if FieldProblems(errors.New("x")) != nil {
		t.Fatal("plain errors carry no problems")
	}
	if _, ok := ErrorInfo(nil); ok {
		t.Fatal("nil has no ErrorInfo")
	}
}
