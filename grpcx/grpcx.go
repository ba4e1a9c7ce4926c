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


// Package grpcx maps normalized ORM errors onto gRPC statuses.
package grpcx

import (
	"context"
	"strconv"

	"dirpx.dev/ormerrors"
	"dirpx.dev/ormerrors/adapter"
	"dirpx.dev/ormerrors/apis"
	"github.com/sirupsen/logrus"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// Domain is the ErrorInfo domain of every status built here.
const Domain = "ormerrors.dirpx.dev"

// Status converts e into a gRPC status using m. The code comes from m,
// the message follows the HTTP payload rules and the details carry an
// ErrorInfo plus, for validation failures, a BadRequest.
func Status(m apis.Mapper, e *ormerrors.Error, hints ormerrors.Hints) *gstatus.Status {
	if e == nil {
		return gstatus.New(gcodes.OK, "")
	}
	gc := m.GRPCStatus(e.Code, e.Reason)
	msg := e.Message
	if e.StatusCode >= 500 {
		msg = adapter.InternalMessage
	}
	base := gstatus.New(gc, msg)

	info := &errdetails.ErrorInfo{
		Reason: string(e.Reason),
		Domain: Domain,
		Metadata: map[string]string{
			"code":        string(e.Code),
			"http_status": strconv.Itoa(e.StatusCode),
		},
	}
	if info.Reason == "" {
		info.Reason = string(e.Code)
	}
	if hints.Resource != "" {
		info.Metadata["resource"] = hints.Resource
	}
	details := []protoadapt.MessageV1{info}

	if len(e.Validation) > 0 {
		br := &errdetails.BadRequest{}
		for _, p := range e.Validation {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       p.Field,
				Reason:      p.Code,
				Description: p.Resource,
			})
		}
		details = append(details, br)
	}

	if with, err := base.WithDetails(details...); err == nil {
		return with
	}
	return base
}

// UnaryServerInterceptor returns an interceptor that translates handler
// errors and recovered panics with tr and hints, logs them to logger and
// returns the resulting gRPC status. A nil tr uses the default translator
// and a nil logger the standard logrus logger.
func UnaryServerInterceptor(tr *ormerrors.Translator, logger logrus.FieldLogger, hints ...any) grpc.UnaryServerInterceptor {
	if tr == nil {
		tr = ormerrors.New()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	h := ormerrors.ParseHints(hints...)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if v := recover(); v != nil {
				resp, err = nil, convert(tr, logger, info, v, h)
			}
		}()

		resp, err = handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := gstatus.FromError(err); ok && tr.Classify(err) == ormerrors.KindUnrecognized {
			// Status from a downstream call.
			return nil, err
		}
		return nil, convert(tr, logger, info, err, h)
	}
}

func convert(tr *ormerrors.Translator, logger logrus.FieldLogger, info *grpc.UnaryServerInfo, v any, h ormerrors.Hints) error {
	e := tr.TranslateWith(v, h)
	st := Status(tr.Mapper(), e, h)

	entry := logger.WithFields(logrus.Fields{
		"kind":      e.Kind().String(),
		"code":      string(e.Code),
		"reason":    string(e.Reason),
		"grpc_code": st.Code().String(),
	})
	if info != nil {
		entry = entry.WithField("method", info.FullMethod)
	}
	if e.DeveloperFault {
		entry.Error(e.Message)
	} else {
		entry.Debug(e.Message)
	}
	return st.Err()
}

// FieldProblems extracts the validation records of a status error built by
// Status. It returns nil when err carries none.
func FieldProblems(err error) []apis.FieldProblem {
	st, ok := gstatus.FromError(err)
	if !ok || st == nil {
		return nil
	}
	var out []apis.FieldProblem
	for _, d := range st.Details() {
		br, ok := d.(*errdetails.BadRequest)
		if !ok {
			continue
		}
		for _, v := range br.GetFieldViolations() {
			out = append(out, apis.FieldProblem{
				Resource: v.GetDescription(),
				Field:    v.GetField(),
				Code:     v.GetReason(),
			})
		}
	}
	return out
}

// ErrorInfo returns the ErrorInfo detail of err, if any.
func ErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := gstatus.FromError(err)
	if !ok || st == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok && ei.GetDomain() == Domain {
			return ei, true
		}
	}
	return nil, false
}
