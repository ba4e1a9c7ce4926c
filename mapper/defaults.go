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

package mapper

import (
	"net/http"

	"dirpx.dev/ormerrors/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP maps each code the translator can emit to its HTTP status.
var defaultHTTP = map[code.Code]int{
	code.Internal:         http.StatusInternalServerError, // Developer fault.
	code.NotImplemented:   http.StatusNotImplemented,
	code.DependencyFailed: http.StatusBadGateway,
	code.Unavailable:      http.StatusServiceUnavailable, // Datastore unreachable.
	code.Timeout:          http.StatusGatewayTimeout,

	code.Invalid:            http.StatusBadRequest,
	code.Unauthenticated:    http.StatusUnauthorized,
	code.PermissionDenied:   http.StatusForbidden,
	code.NotFound:           http.StatusNotFound,
	code.NotAllowed:         http.StatusMethodNotAllowed,
	code.Conflict:           http.StatusConflict, // Unique / foreign key / optimistic lock.
	code.Gone:               http.StatusGone,
	code.PreconditionFailed: http.StatusPreconditionFailed,
	code.TooLarge:           http.StatusRequestEntityTooLarge,
	code.Unprocessable:      http.StatusUnprocessableEntity, // Attribute validation.
	code.RateLimited:        http.StatusTooManyRequests,
}

// defaultGRPC maps each code to the closest canonical gRPC status.
var defaultGRPC = map[code.Code]codes.Code{
	code.Internal:         codes.Internal,
	code.NotImplemented:   codes.Unimplemented,
	code.DependencyFailed: codes.Unavailable,
	code.Unavailable:      codes.Unavailable,
	code.Timeout:          codes.DeadlineExceeded,

	code.Invalid:            codes.InvalidArgument,
	code.Unauthenticated:    codes.Unauthenticated,
	code.PermissionDenied:   codes.PermissionDenied,
	code.NotFound:           codes.NotFound,
	code.NotAllowed:         codes.Unimplemented,
	code.Conflict:           codes.AlreadyExists,
	code.Gone:               codes.NotFound, // gRPC has no 410.
	code.PreconditionFailed: codes.FailedPrecondition,
	code.TooLarge:           codes.ResourceExhausted,
	code.Unprocessable:      codes.InvalidArgument,
	code.RateLimited:        codes.ResourceExhausted,
}

// defaultCodes classifies HTTP statuses reported by ORMs. It is the inverse
// of defaultHTTP.
var defaultCodes = func() map[int]code.Code {
	m := make(map[int]code.Code, len(defaultHTTP))
	for c, st := range defaultHTTP {
		m[st] = c
	}
	return m
}()
