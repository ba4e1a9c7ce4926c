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

package apis

import (
	"dirpx.dev/ormerrors/code"
	"dirpx.dev/ormerrors/reason"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe set of rules that resolve a code
// (and optionally a reason) into transport statuses, and an HTTP status back
// into a code.
type Mapper interface {
	// HTTPStatus returns the HTTP status for c and r. Reason-specific rules
	// win over the code-level rule.
	HTTPStatus(c code.Code, r reason.Reason) int

	// GRPCStatus is the gRPC counterpart of HTTPStatus.
	GRPCStatus(c code.Code, r reason.Reason) codes.Code

	// Status resolves both transports at once.
	Status(c code.Code, r reason.Reason) Status

	// CodeFor classifies an HTTP status reported by an ORM. Unknown 4xx
	// statuses yield code.Invalid, everything else code.Internal.
	CodeFor(httpStatus int) code.Code

	// Explain describes which rule matched, for diagnostics.
	Explain(c code.Code, r reason.Reason) string
}

// Status is a resolved pair of transport statuses.
type Status struct {
	HTTP int        // net/http status code.
	GRPC codes.Code // gRPC status code.
}
