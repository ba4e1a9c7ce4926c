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

package code

// Server-side classes.
const (
	// Internal is the developer-fault class: the failure is attributable to
	// application logic (ORM misuse, unrecognized errors, non-error values).
	// Mapped to HTTP 500.
	Internal Code = "internal"

	// Unavailable means the datastore or a dependency could not be reached.
	// Mapped to HTTP 503.
	Unavailable Code = "unavailable"

	// Timeout means the query exceeded its time budget. Mapped to HTTP 504.
	Timeout Code = "timeout"

	// DependencyFailed means an upstream answered with an unusable response.
	// Mapped to HTTP 502.
	DependencyFailed Code = "dependency_failed"

	// NotImplemented is reported by adapters for unsupported operations.
	// Mapped to HTTP 501.
	NotImplemented Code = "not_implemented"
)

// Client-side classes.
const (
	// Invalid means the request itself was malformed. Mapped to HTTP 400.
	Invalid Code = "invalid"

	// Unprocessable means the request was well-formed but one or more model
	// attributes failed validation. Mapped to HTTP 422.
	Unprocessable Code = "unprocessable"

	// Unauthenticated maps to HTTP 401.
	Unauthenticated Code = "unauthenticated"

	// PermissionDenied maps to HTTP 403.
	PermissionDenied Code = "permission_denied"

	// NotFound means the addressed record does not exist. HTTP 404.
	NotFound Code = "not_found"

	// NotAllowed maps to HTTP 405.
	NotAllowed Code = "not_allowed"

	// Conflict covers unique and foreign-key clashes and optimistic locking
	// failures. HTTP 409.
	Conflict Code = "conflict"

	// Gone maps to HTTP 410.
	Gone Code = "gone"

	// PreconditionFailed maps to HTTP 412.
	PreconditionFailed Code = "precondition_failed"

	// TooLarge maps to HTTP 413.
	TooLarge Code = "too_large"

	// RateLimited means the datastore throttled the request. HTTP 429.
	RateLimited Code = "rate_limited"
)
