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

package reason

// Classification reasons. Every normalized error produced by the translator
// carries exactly one of these (or a child of it).
const (
	// Upstream marks an ORM error forwarded with its own status and reason.
	Upstream Reason = "orm.upstream"

	// Validation marks per-attribute validation failures.
	Validation Reason = "orm.validation"

	// Usage marks an ORM usage error: the ORM was called incorrectly.
	Usage Reason = "orm.usage"

	// Unrecognized marks an error value of no known ORM kind.
	Unrecognized Reason = "orm.unrecognized"

	// NonError marks a value that is not an error at all.
	NonError Reason = "orm.non_error"

	// Status marks an ORM error whose status cannot be sent over HTTP.
	Status Reason = "orm.status"
)
