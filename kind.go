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

import "dirpx.dev/ormerrors/reason"

// Kind is the closed set of shapes an incoming value can have.
type Kind uint8

const (
	// KindNormalized is an *Error; it passes through untouched.
	KindNormalized Kind = iota
	// KindUpstream is an *orm.Error forwarded with its own status.
	KindUpstream
	// KindValidation is an *orm.ValidationError.
	KindValidation
	// KindUsage is an *orm.UsageError.
	KindUsage
	// KindUnrecognized is any other error.
	KindUnrecognized
	// KindNonError is a value that is not an error, including nil.
	KindNonError
)

var kindNames = [...]string{
	KindNormalized:   "normalized",
	KindUpstream:     "upstream",
	KindValidation:   "validation",
	KindUsage:        "usage",
	KindUnrecognized: "unrecognized",
	KindNonError:     "non_error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// DeveloperFault reports whether values of this kind translate into
// developer faults.
func (k Kind) DeveloperFault() bool {
	return k == KindUsage || k == KindUnrecognized || k == KindNonError
}

// Kind reports which kind of input produced e, based on its reason.
// Errors built directly with E report KindNormalized.
func (e *Error) Kind() Kind {
	switch {
	case e.Reason.HasPrefix(reason.Validation):
		return KindValidation
	case e.Reason.HasPrefix(reason.Upstream),
		e.Reason == reason.Status:
		return KindUpstream
	case e.Reason.HasPrefix(reason.Usage):
		return KindUsage
	case e.Reason == reason.Unrecognized:
		return KindUnrecognized
	case e.Reason == reason.NonError:
		return KindNonError
	}
	return KindNormalized
}
