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
	"dirpx.dev/ormerrors/apis"
	"dirpx.dev/ormerrors/orm"
)

// problems folds attrs into field problems: attributes in mapping order,
// violations in reported order, one record per violation. Restricting to
// names absent from attrs yields nothing for them. The result is nil when
// there is nothing to report.
func problems(attrs *orm.Attributes, h Hints) []apis.FieldProblem {
	if attrs == nil {
		return nil
	}
	if h.Restrict {
		attrs = attrs.Only(h.Fields)
	}
	var out []apis.FieldProblem
	for name, vs := range attrs.All() {
		for _, v := range vs {
			out = append(out, apis.FieldProblem{
				Resource: h.Resource,
				Field:    name,
				Code:     v.Rule,
			})
		}
	}
	return out
}
