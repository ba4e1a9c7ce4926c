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

// Hints are the optional presentation hints of a translation.
type Hints struct {
	// Resource labels every emitted field problem. Empty means absent.
	Resource string

	// Fields is the allow-list of attribute names. It only applies when
	// Restrict is set, so an empty allow-list can be told apart from none.
	Fields   []string
	Restrict bool
}

// AllowFields returns a copy of h restricted to fields.
func (h Hints) AllowFields(fields ...string) Hints {
	h.Fields = append([]string{}, fields...)
	h.Restrict = true
	return h
}

// ParseHints interprets the positional hints accepted by Translate:
//
//	()                          no hints
//	("user")                    resource
//	("user", []string{"email"}) resource and allowed fields
//	([]string{"email"})         allowed fields, no resource
//	(Hints{...}) / (*Hints)     typed form
//
// A []string in first position is always the allow-list and any further
// argument is ignored. A nil []string counts as absent. Values of any other
// type are ignored.
func ParseHints(args ...any) Hints {
	var h Hints
	if len(args) == 0 {
		return h
	}
	switch a := args[0].(type) {
	case Hints:
		return a
	case *Hints:
		if a != nil {
			return *a
		}
		return h
	case string:
		h.Resource = a
	case []string:
		if a != nil {
			return h.AllowFields(a...)
		}
	}
	if len(args) > 1 {
		if f, ok := args[1].([]string); ok && f != nil {
			return h.AllowFields(f...)
		}
	}
	return h
}
