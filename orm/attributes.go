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

package orm

import (
	"errors"
	"io"
	"iter"
	"slices"

	jsoniter "github.com/json-iterator/go"
)

// Violation is one broken rule on one attribute.
type Violation struct {
	// Rule identifies the rule, e.g. "required" or "unique". Empty when the
	// ORM did not say which rule failed.
	Rule string `json:"rule,omitempty"`

	// Message is the ORM's human-readable explanation.
	Message string `json:"message,omitempty"`
}

// Attributes is an insertion-ordered mapping from attribute name to its
// violations. The zero value and nil are both empty and ready to use
// (nil only for reading).
type Attributes struct {
	names  []string
	byName map[string][]Violation
}

// NewAttributes returns an empty mapping.
func NewAttributes() *Attributes {
	return &Attributes{}
}

// Add appends violations to name. A name keeps the position of its first
// Add. Adding a name with no violations registers it with an empty list.
func (a *Attributes) Add(name string, vs ...Violation) *Attributes {
	if a.byName == nil {
		a.byName = make(map[string][]Violation)
	}
	cur, ok := a.byName[name]
	if !ok {
		a.names = append(a.names, name)
		cur = []Violation{}
	}
	a.byName[name] = append(cur, vs...)
	return a
}

// Get returns the violations of name.
func (a *Attributes) Get(name string) ([]Violation, bool) {
	if a == nil {
		return nil, false
	}
	vs, ok := a.byName[name]
	return vs, ok
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.names)
}

// Names returns the attribute names in insertion order.
func (a *Attributes) Names() []string {
	if a == nil {
		return nil
	}
	return slices.Clone(a.names)
}

// All iterates attributes in insertion order.
func (a *Attributes) All() iter.Seq2[string, []Violation] {
	return func(yield func(string, []Violation) bool) {
		if a == nil {
			return
		}
		for _, n := range a.names {
			if !yield(n, a.byName[n]) {
				return
			}
		}
	}
}

// Only returns the attributes whose names appear in allowed, in this
// mapping's order. Names in allowed that are not present are skipped.
func (a *Attributes) Only(allowed []string) *Attributes {
	out := NewAttributes()
	if a == nil {
		return out
	}
	keep := make(map[string]struct{}, len(allowed))
	for _, n := range allowed {
		keep[n] = struct{}{}
	}
	for n, vs := range a.All() {
		if _, ok := keep[n]; ok {
			out.Add(n, vs...)
		}
	}
	return out
}

// MarshalJSON writes the mapping as a JSON object in insertion order.
func (a *Attributes) MarshalJSON() ([]byte, error) {
	stream := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowStream(nil)
	defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnStream(stream)

	stream.WriteObjectStart()
	i := 0
	for n, vs := range a.All() {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(n)
		if vs == nil {
			vs = []Violation{}
		}
		stream.WriteVal(vs)
		i++
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	return slices.Clone(stream.Buffer()), nil
}

// UnmarshalJSON reads a JSON object keeping the document's key order.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	*a = Attributes{}
	it := jsoniter.ParseBytes(jsoniter.ConfigCompatibleWithStandardLibrary, data)
	it.ReadObjectCB(func(it *jsoniter.Iterator, name string) bool {
		var vs []Violation
		it.ReadVal(&vs)
		a.Add(name, vs...)
		return it.Error == nil
	})
	if it.Error != nil && !errors.Is(it.Error, io.EOF) {
		return it.Error
	}
	return nil
}
