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
	"slices"
	"testing"
)

func TestParseHints(t *testing.T) {
	cases := []struct {
		name     string
		args     []any
		resource string
		fields   []string
		restrict bool
	}{
		{name: "none"},
		{name: "resource", args: []any{"user"}, resource: "user"},
		{name: "resource and fields", args: []any{"user", []string{"email"}}, resource: "user", fields: []string{"email"}, restrict: true},
		{name: "fields first", args: []any{[]string{"email"}}, fields: []string{"email"}, restrict: true},
		{name: "fields first ignores rest", args: []any{[]string{"email"}, []string{"name"}}, fields: []string{"email"}, restrict: true},
		{name: "nil fields first", args: []any{[]string(nil), []string{"name"}}, fields: []string{"name"}, restrict: true},
		{name: "nil fields third", args: []any{"user", []string(nil)}, resource: "user"},
		{name: "empty fields", args: []any{"", []string{}}, fields: []string{}, restrict: true},
		{name: "nil resource", args: []any{nil, []string{"a"}}, fields: []string{"a"}, restrict: true},
		{name: "typed", args: []any{Hints{Resource: "r"}}, resource: "r"},
		{name: "typed pointer", args: []any{&Hints{Resource: "r"}}, resource: "r"},
		{name: "nil typed pointer", args: []any{(*Hints)(nil)}},
		{name: "unknown type", args: []any{42}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := ParseHints(tc.args...)
			if h.Resource != tc.resource {
				t.Fatalf("resource: got %q want %q", h.Resource, tc.resource)
			}
			if h.Restrict != tc.restrict {
				t.Fatalf("restrict: got %v want %v", h.Restrict, tc.restrict)
			}
			if !slices.Equal(h.Fields, tc.fields) {
				t.Fatalf("fields: got %v want %v", h.Fields, tc.fields)
			}
		})
	}
}

func TestHints_AllowFields_Copies(t *testing.T) {
	src := []string{"a", "b"}
	h := Hints{}.AllowFields(src...)
	src[0] = "z"
	if h.Fields[0] != "a" {
		t.Fatal("allow-list aliases caller slice")
	}
	if h.Fields == nil || !h.Restrict {
		t.Fatal("restriction lost")
	}
	if e := (Hints{}).AllowFields(); e.Fields == nil || !e.Restrict {
		t.Fatal("empty allow-list must still restrict")
	}
}
