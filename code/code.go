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

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is a validated error class.
//
// It is a distinct type so that raw strings coming from drivers or user input
// cannot be attached to a normalized error without going through Parse.
type Code string

// Length bounds of a canonical code.
const (
	MinLength = 3
	MaxLength = 64
)

// codeFmt must stay in sync with MinLength / MaxLength: one leading letter
// followed by 2..63 letters, digits or underscores.
const codeFmt = `^[a-z][a-z0-9_]{2,63}$`

var codeRe = regexp.MustCompile(codeFmt)

// ErrCodeInvalid is returned when a value is not a canonical code.
var ErrCodeInvalid = errors.New("ormerrors: invalid code")

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero code. It means "not classified yet".
var Empty Code = ""

// Parse normalizes s and validates the result.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if !codeRe.MatchString(s) {
		return Empty, ErrCodeInvalid
	}
	return Code(s), nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize trims, lowercases and converts '-' and ' ' to '_'.
//
// The result is not guaranteed to be valid; use Parse for that.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

// Validate reports whether c is canonical. Empty is invalid.
func Validate(c Code) error {
	if !codeRe.MatchString(string(c)) {
		return ErrCodeInvalid
	}
	return nil
}

// String implements fmt.Stringer.
func (c Code) String() string { return string(c) }

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
