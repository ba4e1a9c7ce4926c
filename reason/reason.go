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

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is a validated, dot-separated marker of one to four segments.
// Every segment starts with a lowercase letter and continues with
// lowercase letters, digits or underscores.
type Reason string

// Length bounds of a non-empty reason.
const (
	MinLength = 3
	MaxLength = 128
)

const reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned for malformed segments.
	ErrReasonInvalidFormat = errors.New("ormerrors: invalid reason format")
	// ErrReasonInvalidLength is returned when a reason is too short or too long.
	ErrReasonInvalidLength = errors.New("ormerrors: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty means "no reason".
var Empty Reason = ""

// Normalize trims, lowercases, turns '/' into '.' and '-' into '_'.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("/", ".", "-", "_").Replace(s)
}

// Parse normalizes and validates s. The empty string yields Empty.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is like Parse but panics on invalid or empty input.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("ormerrors: empty reason in MustParse")
	}
	return r
}

// Validate accepts Empty and canonical reasons.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// Child appends one segment to r. It returns r unchanged when the result
// would not be a valid reason.
func (r Reason) Child(seg string) Reason {
	if r == Empty {
		return r
	}
	next := Reason(string(r) + "." + Normalize(seg))
	if Validate(next) != nil {
		return r
	}
	return next
}

// HasPrefix reports whether p equals r or is one of its leading segments.
func (r Reason) HasPrefix(p Reason) bool {
	if p == Empty {
		return true
	}
	return r == p || strings.HasPrefix(string(r), string(p)+".")
}

// String implements fmt.Stringer.
func (r Reason) String() string { return string(r) }

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
