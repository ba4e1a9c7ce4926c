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

// Package segmenttrie indexes dot-separated reason prefixes for
// longest-prefix matching. The segment "*" matches exactly one segment.
package segmenttrie

import (
	"errors"
	"strings"
)

// ErrInvalidPrefix is returned for empty prefixes, empty or malformed
// segments, and prefixes made only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

const wildcard = "*"

// Trie maps reason prefixes to values. It is not safe for concurrent
// Insert; once built it may be matched from any number of goroutines.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	pattern  string
}

// New returns an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with prefix, replacing any previous value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, s := range segs {
		if !validSegment(s, true) {
			return ErrInvalidPrefix
		}
		concrete = concrete || s != wildcard
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	n := t
	for _, s := range segs {
		next, ok := n.children[s]
		if !ok {
			next = New[T]()
			n.children[s] = next
		}
		n = next
	}
	n.hasVal, n.val, n.pattern = true, val, prefix
	return nil
}

// Match returns the value stored under the deepest prefix of reason.
// At equal depth an exact segment beats a wildcard.
func (t *Trie[T]) Match(reason string) (T, bool) {
	v, _, ok := t.MatchWithPattern(reason)
	return v, ok
}

// MatchWithPattern is Match that also returns the matched rule as inserted.
func (t *Trie[T]) MatchWithPattern(reason string) (T, string, bool) {
	var zero T
	if t == nil || reason == "" {
		return zero, "", false
	}
	segs := strings.Split(reason, ".")
	for _, s := range segs {
		if !validSegment(s, false) {
			return zero, "", false
		}
	}

	var best *Trie[T]
	bestDepth := 0
	var walk func(n *Trie[T], depth int)
	walk = func(n *Trie[T], depth int) {
		if n.hasVal && depth > bestDepth {
			best, bestDepth = n, depth
		}
		if depth == len(segs) {
			return
		}
		if next, ok := n.children[segs[depth]]; ok {
			walk(next, depth+1)
		}
		if next, ok := n.children[wildcard]; ok {
			walk(next, depth+1)
		}
	}
	walk(t, 0)

	if best == nil {
		return zero, "", false
	}
	return best.val, best.pattern, true
}

// validSegment reports whether seg matches [a-z][a-z0-9_]*, or is "*" when
// wild is set.
func validSegment(seg string, wild bool) bool {
	if seg == "" {
		return false
	}
	if seg == wildcard {
		return wild
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_') {
			return false
		}
	}
	return true
}
