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

package mapper

import (
	"fmt"
	"strings"

	"dirpx.dev/ormerrors/apis"
	"dirpx.dev/ormerrors/code"
	"dirpx.dev/ormerrors/mapper/internal/segmenttrie"
	"dirpx.dev/ormerrors/reason"
	"google.golang.org/grpc/codes"
)

// New builds an immutable apis.Mapper from the library defaults and opts.
//
// Reason prefixes are normalized with reason.Normalize and rejected when a
// segment is malformed or the prefix consists only of wildcards.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	httpTrie, err := buildTries(b.httpPrefixes, "HTTP", func(v int) int { return v })
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTries(b.grpcPrefixes, "gRPC", func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults, func(v int) int { return v }),
		grpcDefault:  freeze(b.grpcDefaults, func(v int) codes.Code { return codes.Code(v) }),
		httpOverride: freeze(b.httpOverride, func(v int) int { return v }),
		grpcOverride: freeze(b.grpcOverride, func(v int) codes.Code { return codes.Code(v) }),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		httpCodes:    freeze(b.httpCodes, func(c code.Code) code.Code { return c }),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// Default returns a mapper with only the library defaults.
func Default() apis.Mapper {
	m, err := New()
	if err != nil {
		panic(err)
	}
	return m
}

// mapper resolves statuses in this order: exact override, deepest reason
// prefix, code default, fallback. It is read-only after New.
type mapper struct {
	httpDefault  map[code.Code]int
	grpcDefault  map[code.Code]codes.Code
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code
	httpTrie     map[code.Code]*segmenttrie.Trie[int]
	grpcTrie     map[code.Code]*segmenttrie.Trie[codes.Code]
	httpCodes    map[int]code.Code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

func (m *mapper) HTTPStatus(c code.Code, r reason.Reason) int {
	v, _, _ := resolve(c, r, m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP)
	return v
}

func (m *mapper) GRPCStatus(c code.Code, r reason.Reason) codes.Code {
	v, _, _ := resolve(c, r, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC)
	return v
}

func (m *mapper) Status(c code.Code, r reason.Reason) apis.Status {
	return apis.Status{HTTP: m.HTTPStatus(c, r), GRPC: m.GRPCStatus(c, r)}
}

func (m *mapper) CodeFor(httpStatus int) code.Code {
	if c, ok := m.httpCodes[httpStatus]; ok {
		return c
	}
	if httpStatus >= 400 && httpStatus < 500 {
		return code.Invalid
	}
	return code.Internal
}

// Explain renders which tier produced each transport status:
//
//	code="unprocessable" reason="orm.validation"
//	http: source=default -> 422
//	grpc: source=default -> INVALIDARGUMENT(3)
func (m *mapper) Explain(c code.Code, r reason.Reason) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q reason=%q\n", c, r)

	hv, hsrc, hpat := resolve(c, r, m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP)
	_, _ = fmt.Fprintf(&b, "http: %s -> %d\n", describe(hsrc, hpat), hv)

	gv, gsrc, gpat := resolve(c, r, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s(%d)", describe(gsrc, gpat), strings.ToUpper(gv.String()), int(gv))

	return b.String()
}

// resolve walks the four tiers and reports the value, the tier name and,
// for prefix hits, the matched pattern.
func resolve[T any](
	c code.Code,
	r reason.Reason,
	override map[code.Code]T,
	tries map[code.Code]*segmenttrie.Trie[T],
	defaults map[code.Code]T,
	fallback T,
) (T, string, string) {
	if v, ok := override[c]; ok {
		return v, "override", ""
	}
	if t := tries[c]; t != nil {
		if v, pat, ok := t.MatchWithPattern(string(r)); ok {
			return v, "prefix", pat
		}
	}
	if v, ok := defaults[c]; ok {
		return v, "default", ""
	}
	return fallback, "fallback", ""
}

func describe(source, pattern string) string {
	if pattern != "" {
		return fmt.Sprintf("source=%s pattern=%q", source, pattern)
	}
	return "source=" + source
}

func buildTries[T any](rules map[code.Code][]prefixRule, transport string, conv func(int) T) (map[code.Code]*segmenttrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	out := make(map[code.Code]*segmenttrie.Trie[T], len(rules))
	for c, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		t := segmenttrie.New[T]()
		for _, rule := range rs {
			p := reason.Normalize(rule.prefix)
			if err := t.Insert(p, conv(rule.val)); err != nil {
				return nil, fmt.Errorf("mapper: invalid %s reason-prefix %q for code %q: %w", transport, rule.prefix, c, err)
			}
		}
		out[c] = t
	}
	return out, nil
}

// freeze copies src so later changes to the builder cannot leak into a
// built mapper.
func freeze[K comparable, V, W any](src map[K]V, conv func(V) W) map[K]W {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]W, len(src))
	for k, v := range src {
		dst[k] = conv(v)
	}
	return dst
}
