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
	"dirpx.dev/ormerrors/code"
)

// Option configures a Mapper at build time.
type Option func(*builder)

// WithHTTPDefault replaces the default HTTP status of c.
func WithHTTPDefault(c code.Code, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault replaces the default gRPC status of c.
func WithGRPCDefault(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride forces the HTTP status of c regardless of the reason.
// Overrides take precedence over every other rule.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride forces the gRPC status of c regardless of the reason.
func WithGRPCOverride(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPPrefix adds a reason-prefix rule for c. The deepest matching
// prefix wins; "*" matches one segment.
//
//	mapper.WithHTTPPrefix(code.Unprocessable, "orm.validation", http.StatusBadRequest)
func WithHTTPPrefix(c code.Code, prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes[c] = append(b.httpPrefixes[c], prefixRule{prefix, http}) }
}

// WithGRPCPrefix is the gRPC counterpart of WithHTTPPrefix.
func WithGRPCPrefix(c code.Code, prefix string, grpc int) Option {
	return func(b *builder) { b.grpcPrefixes[c] = append(b.grpcPrefixes[c], prefixRule{prefix, grpc}) }
}

// WithCodeForHTTP changes how an ORM-reported HTTP status is classified.
func WithCodeForHTTP(status int, c code.Code) Option {
	return func(b *builder) { b.httpCodes[status] = c }
}
