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
	"net/http"

	"dirpx.dev/ormerrors/code"
	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw reason prefix; it is normalized in New.
	prefix string
	val    int
}

// builder collects options before New freezes them.
type builder struct {
	httpDefaults map[code.Code]int
	grpcDefaults map[code.Code]int

	httpOverride map[code.Code]int
	grpcOverride map[code.Code]int

	httpPrefixes map[code.Code][]prefixRule
	grpcPrefixes map[code.Code][]prefixRule

	httpCodes map[int]code.Code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder returns a builder seeded with the library defaults.
func newBuilder() *builder {
	b := &builder{
		httpDefaults: make(map[code.Code]int, len(defaultHTTP)),
		grpcDefaults: make(map[code.Code]int, len(defaultGRPC)),
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]int),
		httpPrefixes: make(map[code.Code][]prefixRule),
		grpcPrefixes: make(map[code.Code][]prefixRule),
		httpCodes:    make(map[int]code.Code, len(defaultCodes)),
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	for k, v := range defaultCodes {
		b.httpCodes[k] = v
	}
	return b
}
