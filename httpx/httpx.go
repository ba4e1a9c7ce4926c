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


// Package httpx writes normalized ORM errors as HTTP responses.
package httpx

import (
	"fmt"
	"net/http"

	"dirpx.dev/ormerrors"
	"dirpx.dev/ormerrors/adapter"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	json              = jsoniter.ConfigCompatibleWithStandardLibrary
	defaultTranslator = ormerrors.New()
)

// Writer turns errors into Boom-compatible JSON responses.
//
// The zero value is ready to use: it translates with the package-level
// translator and logs to the standard logrus logger.
type Writer struct {
	Translator *ormerrors.Translator
	Logger     logrus.FieldLogger
}

func (w Writer) translator() *ormerrors.Translator {
	if w.Translator == nil {
		return defaultTranslator
	}
	return w.Translator
}

func (w Writer) logger() logrus.FieldLogger {
	if w.Logger == nil {
		return logrus.StandardLogger()
	}
	return w.Logger
}

// WriteError translates err with hints and writes the result.
func (w Writer) WriteError(rw http.ResponseWriter, err any, hints ...any) *ormerrors.Error {
	e := w.translator().Translate(err, hints...)
	w.Write(rw, e)
	return e
}

// Write logs e and writes its payload. Developer faults are logged at
// Error level, everything else at Debug. A nil e writes nothing.
func (w Writer) Write(rw http.ResponseWriter, e *ormerrors.Error) {
	if e == nil {
		return
	}
	w.log(e)

	p := adapter.ToPayload(e)
	body, err := json.Marshal(p)
	if err != nil {
		w.logger().Error(errors.Wrap(err, "unable to marshal error payload"))
		http.Error(rw, adapter.InternalMessage, http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.Header().Set("X-Content-Type-Options", "nosniff")
	rw.WriteHeader(p.StatusCode)
	if _, err := rw.Write(body); err != nil {
		w.logger().WithField("error", err.Error()).Debug("unable to write error response")
	}
}

func (w Writer) log(e *ormerrors.Error) {
	entry := w.logger().WithFields(logrus.Fields{
		"kind":   e.Kind().String(),
		"code":   string(e.Code),
		"reason": string(e.Reason),
		"status": e.StatusCode,
	})
	if e.Cause != nil {
		entry = entry.WithField("cause", e.Cause.Error())
	}
	if e.DeveloperFault {
		if e.Data != nil {
			entry = entry.WithField("data", fmt.Sprintf("%#v", e.Data))
		}
		entry.Error(e.Message)
		return
	}
	entry.Debug(e.Message)
}

// HandlerFunc is an http.HandlerFunc that reports failures by returning
// them.
type HandlerFunc func(rw http.ResponseWriter, r *http.Request) error

// Handler adapts fn with the zero Writer. See Writer.Handler.
func Handler(fn HandlerFunc, hints ...any) http.Handler {
	return Writer{}.Handler(fn, hints...)
}

// Handler adapts fn into an http.Handler. Returned errors and recovered
// panics are translated with hints and written. fn must not have written
// a response when it returns an error.
func (w Writer) Handler(fn HandlerFunc, hints ...any) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				w.WriteError(rw, v, hints...)
			}
		}()
		if err := fn(rw, r); err != nil {
			w.WriteError(rw, err, hints...)
		}
	})
}
