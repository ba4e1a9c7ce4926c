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


// Package fixture decodes JSON descriptions of incoming errors.
//
// A fixture names the kind of value to build:
//
//	{"kind": "orm", "status": 409, "reason": "Record already exists"}
//	{"kind": "validation", "invalidAttributes": {"email": [{"rule": "unique"}]}}
//	{"kind": "usage", "reason": "unknown model"}
//	{"kind": "error", "message": "boom"}
//	{"kind": "value", "value": {"anything": true}}
//	{"kind": "normalized", "code": "conflict", "message": "taken"}
package fixture

import (
	"os"

	"dirpx.dev/ormerrors"
	"dirpx.dev/ormerrors/code"
	"dirpx.dev/ormerrors/orm"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Fixture is the JSON form of an incoming error.
type Fixture struct {
	Kind    string `json:"kind"`
	Status  int    `json:"status,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
	Model   string `json:"model,omitempty"`

	InvalidAttributes *orm.Attributes `json:"invalidAttributes,omitempty"`

	Value jsoniter.RawMessage `json:"value,omitempty"`

	// Cause is wrapped by orm and usage fixtures.
	Cause *Fixture `json:"cause,omitempty"`
}

// Case is one named translation: an error fixture plus hints.
type Case struct {
	Name     string   `json:"name"`
	Resource string   `json:"resource,omitempty"`
	Fields   []string `json:"fields,omitempty"`
	Error    Fixture  `json:"error"`
}

// Hints returns the translation hints of c. A present "fields" key
// restricts, even when empty.
func (c Case) Hints() ormerrors.Hints {
	h := ormerrors.Hints{Resource: c.Resource}
	if c.Fields != nil {
		h = h.AllowFields(c.Fields...)
	}
	return h
}

// Decode parses data as a Fixture and builds its value.
func Decode(data []byte) (any, error) {
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "unable to decode fixture")
	}
	return f.Build()
}

// LoadCases reads a JSON array of cases from path.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read cases")
	}
	var cases []Case
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, errors.Wrapf(err, "unable to decode cases in %s", path)
	}
	return cases, nil
}

// Build returns the value f describes.
func (f *Fixture) Build() (any, error) {
	var cause error
	if f.Cause != nil {
		v, err := f.Cause.Build()
		if err != nil {
			return nil, errors.Wrap(err, "cause")
		}
		var ok bool
		if cause, ok = v.(error); !ok {
			return nil, errors.Errorf("cause of kind %q is not an error", f.Cause.Kind)
		}
	}

	switch f.Kind {
	case "orm":
		return &orm.Error{Status: f.Status, Reason: f.Reason, Err: cause}, nil
	case "validation":
		return &orm.ValidationError{Model: f.Model, Attributes: f.InvalidAttributes, Reason: f.Reason}, nil
	case "usage":
		return &orm.UsageError{Reason: f.Reason, Err: cause}, nil
	case "error":
		if cause != nil {
			return errors.Wrap(cause, f.Message), nil
		}
		return errors.New(f.Message), nil
	case "value":
		if len(f.Value) == 0 {
			return nil, nil
		}
		var v any
		if err := json.Unmarshal(f.Value, &v); err != nil {
			return nil, errors.Wrap(err, "unable to decode value")
		}
		return v, nil
	case "normalized":
		c, err := code.Parse(f.Code)
		if err != nil {
			return nil, errors.Wrap(err, "normalized fixture")
		}
		opts := []ormerrors.Option{ormerrors.WithCauseOption(cause)}
		if f.Status != 0 {
			opts = append(opts, ormerrors.WithStatusOption(f.Status))
		}
		return ormerrors.E(c, f.Message, opts...), nil
	}
	return nil, errors.Errorf("unknown fixture kind %q", f.Kind)
}
