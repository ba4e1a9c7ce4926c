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


package main

import (
	"fmt"
	"io"
	"os"

	"dirpx.dev/ormerrors/adapter"
	"dirpx.dev/ormerrors/internal/fixture"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func runTranslate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := newFlagSet("translate", stderr)
	fs.Bool("explain", false, "print which mapper rule produced the statuses")
	fs.Bool("descriptor", false, "print the log descriptor instead of the payload")
	fs.Bool("pretty", false, "indent JSON output")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg, err := loadConfig(fs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := translate(cfg, fs.Arg(0), stdin, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func translate(cfg *Config, path string, stdin io.Reader, stdout io.Writer) error {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return errors.Wrap(err, "unable to read fixture")
	}
	v, err := fixture.Decode(data)
	if err != nil {
		return err
	}

	tr := newTranslator(cfg)
	e := tr.TranslateWith(v, cfg.hints())

	var out any = adapter.ToPayload(e)
	if cfg.Descriptor {
		out = adapter.ToDescriptor(e, tr.Mapper().Status(e.Code, e.Reason))
	}
	var body []byte
	if cfg.Pretty {
		body, err = json.MarshalIndent(out, "", "  ")
	} else {
		body, err = json.Marshal(out)
	}
	if err != nil {
		return errors.Wrap(err, "unable to marshal output")
	}
	if _, err := fmt.Fprintf(stdout, "%s\n", body); err != nil {
		return err
	}
	if cfg.Explain {
		_, err = fmt.Fprintln(stdout, tr.Mapper().Explain(e.Code, e.Reason))
	}
	return err
}
