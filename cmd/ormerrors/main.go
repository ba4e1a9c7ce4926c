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


// Command ormerrors translates ORM error fixtures into normalized HTTP
// errors, either once from a file or as a small HTTP service.
//
//	ormerrors translate [flags] [file]
//	ormerrors serve [flags]
package main

import (
	"fmt"
	"io"
	"os"

	"dirpx.dev/ormerrors"
	"dirpx.dev/ormerrors/driver/dynamo"
	"dirpx.dev/ormerrors/driver/pg"
	"dirpx.dev/ormerrors/driver/validate"
)

const usage = `usage: ormerrors <command> [flags]

commands:
  translate [file]   translate a JSON error fixture (stdin when file is omitted)
  serve              serve POST /translate over HTTP
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	switch args[0] {
	case "translate":
		return runTranslate(args[1:], stdin, stdout, stderr)
	case "serve":
		return runServe(args[1:], stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	}
	fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
	return 2
}

// newTranslator returns a translator with every driver converter.
func newTranslator(cfg *Config) *ormerrors.Translator {
	return ormerrors.New(
		ormerrors.WithConverters(validate.Convert, pg.Convert, dynamo.Convert),
		ormerrors.WithValidationMessage(cfg.ValidationMessage),
	)
}

func (cfg *Config) hints() ormerrors.Hints {
	h := ormerrors.Hints{Resource: cfg.Resource}
	if cfg.RestrictFields {
		h = h.AllowFields(cfg.Fields...)
	}
	return h
}
