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
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the CLI, e.g.
// ORMERRORS_ADDR or ORMERRORS_LOG_LEVEL.
const EnvPrefix = "ORMERRORS"

// Config holds the settings shared by all subcommands. Flags win over the
// environment, which wins over the optional config file.
type Config struct {
	Resource          string
	Fields            []string
	RestrictFields    bool
	ValidationMessage string

	Explain    bool
	Descriptor bool
	Pretty     bool

	Addr string

	LogLevel  string
	LogFormat string
}

func newFlagSet(name string, out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.String("config", "", "optional config file (yaml, json or toml)")
	fs.String("resource", "", "resource name attached to validation problems")
	fs.StringSlice("fields", nil, "comma-separated allow-list of attribute names")
	fs.String("validation-message", "Validation Failed", "message of validation failures")
	fs.String("log-level", "info", "logrus level")
	fs.String("log-format", "text", "log format: text or json")
	return fs
}

// loadConfig binds fs into a fresh viper instance and reads the result.
func loadConfig(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "unable to bind flags")
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "unable to read config %s", path)
		}
	}

	cfg := &Config{
		Resource:          v.GetString("resource"),
		ValidationMessage: v.GetString("validation-message"),
		Explain:           v.GetBool("explain"),
		Descriptor:        v.GetBool("descriptor"),
		Pretty:            v.GetBool("pretty"),
		Addr:              v.GetString("addr"),
		LogLevel:          v.GetString("log-level"),
		LogFormat:         v.GetString("log-format"),
	}
	if v.IsSet("fields") {
		cfg.Fields = splitList(v.GetStringSlice("fields"))
		cfg.RestrictFields = true
	}
	return cfg, nil
}

// splitList flattens comma-separated items. Environment values arrive as
// a single "a,b" element.
func splitList(items []string) []string {
	out := []string{}
	for _, item := range items {
		for _, s := range strings.Split(item, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func newLogger(cfg *Config, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}
	logger.SetLevel(level)

	switch cfg.LogFormat {
	case "", "text":
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Errorf("unknown log format %q", cfg.LogFormat)
	}
	return logger, nil
}
