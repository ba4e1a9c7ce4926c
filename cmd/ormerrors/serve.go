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
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"dirpx.dev/ormerrors"
	"dirpx.dev/ormerrors/httpx"
	"dirpx.dev/ormerrors/internal/fixture"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

const maxBody = 1 << 20

func runServe(args []string, stderr io.Writer) int {
	fs := newFlagSet("serve", stderr)
	fs.String("addr", ":8080", "listen address")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg, err := loadConfig(fs)
	if err != nil {
		logrus.Error(err)
		return 1
	}
	logger, err := newLogger(cfg, stderr)
	if err != nil {
		logrus.Error(err)
		return 1
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Info("signal caught. shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error(err)
		}
	}()

	logger.WithField("addr", cfg.Addr).Info("listening")
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Error(err)
		return 1
	}
	return 0
}

type server struct {
	cfg    *Config
	writer httpx.Writer
}

// newRouter serves:
//
//	POST /translate?resource=user&fields=email,name   body: error fixture
//	GET  /healthz
func newRouter(cfg *Config, logger logrus.FieldLogger) http.Handler {
	s := &server{
		cfg:    cfg,
		writer: httpx.Writer{Translator: newTranslator(cfg), Logger: logger},
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Method(http.MethodPost, "/translate", s.writer.Handler(s.translate))
	r.Get("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusNoContent)
	})
	r.NotFound(s.writer.Handler(func(rw http.ResponseWriter, r *http.Request) error {
		return ormerrors.Wrap(nil, http.StatusNotFound, "No route for "+r.Method+" "+r.URL.Path)
	}).ServeHTTP)
	r.MethodNotAllowed(s.writer.Handler(func(rw http.ResponseWriter, r *http.Request) error {
		return ormerrors.Wrap(nil, http.StatusMethodNotAllowed, "Method not allowed")
	}).ServeHTTP)
	return r
}

func (s *server) translate(rw http.ResponseWriter, r *http.Request) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		return ormerrors.Wrap(err, http.StatusBadRequest, "Unable to read body")
	}
	v, err := fixture.Decode(data)
	if err != nil {
		return ormerrors.Wrap(err, http.StatusBadRequest, "")
	}
	s.writer.WriteError(rw, v, s.hints(r))
	return nil
}

// hints starts from the configured hints and applies the resource and
// fields query parameters.
func (s *server) hints(r *http.Request) ormerrors.Hints {
	h := s.cfg.hints()
	q := r.URL.Query()
	if q.Has("resource") {
		h.Resource = q.Get("resource")
	}
	if q.Has("fields") {
		h = h.AllowFields(splitList(strings.Split(q.Get("fields"), ","))...)
	}
	return h
}
