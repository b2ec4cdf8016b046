// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/newswire/query"
	"github.com/poiesic/newswire/search"
)

// Server serves the news API over HTTP.
type Server struct {
	counter  *query.Counter
	searcher *search.Searcher
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewServer creates a new API server.
func NewServer(counter *query.Counter, searcher *search.Searcher, opts ...Option) (*Server, error) {
	if counter == nil {
		return nil, ErrCounterRequired
	}
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	s := &Server{
		counter:  counter,
		searcher: searcher,
		logger:   slog.Default().With("component", "server"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Handler returns the routed handler with request logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /news/count", s.handleCount)
	mux.HandleFunc("POST /news/search", s.handleSearch)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.withRequestLogging(mux)
}

// ListenAndServe runs the server on addr until ctx is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	s.logger.Info("http server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
