// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package newswire

import (
	"context"
	"log/slog"

	"github.com/poiesic/newswire/ai"
	"github.com/poiesic/newswire/ai/openai"
	"github.com/poiesic/newswire/config"
	"github.com/poiesic/newswire/ingestion"
	"github.com/poiesic/newswire/query"
	"github.com/poiesic/newswire/search"
	"github.com/poiesic/newswire/server"
	"github.com/poiesic/newswire/storage"
	"github.com/poiesic/newswire/storage/badger"
)

// Service wires storage, embeddings, ingestion, counting, and search
// into one unit built from a single configuration.
type Service struct {
	cfg      *config.Config
	backend  *badger.Backend
	articles storage.ArticleRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	embedder ai.Embedder
}

// WithEmbedder substitutes the embedding provider, mainly for tests.
func WithEmbedder(embedder ai.Embedder) ServiceOption {
	return func(o *serviceOptions) {
		o.embedder = embedder
	}
}

// NewService opens storage and the embedding provider described by cfg.
func NewService(cfg *config.Config, opts ...ServiceOption) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &serviceOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(cfg.Storage.Path, cfg.Storage.InMemory)
	if err != nil {
		return nil, err
	}
	articles := badger.NewArticleRepository(backend)

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(ai.NewConfig(
			ai.WithHost(cfg.Embedding.Host),
			ai.WithToken(cfg.Embedding.Token),
			ai.WithModel(cfg.Embedding.Model),
			ai.WithBatchSize(cfg.Embedding.BatchSize),
		))
		if err != nil {
			articles.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Service{
		cfg:      cfg,
		backend:  backend,
		articles: articles,
		embedder: embedder,
		logger:   slog.Default().With("component", "service"),
	}, nil
}

// Close releases storage resources.
func (s *Service) Close() error {
	if err := s.articles.Close(); err != nil {
		s.logger.Error("error closing article repository", "err", err)
		return err
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// ArticleRepository exposes the underlying article store.
func (s *Service) ArticleRepository() storage.ArticleRepository {
	return s.articles
}

// Ingest runs the load-once pipeline over the configured dataset and
// returns the number of articles inserted. A populated store makes it
// a no-op returning 0.
func (s *Service) Ingest(ctx context.Context) (int, error) {
	start, end, err := s.cfg.Window()
	if err != nil {
		return 0, err
	}

	pipeline, err := ingestion.NewPipeline(s.articles, s.embedder, s.cfg.Dataset.Path,
		ingestion.WithBatchSize(s.cfg.Embedding.BatchSize),
		ingestion.WithDateWindow(start, end),
		ingestion.WithPoolSize(s.cfg.Dataset.PoolSize),
	)
	if err != nil {
		return 0, err
	}
	return pipeline.Run(ctx)
}

// NewCounter builds a counter over the article store.
func (s *Service) NewCounter() (*query.Counter, error) {
	return query.NewCounter(s.articles)
}

// NewSearcher builds a semantic searcher with the configured threshold.
func (s *Service) NewSearcher() (*search.Searcher, error) {
	return search.NewSearcher(s.articles, s.embedder,
		search.WithMinSimilarity(s.cfg.Search.MinSimilarity),
	)
}

// Serve ingests the dataset, then serves the HTTP API until ctx is
// canceled. An ingestion failure is logged and serving continues with
// whatever the store already holds.
func (s *Service) Serve(ctx context.Context) error {
	if inserted, err := s.Ingest(ctx); err != nil {
		s.logger.Error("startup ingestion failed, serving existing data", "err", err)
	} else if inserted > 0 {
		s.logger.Info("startup ingestion complete", "inserted", inserted)
	}

	counter, err := s.NewCounter()
	if err != nil {
		return err
	}
	searcher, err := s.NewSearcher()
	if err != nil {
		return err
	}
	srv, err := server.NewServer(counter, searcher)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx, s.cfg.Server.Addr)
}
