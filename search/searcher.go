package search

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/newswire/ai"
	"github.com/poiesic/newswire/core"
	"github.com/poiesic/newswire/storage"
)

// DefaultMinSimilarity is the cosine similarity cutoff below which articles
// are not considered relevant to a query.
const DefaultMinSimilarity = 0.45

// Searcher provides semantic search over the article collection.
type Searcher struct {
	articles      storage.ArticleRepository
	embedder      ai.Embedder
	minSimilarity float32
	logger        *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithMinSimilarity sets the similarity threshold.
// Default is DefaultMinSimilarity.
func WithMinSimilarity(min float32) Option {
	return func(s *Searcher) error {
		s.minSimilarity = min
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	articles storage.ArticleRepository,
	embedder ai.Embedder,
	opts ...Option,
) (*Searcher, error) {
	if articles == nil {
		return nil, ErrArticleRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		articles:      articles,
		embedder:      embedder,
		minSimilarity: DefaultMinSimilarity,
		logger:        slog.Default().With("component", "search"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search scores every stored article against the query and returns the ones
// at or above the similarity threshold, ranked by descending score with ties
// kept in retrieval order. Scores are rounded to 4 decimal places.
//
// When no article reaches the threshold, Search returns ErrNoRelevantNews
// rather than an empty list, so callers can tell "nothing relevant" apart
// from a shorter ranked list.
func (s *Searcher) Search(ctx context.Context, query string) ([]*core.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	queryVector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "err", err)
		return nil, err
	}

	articles, err := s.articles.GetAllArticles(ctx)
	if err != nil {
		s.logger.Error("error retrieving articles for search", "err", err)
		return nil, err
	}

	results := make([]*core.SearchResult, 0, len(articles))
	skipped := 0
	for _, article := range articles {
		// Articles without an embedding are skipped, not scored as zero
		if len(article.Vector) == 0 {
			skipped++
			continue
		}
		similarity := CosineSimilarity(queryVector, article.Vector)
		if similarity >= s.minSimilarity {
			results = append(results, &core.SearchResult{
				Article: article,
				Score:   similarity,
			})
		}
	}
	if skipped > 0 {
		s.logger.Warn("skipped articles without embeddings", "skipped", skipped)
	}

	if len(results) == 0 {
		s.logger.Info("no articles above similarity threshold",
			"scanned", len(articles), "threshold", s.minSimilarity)
		return nil, ErrNoRelevantNews
	}

	slices.SortStableFunc(results, func(a, b *core.SearchResult) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	for _, result := range results {
		result.Score = roundScore(result.Score)
	}

	return results, nil
}
