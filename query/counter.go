package query

import (
	"context"
	"log/slog"

	"github.com/poiesic/newswire/core"
	"github.com/poiesic/newswire/storage"
)

// Counter counts stored articles matching structured filters.
type Counter struct {
	articles storage.ArticleRepository
	logger   *slog.Logger
}

// Option configures a Counter.
type Option func(*Counter) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Counter) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewCounter creates a new counter.
func NewCounter(articles storage.ArticleRepository, opts ...Option) (*Counter, error) {
	if articles == nil {
		return nil, ErrArticleRepositoryRequired
	}

	c := &Counter{
		articles: articles,
		logger:   slog.Default().With("component", "query"),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// CountMatching validates the filter and returns the number of stored
// articles where every non-empty filter field is a case-insensitive
// substring of the corresponding article field.
func (c *Counter) CountMatching(ctx context.Context, filter *core.QueryFilter) (int, error) {
	if err := core.ValidateQueryFilter(filter); err != nil {
		return 0, err
	}

	count, err := c.articles.Count(ctx, filter)
	if err != nil {
		c.logger.Error("error counting articles", "err", err)
		return 0, err
	}

	c.logger.Debug("counted matching articles", "filter", filter.String(), "count", count)
	return count, nil
}

// CountAll returns the total number of stored articles.
func (c *Counter) CountAll(ctx context.Context) (int, error) {
	count, err := c.articles.Count(ctx, nil)
	if err != nil {
		c.logger.Error("error counting articles", "err", err)
		return 0, err
	}
	return count, nil
}
