package storage

import (
	"context"

	"github.com/poiesic/newswire/core"
)

// ArticleRepository provides operations over the article collection.
// It is the only component with read/write access to stored articles;
// callers hold no copies beyond transient in-memory batches.
// Implementations must be thread-safe and support concurrent access.
type ArticleRepository interface {
	// Count returns the number of stored articles matching the filter.
	// A nil filter counts all documents. Filter evaluation follows the
	// Matches predicate: case-insensitive substring per field, AND-combined.
	Count(ctx context.Context, filter *core.QueryFilter) (int, error)

	// AddArticles writes all articles in one bulk write and returns the
	// number written. The write may commit in chunks internally; IDs are
	// content-derived, so re-applying a partially written batch converges.
	// Articles with Id zero get a content-derived ID assigned. An empty
	// input is a caller error (ErrEmptyInsert), not a no-op.
	AddArticles(ctx context.Context, articles ...*core.Article) (int, error)

	// GetAllArticles returns every stored article. This is a full scan and
	// is only used by the semantic search engine.
	GetAllArticles(ctx context.Context) ([]*core.Article, error)

	// Close closes the repository and releases resources.
	Close() error
}
