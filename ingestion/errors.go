package ingestion

import "errors"

var (
	// ErrArticleRepositoryRequired is returned when an article repository is
	// not provided.
	ErrArticleRepositoryRequired = errors.New("article repository required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrLoadFailed wraps every failure of a dataset load attempt. The
	// collection stays unpopulated; a retry is manual.
	ErrLoadFailed = errors.New("error loading data")

	// ErrNoSurvivingRows indicates filtering and deduplication left nothing
	// to insert. Inserting zero rows is treated as a failure, not a no-op.
	ErrNoSurvivingRows = errors.New("no rows left after filtering")

	// ErrMissingColumn indicates the dataset header lacks a required column.
	ErrMissingColumn = errors.New("dataset missing required column")

	// ErrBadPubDate indicates a row's pubDate could not be parsed.
	ErrBadPubDate = errors.New("unparseable pubDate")
)
