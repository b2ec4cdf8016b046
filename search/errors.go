package search

import "errors"

var (
	// ErrArticleRepositoryRequired is returned when an article repository is
	// not provided.
	ErrArticleRepositoryRequired = errors.New("article repository required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrEmptyQuery is returned for blank search queries.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrNoRelevantNews is the explicit no-results marker: no stored article
	// reached the similarity threshold. Callers can tell it apart from any
	// ranked list, including from a search error.
	ErrNoRelevantNews = errors.New("no relevant news found")
)
