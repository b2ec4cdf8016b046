package query

import "errors"

var (
	// ErrArticleRepositoryRequired is returned when an article repository is
	// not provided.
	ErrArticleRepositoryRequired = errors.New("article repository required")
)
