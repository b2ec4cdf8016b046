package ai

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrInvalidBatchSize is returned for non-positive batch sizes.
	ErrInvalidBatchSize = errors.New("batch size must be positive")

	// ErrEmbeddingCountMismatch indicates the provider returned a different
	// number of vectors than texts sent.
	ErrEmbeddingCountMismatch = errors.New("embedding result mismatch")
)
