package server

import "errors"

var (
	// ErrCounterRequired is returned when a counter is not provided.
	ErrCounterRequired = errors.New("counter required")

	// ErrSearcherRequired is returned when a searcher is not provided.
	ErrSearcherRequired = errors.New("searcher required")
)
