// Package mock provides a test double for the ai.Embedder interface.
// The default behavior produces deterministic vectors derived from an FNV
// hash of the input text, so tests get stable similarity orderings without
// an external embedding service.
package mock
