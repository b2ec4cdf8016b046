// Package server exposes the article collection over HTTP: filtered
// counting, semantic search, and health endpoints.
package server
