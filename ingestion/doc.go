// Package ingestion provides the load-once ETL pipeline for the news
// dataset.
//
// The Pipeline reads the source CSV, normalizes and filters rows to the
// configured publication window, deduplicates by title and then by
// description, enriches the survivors with embeddings, and persists them in
// a single bulk insert. The run is gated on the collection being empty, so
// restarting the process never loads the dataset twice.
//
// Row parsing is fanned out on a worker pool with index-addressed results;
// embedding calls stay sequential per batch. Any failure aborts the whole
// run before the final bulk insert, leaving the collection untouched.
package ingestion
