package ai

import (
	"context"
	"fmt"
	"log/slog"
)

// EmbedBatched embeds texts through e in contiguous batches of at most
// batchSize elements; the last batch may be smaller. The provider is called
// once per batch and the returned vectors preserve batch and within-batch
// order, so output position i always corresponds to input position i.
//
// A failure on any batch aborts the whole call; vectors from already-embedded
// batches are discarded rather than returned partially.
func EmbedBatched(ctx context.Context, e Embedder, texts []string, batchSize int) ([][]float32, error) {
	if e == nil {
		return nil, ErrEmbedderRequired
	}
	if batchSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBatchSize, batchSize)
	}

	logger := slog.Default().With("component", "embed-batched")
	vectors := make([][]float32, 0, len(texts))

	for start := 0; start < len(texts); start += batchSize {
		end := start + batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[start:end]

		logger.Info("sending batch to embedding provider",
			"batch", len(batch), "embedded", len(vectors), "total", len(texts))

		batchVectors, err := e.EmbedTexts(ctx, batch)
		if err != nil {
			logger.Error("failed to retrieve embeddings", "batch", len(batch), "err", err)
			return nil, err
		}
		if len(batchVectors) != len(batch) {
			return nil, fmt.Errorf("%w: expected %d, received %d",
				ErrEmbeddingCountMismatch, len(batch), len(batchVectors))
		}

		vectors = append(vectors, batchVectors...)
	}

	return vectors, nil
}
