package newswire

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/newswire/ai/mock"
	"github.com/poiesic/newswire/config"
	"github.com/poiesic/newswire/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, rows int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "news.csv")
	content := "title,pubDate,guid,link,description\n"
	for i := 0; i < rows; i++ {
		content += fmt.Sprintf(
			"Headline %d,2024-02-%02d 09:00:00,guid-%d,https://news.example.com/%d,Summary %d\n",
			i, i%28+1, i, i, i,
		)
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestService(t *testing.T, datasetPath string) *Service {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.InMemory = true
	cfg.Dataset.Path = datasetPath
	cfg.Dataset.PoolSize = 2

	service, err := NewService(cfg, WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	t.Cleanup(func() { service.Close() })
	return service
}

func TestServiceIngestAndQuery(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t, writeDataset(t, 5))

	inserted, err := service.Ingest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, inserted)

	t.Run("second ingest is a no-op", func(t *testing.T) {
		inserted, err := service.Ingest(ctx)
		require.NoError(t, err)
		assert.Zero(t, inserted)
	})

	t.Run("counter sees ingested articles", func(t *testing.T) {
		counter, err := service.NewCounter()
		require.NoError(t, err)

		count, err := counter.CountMatching(ctx, &core.QueryFilter{Title: "headline"})
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})

	t.Run("searcher finds ingested articles", func(t *testing.T) {
		searcher, err := service.NewSearcher()
		require.NoError(t, err)

		// The deterministic test embedder maps equal text to equal
		// vectors, so an exact content query scores 1.0.
		results, err := searcher.Search(ctx, "Headline 3 Summary 3")
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "Headline 3", results[0].Article.Title)
	})
}

func TestServiceIngestMissingDataset(t *testing.T) {
	service := newTestService(t, filepath.Join(t.TempDir(), "absent.csv"))

	_, err := service.Ingest(context.Background())
	require.Error(t, err)

	count, err := service.ArticleRepository().Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNewServiceValidatesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Embedding.BatchSize = -1

	_, err := NewService(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
