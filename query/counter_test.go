package query

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/newswire/core"
	"github.com/poiesic/newswire/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedArticles(t *testing.T) (*Counter, func()) {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)

	ctx := context.Background()
	_, err = repo.AddArticles(ctx,
		&core.Article{
			Title:       "Central Bank Holds Rates Steady",
			PubDate:     time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
			GUID:        "econ-001",
			Link:        "https://news.example.com/econ/rates-steady",
			Description: "Policy makers signal patience on inflation",
			Content:     "Central Bank Holds Rates Steady Policy makers signal patience on inflation",
		},
		&core.Article{
			Title:       "Storm Season Arrives Early",
			PubDate:     time.Date(2024, 3, 2, 18, 0, 0, 0, time.UTC),
			GUID:        "weather-017",
			Link:        "https://news.example.com/weather/storm-season",
			Description: "Forecasters warn of an active spring",
			Content:     "Storm Season Arrives Early Forecasters warn of an active spring",
		},
		&core.Article{
			Title:       "Rates Cut Expected by Summer",
			PubDate:     time.Date(2024, 5, 20, 7, 0, 0, 0, time.UTC),
			GUID:        "econ-042",
			Link:        "https://news.example.com/econ/rates-cut",
			Description: "Markets price in easing after soft inflation print",
			Content:     "Rates Cut Expected by Summer Markets price in easing after soft inflation print",
		},
	)
	require.NoError(t, err)

	counter, err := NewCounter(repo)
	require.NoError(t, err)

	return counter, func() {
		repo.Close()
		backend.Close()
	}
}

func TestNewCounter(t *testing.T) {
	t.Run("nil repository", func(t *testing.T) {
		_, err := NewCounter(nil)
		assert.Equal(t, ErrArticleRepositoryRequired, err)
	})

	t.Run("valid configuration", func(t *testing.T) {
		repo, backend, err := badger.NewMemoryRepository()
		require.NoError(t, err)
		defer func() {
			repo.Close()
			backend.Close()
		}()

		counter, err := NewCounter(repo)
		require.NoError(t, err)
		assert.NotNil(t, counter)
	})
}

func TestCountMatching(t *testing.T) {
	counter, cleanup := seedArticles(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("single field", func(t *testing.T) {
		count, err := counter.CountMatching(ctx, &core.QueryFilter{Title: "rates"})
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("case insensitive", func(t *testing.T) {
		count, err := counter.CountMatching(ctx, &core.QueryFilter{Title: "RATES"})
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("fields combine with AND", func(t *testing.T) {
		count, err := counter.CountMatching(ctx, &core.QueryFilter{
			Title: "rates",
			GUID:  "econ-001",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("pubDate textual match", func(t *testing.T) {
		count, err := counter.CountMatching(ctx, &core.QueryFilter{PubDate: "2024-03"})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("no matches", func(t *testing.T) {
		count, err := counter.CountMatching(ctx, &core.QueryFilter{Title: "cricket"})
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("nil filter rejected", func(t *testing.T) {
		_, err := counter.CountMatching(ctx, nil)
		assert.ErrorIs(t, err, core.ErrInvalidQueryFilter)
	})

	t.Run("empty filter rejected", func(t *testing.T) {
		_, err := counter.CountMatching(ctx, &core.QueryFilter{})
		assert.ErrorIs(t, err, core.ErrNoFilterFields)
	})
}

func TestCountAll(t *testing.T) {
	counter, cleanup := seedArticles(t)
	defer cleanup()

	count, err := counter.CountAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
