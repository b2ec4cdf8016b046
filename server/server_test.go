package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/poiesic/newswire/ai/mock"
	"github.com/poiesic/newswire/core"
	"github.com/poiesic/newswire/query"
	"github.com/poiesic/newswire/search"
	"github.com/poiesic/newswire/storage"
	"github.com/poiesic/newswire/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	server   *Server
	repo     storage.ArticleRepository
	embedder *mock.MockEmbedder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	embedder := mock.NewMockEmbedder()

	counter, err := query.NewCounter(repo)
	require.NoError(t, err)
	searcher, err := search.NewSearcher(repo, embedder)
	require.NoError(t, err)
	srv, err := NewServer(counter, searcher)
	require.NoError(t, err)

	return &fixture{server: srv, repo: repo, embedder: embedder}
}

func (f *fixture) seed(t *testing.T, articles ...*core.Article) {
	t.Helper()
	_, err := f.repo.AddArticles(context.Background(), articles...)
	require.NoError(t, err)
}

func (f *fixture) post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(recorder, req)
	return recorder
}

func TestNewServer(t *testing.T) {
	f := newFixture(t)

	t.Run("nil counter", func(t *testing.T) {
		_, err := NewServer(nil, f.server.searcher)
		assert.Equal(t, ErrCounterRequired, err)
	})

	t.Run("nil searcher", func(t *testing.T) {
		_, err := NewServer(f.server.counter, nil)
		assert.Equal(t, ErrSearcherRequired, err)
	})
}

func TestHandleCount(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		&core.Article{
			Title:   "Election Results Certified",
			PubDate: time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC),
			GUID:    "pol-001",
			Content: "Election Results Certified ",
		},
		&core.Article{
			Title:   "Local Elections Postponed",
			PubDate: time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC),
			GUID:    "pol-002",
			Content: "Local Elections Postponed ",
		},
	)

	t.Run("matching filter", func(t *testing.T) {
		recorder := f.post(t, "/news/count", map[string]any{"title": "election"})
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp countResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Count)
	})

	t.Run("combined filters", func(t *testing.T) {
		recorder := f.post(t, "/news/count", map[string]any{
			"title": "election",
			"guid":  "pol-001",
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp countResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("zero matches is a valid answer", func(t *testing.T) {
		recorder := f.post(t, "/news/count", map[string]any{"title": "sports"})
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp countResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Zero(t, resp.Count)
	})

	t.Run("empty filter rejected", func(t *testing.T) {
		recorder := f.post(t, "/news/count", map[string]any{})
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})

	t.Run("non-string value rejected", func(t *testing.T) {
		recorder := f.post(t, "/news/count", map[string]any{"title": 42})
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/news/count", bytes.NewReader([]byte("{not json")))
		recorder := httptest.NewRecorder()
		f.server.Handler().ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandleSearch(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		&core.Article{
			Title:       "Markets Rally on Rate Hopes",
			Description: "Stocks climb as investors expect cuts",
			Link:        "https://news.example.com/markets/rally",
			GUID:        "fin-010",
			PubDate:     time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC),
			Content:     "Markets Rally on Rate Hopes Stocks climb as investors expect cuts",
			Vector:      []float32{1, 0},
		},
		&core.Article{
			Title:   "Rainfall Records Broken",
			GUID:    "weather-003",
			Content: "Rainfall Records Broken ",
			Vector:  []float32{0, 1},
		},
	)

	t.Run("ranked results", func(t *testing.T) {
		f.embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return []float32{1, 0.2}, nil
		}

		recorder := f.post(t, "/news/search", searchRequest{Query: "stock market news"})
		require.Equal(t, http.StatusOK, recorder.Code)

		var items []searchResultItem
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "Markets Rally on Rate Hopes", items[0].Title)
		assert.Equal(t, "fin-010", items[0].GUID)
		assert.Equal(t, "2024-03-14T10:00:00Z", items[0].PublishedDate)
		assert.InDelta(t, 0.9806, items[0].Similarity, 0.0001)
	})

	t.Run("no relevant news", func(t *testing.T) {
		f.embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return []float32{-1, -1}, nil
		}

		recorder := f.post(t, "/news/search", searchRequest{Query: "unrelated topic"})
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp messageResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "No relevant news found.", resp.Message)
	})

	t.Run("empty query rejected", func(t *testing.T) {
		recorder := f.post(t, "/news/search", searchRequest{Query: "  "})
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	f := newFixture(t)
	f.seed(t, &core.Article{Title: "One", Content: "One "})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	recorder := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.EqualValues(t, 1, resp["articles"])
}

func TestRequestIDHeader(t *testing.T) {
	f := newFixture(t)

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		recorder := httptest.NewRecorder()
		f.server.Handler().ServeHTTP(recorder, req)
		assert.NotEmpty(t, recorder.Header().Get("X-Request-Id"))
	})

	t.Run("propagated when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("X-Request-Id", "req-123")
		recorder := httptest.NewRecorder()
		f.server.Handler().ServeHTTP(recorder, req)
		assert.Equal(t, "req-123", recorder.Header().Get("X-Request-Id"))
	})
}
