package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQueryFilter(t *testing.T) {
	t.Run("nil filter", func(t *testing.T) {
		err := ValidateQueryFilter(nil)
		assert.ErrorIs(t, err, ErrInvalidQueryFilter)
	})

	t.Run("all fields empty", func(t *testing.T) {
		err := ValidateQueryFilter(&QueryFilter{})
		assert.ErrorIs(t, err, ErrInvalidQueryFilter)
		assert.ErrorIs(t, err, ErrNoFilterFields)
	})

	t.Run("single field is enough", func(t *testing.T) {
		assert.NoError(t, ValidateQueryFilter(&QueryFilter{GUID: "abc"}))
	})

	t.Run("all fields set", func(t *testing.T) {
		assert.NoError(t, ValidateQueryFilter(&QueryFilter{
			Title:       "a",
			PubDate:     "2024",
			GUID:        "b",
			Link:        "c",
			Description: "d",
		}))
	})
}

func TestQueryFilterFromMap(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		filter, err := QueryFilterFromMap(map[string]any{
			"title":   "Israel",
			"pubDate": "2024-03",
		})
		require.NoError(t, err)
		assert.Equal(t, "Israel", filter.Title)
		assert.Equal(t, "2024-03", filter.PubDate)
		assert.Empty(t, filter.Description)
	})

	t.Run("no recognized fields", func(t *testing.T) {
		_, err := QueryFilterFromMap(map[string]any{"author": "someone"})
		assert.ErrorIs(t, err, ErrNoFilterFields)
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := QueryFilterFromMap(map[string]any{})
		assert.ErrorIs(t, err, ErrNoFilterFields)
	})

	t.Run("empty string values do not count", func(t *testing.T) {
		_, err := QueryFilterFromMap(map[string]any{"title": ""})
		assert.ErrorIs(t, err, ErrNoFilterFields)
	})

	t.Run("non-string value rejected", func(t *testing.T) {
		_, err := QueryFilterFromMap(map[string]any{"title": 42})
		assert.ErrorIs(t, err, ErrFieldNotString)
	})

	t.Run("non-string value on unknown key rejected", func(t *testing.T) {
		_, err := QueryFilterFromMap(map[string]any{
			"title": "Israel",
			"limit": 10,
		})
		assert.ErrorIs(t, err, ErrFieldNotString)
	})

	t.Run("null values are ignored", func(t *testing.T) {
		filter, err := QueryFilterFromMap(map[string]any{
			"title": "Israel",
			"guid":  nil,
		})
		require.NoError(t, err)
		assert.Empty(t, filter.GUID)
	})

	t.Run("unknown string keys are ignored", func(t *testing.T) {
		filter, err := QueryFilterFromMap(map[string]any{
			"title":  "Israel",
			"author": "someone",
		})
		require.NoError(t, err)
		assert.Equal(t, &QueryFilter{Title: "Israel"}, filter)
	})
}

func TestValidateArticle(t *testing.T) {
	t.Run("nil article", func(t *testing.T) {
		assert.ErrorIs(t, ValidateArticle(nil), ErrInvalidArticle)
	})

	t.Run("empty content", func(t *testing.T) {
		err := ValidateArticle(&Article{Title: "has title"})
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("valid article", func(t *testing.T) {
		assert.NoError(t, ValidateArticle(&Article{Content: "title description"}))
	})
}
