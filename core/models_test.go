package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("https://www.bbc.co.uk/news/articles/1")
		id2 := IDFromContent("https://www.bbc.co.uk/news/articles/1")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content different id", func(t *testing.T) {
		id1 := IDFromContent("article one")
		id2 := IDFromContent("article two")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content is valid", func(t *testing.T) {
		// Still hashes; callers decide whether empty keys are acceptable
		assert.Equal(t, IDFromContent(""), IDFromContent(""))
	})
}

func TestArticleNaturalKey(t *testing.T) {
	t.Run("prefers guid", func(t *testing.T) {
		a := &Article{GUID: "guid-1", Content: "title description"}
		assert.Equal(t, "guid-1", a.NaturalKey())
	})

	t.Run("falls back to content", func(t *testing.T) {
		a := &Article{Content: "title description"}
		assert.Equal(t, "title description", a.NaturalKey())
	})
}

func TestContentOf(t *testing.T) {
	assert.Equal(t, "a b", ContentOf("a", "b"))
	assert.Equal(t, "a ", ContentOf("a", ""))
	assert.Equal(t, " b", ContentOf("", "b"))
	assert.Equal(t, " ", ContentOf("", ""))
}

func TestQueryFilterFields(t *testing.T) {
	t.Run("empty filter has no fields", func(t *testing.T) {
		f := &QueryFilter{}
		assert.True(t, f.IsEmpty())
		assert.Empty(t, f.Fields())
	})

	t.Run("only non-empty fields are present", func(t *testing.T) {
		f := &QueryFilter{Title: "Israel", Link: "bbc.co.uk"}
		assert.False(t, f.IsEmpty())
		assert.Equal(t, map[string]string{
			FieldTitle: "Israel",
			FieldLink:  "bbc.co.uk",
		}, f.Fields())
	})

	t.Run("string form lists fields in stable order", func(t *testing.T) {
		f := &QueryFilter{Description: "election", Title: "Israel"}
		assert.Equal(t, "{title=Israel description=election}", f.String())
	})
}

func TestArticleZeroValue(t *testing.T) {
	var a Article
	assert.True(t, a.PubDate.Equal(time.Time{}))
	assert.Empty(t, a.Vector)
}
