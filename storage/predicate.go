package storage

import (
	"strings"

	"github.com/poiesic/newswire/core"
)

// pubDateLayout is the textual form pubDate patterns are matched against.
const pubDateLayout = "2006-01-02 15:04:05"

// Matches reports whether an article satisfies a query filter.
// Every present field must contain its pattern as a case-insensitive
// substring; present fields are AND-combined. A nil or empty filter matches
// everything.
func Matches(filter *core.QueryFilter, article *core.Article) bool {
	if filter == nil || article == nil {
		return article != nil
	}
	for name, pattern := range filter.Fields() {
		if !containsFold(fieldText(article, name), pattern) {
			return false
		}
	}
	return true
}

// fieldText returns the stored article field as text for substring matching.
// The pubDate timestamp is matched against its "YYYY-MM-DD HH:MM:SS" form.
func fieldText(article *core.Article, field string) string {
	switch field {
	case core.FieldTitle:
		return article.Title
	case core.FieldPubDate:
		return article.PubDate.Format(pubDateLayout)
	case core.FieldGUID:
		return article.GUID
	case core.FieldLink:
		return article.Link
	case core.FieldDescription:
		return article.Description
	}
	return ""
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
