package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored articles.
// It is generated using content-based hashing, so loading the same dataset
// twice produces the same IDs.
type ID uint64

// IDFromContent generates a deterministic ID from text using BLAKE2b hashing.
// Identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Article represents a single news article as stored in the collection.
// Vector is populated during ingestion enrichment and corresponds to Content
// at enrichment time; it is empty only for records that predate enrichment.
type Article struct {
	Id          ID
	Title       string
	PubDate     time.Time
	GUID        string // Natural identifier from the source feed
	Link        string
	Description string
	Content     string    // Title and Description, space-joined
	Vector      []float32 // Embedding vector for semantic search
}

// NaturalKey returns the text the article's ID is derived from.
// The source GUID is preferred; articles without one fall back to content.
func (a *Article) NaturalKey() string {
	if a.GUID != "" {
		return a.GUID
	}
	return a.Content
}

// ContentOf derives the embedding text for an article: title and description
// space-joined, with missing values treated as empty strings.
func ContentOf(title, description string) string {
	return title + " " + description
}

// Recognized filter field names, matching the source dataset columns.
const (
	FieldTitle       = "title"
	FieldPubDate     = "pubDate"
	FieldGUID        = "guid"
	FieldLink        = "link"
	FieldDescription = "description"
)

// FilterFields lists the recognized filter field names in a stable order.
var FilterFields = []string{
	FieldTitle,
	FieldPubDate,
	FieldGUID,
	FieldLink,
	FieldDescription,
}

// QueryFilter expresses case-insensitive substring constraints over the
// recognized article fields. Empty fields are excluded from matching
// entirely, they are never matched as empty strings.
type QueryFilter struct {
	Title       string
	PubDate     string
	GUID        string
	Link        string
	Description string
}

// Fields returns the non-empty field/pattern pairs of the filter,
// keyed by the recognized field names.
func (f *QueryFilter) Fields() map[string]string {
	fields := make(map[string]string, 5)
	if f.Title != "" {
		fields[FieldTitle] = f.Title
	}
	if f.PubDate != "" {
		fields[FieldPubDate] = f.PubDate
	}
	if f.GUID != "" {
		fields[FieldGUID] = f.GUID
	}
	if f.Link != "" {
		fields[FieldLink] = f.Link
	}
	if f.Description != "" {
		fields[FieldDescription] = f.Description
	}
	return fields
}

// IsEmpty reports whether no recognized field carries a pattern.
func (f *QueryFilter) IsEmpty() bool {
	return f.Title == "" && f.PubDate == "" && f.GUID == "" &&
		f.Link == "" && f.Description == ""
}

func (f *QueryFilter) String() string {
	fields := f.Fields()
	pairs := make([]string, 0, len(fields))
	for _, name := range FilterFields {
		if v, ok := fields[name]; ok {
			pairs = append(pairs, name+"="+v)
		}
	}
	return "{" + strings.Join(pairs, " ") + "}"
}

// SearchResult represents a semantic search hit with its similarity score.
// Results are transient and never persisted.
type SearchResult struct {
	Article *Article
	Score   float32
}
