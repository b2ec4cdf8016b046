package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/poiesic/newswire/core"
	"github.com/poiesic/newswire/search"
)

// noRelevantNewsMessage is returned instead of a result list when no
// stored article clears the similarity threshold.
const noRelevantNewsMessage = "No relevant news found."

type countResponse struct {
	Count int `json:"count"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type searchResultItem struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Link          string  `json:"link"`
	PublishedDate string  `json:"published_date"`
	GUID          string  `json:"guid"`
	Similarity    float32 `json:"similarity"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.writeError(w, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	filter, err := core.QueryFilterFromMap(raw)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	count, err := s.counter.CountMatching(r.Context(), filter)
	if err != nil {
		if errors.Is(err, core.ErrInvalidQueryFilter) {
			s.writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.logger.Error("count request failed", "err", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.writeJSON(w, http.StatusOK, countResponse{Count: count})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	results, err := s.searcher.Search(r.Context(), req.Query)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrNoRelevantNews):
			s.writeJSON(w, http.StatusOK, messageResponse{Message: noRelevantNewsMessage})
		case errors.Is(err, search.ErrEmptyQuery):
			s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			s.logger.Error("search request failed", "err", err)
			s.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	items := make([]searchResultItem, 0, len(results))
	for _, result := range results {
		items = append(items, searchResultItem{
			Title:         result.Article.Title,
			Description:   result.Article.Description,
			Link:          result.Article.Link,
			PublishedDate: result.Article.PubDate.Format(time.RFC3339),
			GUID:          result.Article.GUID,
			Similarity:    result.Score,
		})
	}

	s.writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	count, err := s.counter.CountAll(r.Context())
	if err != nil {
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "unhealthy",
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":   "healthy",
		"articles": count,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("error encoding response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}
