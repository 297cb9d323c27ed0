package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/db"
)

// handleListResults returns one page of screening results. Query parameters:
// job, batch, search, sortBy (score|name|createdAt), sortDir (asc|desc),
// page, limit.
func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := db.ResultFilters{
		Search:  q.Get("search"),
		SortBy:  q.Get("sortBy"),
		SortDir: q.Get("sortDir"),
	}

	if v := q.Get("job"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid job ID")
			return
		}
		filters.JobID = id
	}
	if v := q.Get("batch"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid batch ID")
			return
		}
		filters.BatchID = id
	}
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid page")
			return
		}
		filters.Page = page
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filters.Limit = limit
	}
	if filters.Page == 0 {
		filters.Page = 1
	}
	if filters.Limit == 0 {
		filters.Limit = db.DefaultPageSize
	}
	if filters.Limit > db.MaxPageSize {
		filters.Limit = db.MaxPageSize
	}

	results, total, err := s.store.ListResults(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	page := make([]resultResponse, 0, len(results))
	for _, res := range results {
		page = append(page, toResultResponse(res))
	}

	totalPages := total / filters.Limit
	if total%filters.Limit != 0 {
		totalPages++
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"results":    page,
		"total":      total,
		"page":       filters.Page,
		"limit":      filters.Limit,
		"totalPages": totalPages,
	})
}

// handleStats returns store-wide aggregates.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetStats(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}
