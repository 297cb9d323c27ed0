package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/types"
)

// newTestServer builds a server over a fresh in-memory store.
func newTestServer(t *testing.T) (*Server, *db.MemoryStore) {
	t.Helper()
	store := db.NewMemoryStore()
	s := newServer(Config{Port: 0}, store, nil)
	t.Cleanup(func() {
		s.rateLimiter.Stop()
	})
	return s, store
}

func doRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return doRequest(s, req)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func seedJob(t *testing.T, store *db.MemoryStore, title string, skills ...string) *types.JobRole {
	t.Helper()
	job := &types.JobRole{
		ID:           uuid.New(),
		Title:        title,
		Description:  "Ship and operate production systems.",
		Requirements: "Hands-on experience with the listed stack.",
		Skills:       skills,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, store.CreateJob(context.Background(), job))
	return job
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(s, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(s, httptest.NewRequest("OPTIONS", "/api/jobs", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(s, httptest.NewRequest("GET", "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
