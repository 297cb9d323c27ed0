package server

import (
	"archive/zip"
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/types"
)

func buildDOCX(t *testing.T, lines ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, line := range lines {
		fmt.Fprintf(&body, `<w:p><w:r><w:t>%s</w:t></w:r></w:p>`, line)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

type uploadFile struct {
	name        string
	contentType string
	data        []byte
}

func uploadRequest(t *testing.T, jobID string, files ...uploadFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("jobId", jobID))
	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="resumes"; filename="%s"`, f.name))
		header.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

type uploadResponse struct {
	BatchID  uuid.UUID `json:"batchId"`
	JobID    uuid.UUID `json:"jobId"`
	JobTitle string    `json:"jobTitle"`
	Results  []struct {
		types.ScreeningResult
		Band string `json:"band"`
	} `json:"results"`
	Errors []struct {
		Filename string `json:"filename"`
		Error    string `json:"error"`
	} `json:"errors"`
}

func TestUpload_MixedBatch(t *testing.T) {
	s, store := newTestServer(t)
	job := seedJob(t, store, "Data Engineer", "Python", "SQL")

	req := uploadRequest(t, job.ID.String(),
		uploadFile{
			name:        "jane.docx",
			contentType: types.MIMEDOCX,
			data: buildDOCX(t, "Jane Doe", "jane@example.com",
				"Acme University", "Python and SQL pipelines in production"),
		},
		uploadFile{
			name:        "notes.txt",
			contentType: "text/plain",
			data:        []byte("not a resume"),
		},
	)
	rec := doRequest(s, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp uploadResponse
	decodeBody(t, rec, &resp)
	assert.NotEqual(t, uuid.Nil, resp.BatchID)
	assert.Equal(t, job.ID, resp.JobID)
	assert.Equal(t, "Data Engineer", resp.JobTitle)

	require.Len(t, resp.Results, 1)
	result := resp.Results[0]
	assert.Equal(t, "jane.docx", result.Filename)
	assert.Equal(t, "Jane Doe", result.Name)
	assert.ElementsMatch(t, []string{"Python", "SQL"}, result.MatchedSkills)
	assert.Equal(t, types.BandForScore(result.Score), result.Band)

	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "notes.txt", resp.Errors[0].Filename)
	assert.Contains(t, resp.Errors[0].Error, "unsupported media type")

	// The result was persisted under the returned batch id.
	stored, total, err := store.ListResults(req.Context(), db.ResultFilters{BatchID: resp.BatchID})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, stored, 1)
	assert.Equal(t, "jane.docx", stored[0].Filename)
}

func TestUpload_CorruptFileIsPerFileError(t *testing.T) {
	s, store := newTestServer(t)
	job := seedJob(t, store, "Analyst", "Excel")

	req := uploadRequest(t, job.ID.String(),
		uploadFile{name: "broken.pdf", contentType: types.MIMEPDF, data: []byte("not a pdf")},
		uploadFile{name: "ok.docx", contentType: types.MIMEDOCX, data: buildDOCX(t, "Sam Lee", "Excel reporting")},
	)
	rec := doRequest(s, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp uploadResponse
	decodeBody(t, rec, &resp)
	assert.Len(t, resp.Results, 1)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "broken.pdf", resp.Errors[0].Filename)
}

func TestUpload_JobNotFound(t *testing.T) {
	s, _ := newTestServer(t)

	req := uploadRequest(t, uuid.NewString(),
		uploadFile{name: "a.docx", contentType: types.MIMEDOCX, data: buildDOCX(t, "A")})
	rec := doRequest(s, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpload_BadRequests(t *testing.T) {
	s, store := newTestServer(t)
	job := seedJob(t, store, "Analyst", "Excel")

	// Missing jobId.
	req := uploadRequest(t, "not-a-uuid",
		uploadFile{name: "a.docx", contentType: types.MIMEDOCX, data: buildDOCX(t, "A")})
	assert.Equal(t, http.StatusBadRequest, doRequest(s, req).Code)

	// No files.
	req = uploadRequest(t, job.ID.String())
	assert.Equal(t, http.StatusBadRequest, doRequest(s, req).Code)
}

func TestUpload_FileSizeCap(t *testing.T) {
	store := db.NewMemoryStore()
	s := newServer(Config{MaxUploadBytes: 64}, store, nil)
	t.Cleanup(func() { s.rateLimiter.Stop() })
	job := seedJob(t, store, "Analyst", "Excel")

	req := uploadRequest(t, job.ID.String(),
		uploadFile{name: "big.docx", contentType: types.MIMEDOCX, data: buildDOCX(t, "Big file content")})
	rec := doRequest(s, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp uploadResponse
	decodeBody(t, rec, &resp)
	assert.Empty(t, resp.Results)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0].Error, "byte limit")
}
