package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewboard/crewboard-back/pkg/leadimport"
	"github.com/crewboard/crewboard-back/pkg/leads"
	"github.com/crewboard/crewboard-back/pkg/models"
)

func newLeadAPI(t *testing.T) (*echo.Echo, *leads.MemoryStore) {
	t.Helper()
	store := leads.NewMemoryStore()
	session := leads.NewSession()
	require.NoError(t, session.Load(context.Background(), store))

	leadSvc := leads.NewService(store, session)
	importer := leadimport.NewService(store, session, 0, nil)
	h := NewLeadHandler(leadSvc, importer, nil, nil, "")

	e := echo.New()
	e.GET("/api/leads", h.List)
	e.POST("/api/leads", h.Create)
	e.POST("/api/leads/import", h.Import)
	e.GET("/api/leads/export.csv", h.ExportCSV)
	e.PATCH("/api/leads/:id/status", h.UpdateStatus)
	return e, store
}

func multipartCSV(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func TestImportEndpoint_Success(t *testing.T) {
	e, store := newLeadAPI(t)
	body, contentType := multipartCSV(t, "leads.csv", "title,phone\nAcme,555-0100\nBravo,555-0200\n")

	req := httptest.NewRequest(http.MethodPost, "/api/leads/import", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ImportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "✅ Uploaded 2 leads!", resp.Message)
	assert.Equal(t, 2, resp.Added)
	assert.Equal(t, 2, store.Count())
}

func TestImportEndpoint_WrongExtension(t *testing.T) {
	e, store := newLeadAPI(t)
	body, contentType := multipartCSV(t, "leads.xlsx", "title\nAcme\n")

	req := httptest.NewRequest(http.MethodPost, "/api/leads/import", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Upload failed. Check CSV format.", resp.Error)
	assert.Equal(t, 0, store.Count())
}

func TestImportEndpoint_MissingFile(t *testing.T) {
	e, _ := newLeadAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/leads/import", strings.NewReader(""))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListEndpoint(t *testing.T) {
	e, _ := newLeadAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/leads",
		strings.NewReader(`{"title":"Acme","city":"Austin"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/leads?page=1&limit=10", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LeadListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.Limit)
	assert.Equal(t, 1, resp.StatusTally["new"])
}

func TestListEndpoint_InvalidStatus(t *testing.T) {
	e, _ := newLeadAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/leads?status=bogus", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateEndpoint_Validation(t *testing.T) {
	e, _ := newLeadAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/leads",
		strings.NewReader(`{"phone":"555-0100"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusEndpoint_InvalidStatus(t *testing.T) {
	e, _ := newLeadAPI(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/leads/some-id/status",
		strings.NewReader(`{"status":"archived"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusEndpoint_NotFound(t *testing.T) {
	e, _ := newLeadAPI(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/leads/missing/status",
		strings.NewReader(`{"status":"priority"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportEndpoint_CSV(t *testing.T) {
	e, _ := newLeadAPI(t)

	// Import first so the export has content.
	body, contentType := multipartCSV(t, "leads.csv", "title,phone\nAcme,555-0100\n")
	req := httptest.NewRequest(http.MethodPost, "/api/leads/import", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/leads/export.csv", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment")
	assert.Contains(t, rec.Body.String(), `"Acme","555-0100"`)
}
