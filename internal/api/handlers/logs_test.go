package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dhima/looking-glass/internal/api/response"
	"github.com/dhima/looking-glass/internal/logging"
	"github.com/dhima/looking-glass/internal/logs"
	"github.com/dhima/looking-glass/internal/models"
	"github.com/dhima/looking-glass/internal/storage"
	"github.com/dhima/looking-glass/internal/testutil/fakes"
	"github.com/dhima/looking-glass/pkg/clock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLogRouter(store *fakes.FakeLogStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := logs.NewServiceWithClock(store, nil, logging.NewNoOpLogger(),
		clock.NewFixed(time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)))
	h := NewLogHandler(logging.NewNoOpLogger(), svc)

	r := gin.New()
	r.POST("/api/logs", h.CreateLog)
	r.GET("/api/logs", h.ListLogs)
	r.GET("/api/logs/date/:date", h.GetLogByDate)
	r.GET("/api/logs/:id", h.GetLog)
	r.PUT("/api/logs/:id", h.UpdateLog)
	r.DELETE("/api/logs/:id", h.DeleteLog)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestCreateLog_WhenValid_ThenReturns201WithID(t *testing.T) {
	// Arrange
	store := fakes.NewFakeLogStore()
	r := setupLogRouter(store)

	// Act
	w := do(r, http.MethodPost, "/api/logs", `{"title":"T","log_date":"2024-01-01","tags":["x"]}`)

	// Assert
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var body response.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	_, err := uuid.Parse(body.ID)
	require.NoError(t, err)
	assert.Equal(t, "Log "+body.ID+" created successfully", body.Message)
	assert.Equal(t, body.Message, w.Header().Get(response.MessageHeader))
	assert.Equal(t, 1, store.Calls("CreateLog"))
}

func TestCreateLog_WhenBodyIsNotJSONObject_ThenReturns400(t *testing.T) {
	for _, body := range []string{"", "{", "not json", `["a"]`, `"str"`, "null", "42"} {
		store := fakes.NewFakeLogStore()
		r := setupLogRouter(store)

		w := do(r, http.MethodPost, "/api/logs", body)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Request body must be JSON", decodeError(t, w).Error, body)
		assert.Zero(t, store.TotalCalls(), body)
	}
}

func TestCreateLog_WhenSchemaViolated_ThenReturns400WithDetails(t *testing.T) {
	store := fakes.NewFakeLogStore()
	r := setupLogRouter(store)

	w := do(r, http.MethodPost, "/api/logs", `{"tags":"not-an-array","log_date":"yesterday"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "Invalid request body", body.Error)
	assert.NotEmpty(t, body.Details)
	assert.NotEmpty(t, body.TraceID)
	assert.Zero(t, store.TotalCalls())
}

func TestCreateLog_WhenStoreFails_ThenReturns500WithMessage(t *testing.T) {
	store := fakes.NewFakeLogStore()
	store.Err = &storage.Error{Op: "create log", Err: errors.New("connection refused")}
	r := setupLogRouter(store)

	w := do(r, http.MethodPost, "/api/logs", `{}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "create log: connection refused", decodeError(t, w).Error)
}

func TestListLogs_WhenEmpty_ThenReturnsEmptyArray(t *testing.T) {
	r := setupLogRouter(fakes.NewFakeLogStore())

	w := do(r, http.MethodGet, "/api/logs", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListLogs_WhenOrderAsc_ThenReturnsAscending(t *testing.T) {
	store := fakes.NewFakeLogStore()
	store.Seed(models.LogRecord{LogDate: models.Date{Year: 2024, Month: time.January, Day: 2}})
	store.Seed(models.LogRecord{LogDate: models.Date{Year: 2024, Month: time.January, Day: 1}})
	r := setupLogRouter(store)

	w := do(r, http.MethodGet, "/api/logs?order=asc", "")

	require.Equal(t, http.StatusOK, w.Code)
	var records []models.LogRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "2024-01-01", records[0].LogDate.String())
	assert.Equal(t, "2024-01-02", records[1].LogDate.String())
}

func TestListLogs_WhenOrderInvalid_ThenReturns400(t *testing.T) {
	store := fakes.NewFakeLogStore()
	r := setupLogRouter(store)

	w := do(r, http.MethodGet, "/api/logs?order=sideways", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, store.TotalCalls())
}

func TestGetLog_WhenIDMalformed_ThenReturns400WithoutStoreCall(t *testing.T) {
	store := fakes.NewFakeLogStore()
	r := setupLogRouter(store)

	for _, req := range []struct{ method, body string }{
		{http.MethodGet, ""},
		{http.MethodPut, `{"title":"x"}`},
		{http.MethodDelete, ""},
	} {
		w := do(r, req.method, "/api/logs/not-a-uuid", req.body)

		assert.Equal(t, http.StatusBadRequest, w.Code, req.method)
		assert.Equal(t, "Invalid UUID format for ID", decodeError(t, w).Error, req.method)
	}
	assert.Zero(t, store.TotalCalls())
}

func TestGetLog_WhenUnknownID_ThenReturns404(t *testing.T) {
	r := setupLogRouter(fakes.NewFakeLogStore())
	id := uuid.NewString()

	w := do(r, http.MethodGet, "/api/logs/"+id, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No log found for ID "+id, decodeError(t, w).Error)
}

func TestGetLog_WhenOptionalFieldsUnset_ThenSerializesNulls(t *testing.T) {
	store := fakes.NewFakeLogStore()
	rec := store.Seed(models.LogRecord{LogDate: models.Date{Year: 2024, Month: time.May, Day: 5}, Tags: []string{}})
	r := setupLogRouter(store)

	w := do(r, http.MethodGet, "/api/logs/"+rec.ID, "")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Nil(t, body["title"])
	assert.Contains(t, body, "title")
	assert.Nil(t, body["mood"])
	assert.Equal(t, []any{}, body["tags"])
	assert.Equal(t, "2024-05-05", body["log_date"])
}

func TestGetLogByDate_WhenBadOrMissingDate_ThenReturns400Or404(t *testing.T) {
	store := fakes.NewFakeLogStore()
	r := setupLogRouter(store)

	bad := do(r, http.MethodGet, "/api/logs/date/2024-13-01", "")
	missing := do(r, http.MethodGet, "/api/logs/date/2024-01-01", "")

	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.Equal(t, "Invalid date format, expected YYYY-MM-DD", decodeError(t, bad).Error)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, "No log found for date 2024-01-01", decodeError(t, missing).Error)
}

func TestUpdateLog_WhenUnknownID_ThenReturns404(t *testing.T) {
	r := setupLogRouter(fakes.NewFakeLogStore())
	id := uuid.NewString()

	w := do(r, http.MethodPut, "/api/logs/"+id, `{"title":"x"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No log found for ID "+id, decodeError(t, w).Error)
}

func TestUpdateLog_WhenBodyNotJSON_ThenReturns400(t *testing.T) {
	store := fakes.NewFakeLogStore()
	rec := store.Seed(models.LogRecord{LogDate: models.Date{Year: 2024, Month: time.May, Day: 5}})
	r := setupLogRouter(store)

	w := do(r, http.MethodPut, "/api/logs/"+rec.ID, "title=x")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, store.Calls("UpdateLog"))
}

func TestUpdateLog_WhenIDMalformedAndBodyNotJSON_ThenReportsInvalidID(t *testing.T) {
	// Arrange
	store := fakes.NewFakeLogStore()
	r := setupLogRouter(store)

	// Act
	w := do(r, http.MethodPut, "/api/logs/not-a-uuid", "oops")

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid UUID format for ID", decodeError(t, w).Error)
	assert.Zero(t, store.TotalCalls())
}

func TestCreateLog_WhenLogDateNull_ThenDefaultsToToday(t *testing.T) {
	store := fakes.NewFakeLogStore()
	r := setupLogRouter(store)

	w := do(r, http.MethodPost, "/api/logs", `{"log_date":null,"title":null,"tags":null}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var body response.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	got := do(r, http.MethodGet, "/api/logs/"+body.ID, "")
	require.Equal(t, http.StatusOK, got.Code)
	var rec models.LogRecord
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &rec))
	assert.Equal(t, "2025-01-02", rec.LogDate.String())
}

func TestDeleteLog_WhenCalledTwice_ThenReturns204Then404(t *testing.T) {
	store := fakes.NewFakeLogStore()
	rec := store.Seed(models.LogRecord{LogDate: models.Date{Year: 2024, Month: time.May, Day: 5}})
	r := setupLogRouter(store)

	first := do(r, http.MethodDelete, "/api/logs/"+rec.ID, "")
	second := do(r, http.MethodDelete, "/api/logs/"+rec.ID, "")

	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Empty(t, first.Body.String())
	assert.Equal(t, "Log "+rec.ID+" deleted successfully", first.Header().Get(response.MessageHeader))
	assert.Equal(t, http.StatusNotFound, second.Code)
}

func TestLogLifecycle_WhenCreateReadUpdateDelete_ThenBehavesEndToEnd(t *testing.T) {
	r := setupLogRouter(fakes.NewFakeLogStore())

	// Create
	w := do(r, http.MethodPost, "/api/logs", `{"title":"T","entries":"E","log_date":"2024-01-01","tags":["x"],"mood":"calm"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created response.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.ID

	// Read
	w = do(r, http.MethodGet, "/api/logs/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var first models.LogRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Equal(t, id, first.ID)
	assert.Equal(t, "T", *first.Title)
	assert.Equal(t, "E", *first.Entries)
	assert.Equal(t, []string{"x"}, first.Tags)
	assert.Equal(t, "calm", *first.Mood)
	assert.True(t, first.CreatedAt.Equal(first.UpdatedAt))

	// Replace
	w = do(r, http.MethodPut, "/api/logs/"+id, `{"title":"T2","entries":"E2","log_date":"2024-01-02","tags":[],"mood":"flat"}`)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "Log "+id+" updated successfully", w.Header().Get(response.MessageHeader))

	w = do(r, http.MethodGet, "/api/logs/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var second models.LogRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, "T2", *second.Title)
	assert.Equal(t, "E2", *second.Entries)
	assert.Equal(t, "flat", *second.Mood)
	assert.Equal(t, "2024-01-02", second.LogDate.String())
	assert.Equal(t, []string{}, second.Tags)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	// Delete
	w = do(r, http.MethodDelete, "/api/logs/"+id, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, "/api/logs/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
