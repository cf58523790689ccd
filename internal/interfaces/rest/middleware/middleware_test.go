package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/interfaces/rest/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, api.ErrorDetailCodeINTERNALERROR, body.Error.Code)
}

func TestTimeout_WritesTimeoutEnvelope(t *testing.T) {
	handler := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"TIMEOUT"`)
}

func TestRequestID_StoredInContext(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", rec.Header().Get(middleware.RequestIDHeader))
	assert.Empty(t, middleware.RequestIDFromContext(context.Background()))
}

func TestLogging_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/payments/purchase", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, "/v1/payments/purchase", entry["path"])
}

func TestOpenAPIValidator(t *testing.T) {
	doc, err := api.LoadSpec(context.Background())
	require.NoError(t, err)

	validator, err := middleware.OpenAPIValidator(doc, discardLogger())
	require.NoError(t, err)

	var reached bool
	var body []byte
	handler := validator(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("valid request keeps body", func(t *testing.T) {
		reached = false
		payload := `{"amount":100}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pay-1/capture", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.True(t, reached)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.JSONEq(t, payload, string(body))
	})

	t.Run("invalid request is rejected", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pay-1/capture", strings.NewReader(`{"amount":"ten"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.False(t, reached)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
	})

	t.Run("undocumented path passes through", func(t *testing.T) {
		reached = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.True(t, reached)
	})
}
