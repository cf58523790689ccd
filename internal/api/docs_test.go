package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSpec(t *testing.T) {
	doc, err := api.LoadSpec(context.Background())
	require.NoError(t, err)

	capture := doc.Paths.Find("/v1/payments/{authorization}/capture")
	require.NotNil(t, capture)
	require.NotNil(t, capture.Post)
	assert.Equal(t, "capture", capture.Post.OperationID)
	assert.NotNil(t, doc.Components.Schemas["ResultEnvelope"])
}

func TestRegisterDocsRoutes(t *testing.T) {
	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)

	t.Run("serves the document", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "operationId: listTransactions")
	})

	t.Run("serves the ui", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "swagger-ui")
	})
}
