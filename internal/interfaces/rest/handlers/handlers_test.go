package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/application"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/application/services"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/infrastructure/onlinepayments"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const idempotencyKeyHeader = "Idempotency-Key"

type envelope struct {
	Success bool             `json:"success"`
	Data    json.RawMessage  `json:"data"`
	Error   *api.ErrorDetail `json:"error"`
}

type fixture struct {
	gateway     *mocks.MockPaymentGateway
	txRepo      *mocks.MockTransactionRepository
	idempotency *mocks.MockIdempotencyStore
	server      http.Handler
}

type options struct {
	withRepo        bool
	withIdempotency bool
	checks          map[string]handlers.HealthCheck
}

func setup(t *testing.T, opts options) *fixture {
	t.Helper()

	brand, err := domain.LookupBrand(domain.BrandCAWL)
	require.NoError(t, err)

	f := &fixture{gateway: mocks.NewMockPaymentGateway(t)}
	f.gateway.EXPECT().Brand().Return(brand).Maybe()
	f.gateway.EXPECT().Test().Return(true).Maybe()

	var txRepo application.TransactionRepository
	if opts.withRepo {
		f.txRepo = mocks.NewMockTransactionRepository(t)
		txRepo = f.txRepo
	}
	var idempotency application.IdempotencyStore
	if opts.withIdempotency {
		f.idempotency = mocks.NewMockIdempotencyStore(t)
		idempotency = f.idempotency
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	paymentService := services.NewPaymentService(f.gateway, txRepo, idempotency, logger)
	queryService := services.NewQueryService(txRepo)

	doc, err := api.LoadSpec(context.Background())
	require.NoError(t, err)

	h := handlers.NewHandlers(paymentService, queryService, opts.checks, logger)
	f.server, err = handlers.NewHTTPHandler(h, doc, 5*time.Second, logger)
	require.NoError(t, err)

	return f
}

func (f *fixture) do(t *testing.T, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func chargeBody(amount int64) map[string]any {
	return map[string]any{
		"amount": amount,
		"card": map[string]any{
			"number":             "4111111111111111",
			"holder_name":        "Jane Doe",
			"verification_value": "123",
			"month":              12,
			"year":               2030,
			"brand":              "visa",
		},
		"options": map[string]any{"order_id": "order-1"},
	}
}

func result(success bool, authorization, errorCode string) *domain.Result {
	return &domain.Result{
		Success:       success,
		Message:       "Status: CAPTURED",
		Params:        map[string]any{},
		Authorization: authorization,
		Test:          true,
		ErrorCode:     errorCode,
	}
}

func decodeResult(t *testing.T, env envelope) domain.Result {
	t.Helper()
	var r domain.Result
	require.NoError(t, json.Unmarshal(env.Data, &r))
	return r
}

func TestPurchase(t *testing.T) {
	tests := []struct {
		name       string
		result     *domain.Result
		wantStatus int
	}{
		{"approved", result(true, "pay-1", ""), http.StatusOK},
		{"declined", result(false, "pay-1", domain.ErrorCodeGateway), http.StatusPaymentRequired},
		{"client fault", result(false, "", domain.ErrorCodeSDK), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t, options{})
			f.gateway.EXPECT().
				Purchase(mock.Anything, int64(1000), mock.MatchedBy(func(c domain.Card) bool {
					return c.Number == "4111111111111111" && c.Month == 12
				}), domain.Options{OrderID: "order-1"}).
				Return(tt.result).
				Once()

			rec, env := f.do(t, http.MethodPost, "/v1/payments/purchase", chargeBody(1000), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.result.Success, env.Success)
			got := decodeResult(t, env)
			assert.Equal(t, tt.result.Authorization, got.Authorization)
			assert.Equal(t, tt.result.ErrorCode, got.ErrorCode)
		})
	}
}

func TestAuthorize_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"missing card", map[string]any{"amount": 1000}},
		{"zero amount", chargeBody(0)},
		{"bad month", func() map[string]any {
			b := chargeBody(1000)
			b["card"].(map[string]any)["month"] = 13
			return b
		}()},
		{"short currency", func() map[string]any {
			b := chargeBody(1000)
			b["options"] = map[string]any{"currency": "EU"}
			return b
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t, options{})

			rec, env := f.do(t, http.MethodPost, "/v1/payments/authorize", tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, application.ErrCodeInvalidInput, string(env.Error.Code))
		})
	}
}

func TestCapture_UsesPathAndIdempotencyKey(t *testing.T) {
	f := setup(t, options{withIdempotency: true})

	f.idempotency.EXPECT().Acquire(mock.Anything, "idem-1", mock.Anything).Return(nil, nil).Once()
	f.gateway.EXPECT().
		Capture(mock.Anything, int64(500), "pay-9", domain.Options{}).
		Return(result(true, "pay-9", "")).
		Once()
	f.idempotency.EXPECT().Complete(mock.Anything, "idem-1", mock.Anything, mock.Anything).Return(nil).Once()

	rec, env := f.do(t, http.MethodPost, "/v1/payments/pay-9/capture",
		map[string]any{"amount": 500},
		map[string]string{idempotencyKeyHeader: "idem-1"},
	)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestCapture_InFlightKey(t *testing.T) {
	f := setup(t, options{withIdempotency: true})

	f.idempotency.EXPECT().
		Acquire(mock.Anything, "idem-1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, hash string) (*application.IdempotencyRecord, error) {
			return &application.IdempotencyRecord{RequestHash: hash}, nil
		}).
		Once()

	rec, env := f.do(t, http.MethodPost, "/v1/payments/pay-9/capture",
		map[string]any{"amount": 500},
		map[string]string{idempotencyKeyHeader: "idem-1"},
	)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, application.ErrCodeRequestProcessing, string(env.Error.Code))
}

func TestRefund_WithCurrency(t *testing.T) {
	f := setup(t, options{})

	f.gateway.EXPECT().
		Refund(mock.Anything, int64(250), "pay-3", domain.Options{Currency: "usd"}).
		Return(result(true, "pay-3", "")).
		Once()

	rec, env := f.do(t, http.MethodPost, "/v1/payments/pay-3/refund",
		map[string]any{"amount": 250, "options": map[string]any{"currency": "usd"}}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestVoid_EmptyBody(t *testing.T) {
	f := setup(t, options{})

	f.gateway.EXPECT().
		Void(mock.Anything, "pay-4", domain.Options{}).
		Return(result(true, "pay-4", "")).
		Once()

	rec, env := f.do(t, http.MethodPost, "/v1/payments/pay-4/void", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestVerify(t *testing.T) {
	f := setup(t, options{})

	f.gateway.EXPECT().
		Verify(mock.Anything, mock.Anything, domain.Options{}).
		Return(result(false, "pay-5", domain.ErrorCodeGateway)).
		Once()

	body := chargeBody(0)
	delete(body, "amount")
	delete(body, "options")

	rec, env := f.do(t, http.MethodPost, "/v1/payments/verify", body, nil)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.False(t, env.Success)
}

func TestListTransactions(t *testing.T) {
	t.Run("returns records", func(t *testing.T) {
		f := setup(t, options{withRepo: true})

		f.txRepo.EXPECT().
			FindByAuthorization(mock.Anything, "pay-1", 10, 0).
			Return([]*domain.Transaction{{
				ID:            "txn-1",
				Brand:         domain.BrandCAWL,
				Operation:     domain.OperationCapture,
				Amount:        1000,
				Currency:      "EUR",
				Success:       true,
				Authorization: "pay-1",
				Params:        map[string]any{},
			}}, nil).
			Once()

		rec, env := f.do(t, http.MethodGet, "/v1/payments/pay-1/transactions?limit=10", nil, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var txns []api.Transaction
		require.NoError(t, json.Unmarshal(env.Data, &txns))
		require.Len(t, txns, 1)
		assert.Equal(t, "txn-1", txns[0].Id)
		assert.Equal(t, "capture", txns[0].Operation)
	})

	t.Run("unknown authorization", func(t *testing.T) {
		f := setup(t, options{withRepo: true})

		f.txRepo.EXPECT().
			FindByAuthorization(mock.Anything, "nope", 50, 0).
			Return(nil, nil).
			Once()

		rec, env := f.do(t, http.MethodGet, "/v1/payments/nope/transactions", nil, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, application.ErrCodeNotFound, string(env.Error.Code))
	})

	t.Run("history disabled", func(t *testing.T) {
		f := setup(t, options{})

		rec, env := f.do(t, http.MethodGet, "/v1/payments/pay-1/transactions", nil, nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, application.ErrCodeUnavailable, string(env.Error.Code))
	})

	t.Run("limit out of range", func(t *testing.T) {
		f := setup(t, options{withRepo: true})

		rec, _ := f.do(t, http.MethodGet, "/v1/payments/pay-1/transactions?limit=500", nil, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetBrand(t *testing.T) {
	f := setup(t, options{})

	rec, env := f.do(t, http.MethodGet, "/v1/brand", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Key             string `json:"key"`
		DefaultCurrency string `json:"default_currency"`
		Test            bool   `json:"test"`
		Endpoint        string `json:"endpoint"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, domain.BrandCAWL, body.Key)
	assert.Equal(t, "EUR", body.DefaultCurrency)
	assert.True(t, body.Test)
	assert.Equal(t, "https://payment.preprod.ca.cawl-solutions.fr", body.Endpoint)
}

func TestHealth(t *testing.T) {
	f := setup(t, options{checks: map[string]handlers.HealthCheck{
		"postgres": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return errors.New("connection refused") },
	}})

	rec, env := f.do(t, http.MethodGet, "/healthz", nil, nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.False(t, env.Success)
	var report map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, map[string]string{"postgres": "up", "redis": "down"}, report)
}

func TestRequestID_Propagated(t *testing.T) {
	f := setup(t, options{})

	rec, _ := f.do(t, http.MethodGet, "/v1/brand", nil, map[string]string{middleware.RequestIDHeader: "req-42"})
	assert.Equal(t, "req-42", rec.Header().Get(middleware.RequestIDHeader))

	rec, _ = f.do(t, http.MethodGet, "/v1/brand", nil, nil)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestDocsRoutes(t *testing.T) {
	f := setup(t, options{})

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "operationId: purchase")
}

func TestPurchase_ForwardsIdempotencyKey(t *testing.T) {
	f := setup(t, options{withIdempotency: true})

	f.idempotency.EXPECT().Acquire(mock.Anything, "idem-7", mock.Anything).Return(nil, nil).Once()
	f.gateway.EXPECT().
		Purchase(mock.Anything, int64(1000), mock.Anything, domain.Options{OrderID: "order-1"}).
		RunAndReturn(func(ctx context.Context, _ int64, _ domain.Card, _ domain.Options) *domain.Result {
			assert.Equal(t, "idem-7", onlinepayments.IdempotenceKeyFrom(ctx))
			return result(true, "pay-1", "")
		}).
		Once()
	f.idempotency.EXPECT().Complete(mock.Anything, "idem-7", mock.Anything, mock.Anything).Return(nil).Once()

	rec, env := f.do(t, http.MethodPost, "/v1/payments/purchase", chargeBody(1000),
		map[string]string{idempotencyKeyHeader: "idem-7"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}
