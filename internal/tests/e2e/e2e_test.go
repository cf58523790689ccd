package e2e

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/application/services"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/config"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/gateway"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/infrastructure/onlinepayments"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/tests/e2e/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	merchantID = "merchant-e2e"
	apiKeyID   = "key-e2e"
	apiSecret  = "secret-e2e"
	maxRetries = 3
)

type E2ETestSuite struct {
	suite.Suite
	platform *Platform
	server   *httptest.Server
	client   *TestClient
}

func TestE2ESuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

func clientConfig() config.ClientConfig {
	return config.ClientConfig{
		Timeout: 2 * time.Second,
		Retry: config.RetryConfig{
			BaseDelay:  time.Millisecond,
			MaxRetries: maxRetries,
		},
		Breaker: config.BreakerConfig{
			MaxRequests:      1,
			Timeout:          time.Second,
			FailureThreshold: 100,
		},
	}
}

// startGateway serves the full stack against the platform using secret.
func startGateway(t *testing.T, platformURL, secret string) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	brand, err := domain.LookupBrand(domain.BrandOnlinePayments)
	require.NoError(t, err)

	creds := domain.Credentials{MerchantID: merchantID, APIKeyID: apiKeyID, APISecret: secret}
	client := onlinepayments.NewClient(platformURL, creds, clientConfig(), logger)
	gw, err := gateway.New(brand, creds, true, client, gateway.WithLogger(logger))
	require.NoError(t, err)

	doc, err := api.LoadSpec(context.Background())
	require.NoError(t, err)

	h := handlers.NewHandlers(
		services.NewPaymentService(gw, nil, nil, logger),
		services.NewQueryService(nil),
		nil,
		logger,
	)
	handler, err := handlers.NewHTTPHandler(h, doc, 10*time.Second, logger)
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func (suite *E2ETestSuite) SetupTest() {
	suite.platform = NewPlatform(apiKeyID, apiSecret)
	suite.server = startGateway(suite.T(), suite.platform.URL(), apiSecret)
	suite.client = NewTestClient(suite.server.URL)
}

func (suite *E2ETestSuite) TearDownTest() {
	suite.platform.Close()
}

func (suite *E2ETestSuite) TestPurchase_Approved() {
	t := suite.T()

	reply := suite.client.Post(t, "/v1/payments/purchase", ChargeBody(1000, testdata.ApprovedCard))

	assert.Equal(t, http.StatusOK, reply.StatusCode)
	assert.True(t, reply.Success)
	assert.True(t, reply.Result.Test)
	assert.Equal(t, "pay-1", reply.Result.Authorization)
	assert.Equal(t, "Status: CAPTURED", reply.Result.Message)
	assert.Empty(t, reply.Result.ErrorCode)
	assert.Contains(t, reply.Result.Params, "payment")
}

func (suite *E2ETestSuite) TestAuthorizeCaptureRefund() {
	t := suite.T()

	auth := suite.client.Post(t, "/v1/payments/authorize", ChargeBody(2500, testdata.ApprovedCard))
	require.True(t, auth.Success)
	assert.Equal(t, "Status: PENDING_APPROVAL", auth.Result.Message)
	authorization := auth.Result.Authorization

	capture := suite.client.Post(t, "/v1/payments/"+authorization+"/capture", map[string]any{"amount": 2500})
	require.True(t, capture.Success)
	assert.Equal(t, authorization, capture.Result.Authorization)
	assert.Equal(t, "Status: CAPTURE_REQUESTED", capture.Result.Message)

	refund := suite.client.Post(t, "/v1/payments/"+authorization+"/refund", map[string]any{"amount": 1000})
	require.True(t, refund.Success)
	assert.Equal(t, "Status: REFUND_REQUESTED", refund.Result.Message)

	requests := suite.platform.Requests()
	require.Len(t, requests, 3)
	assert.Equal(t, "/v2/"+merchantID+"/payments/"+authorization+"/refund", requests[2].Path)
	assert.Equal(t, int64(1000), requests[2].Amount)
}

func (suite *E2ETestSuite) TestAuthorizeVoid() {
	t := suite.T()

	auth := suite.client.Post(t, "/v1/payments/authorize", ChargeBody(500, testdata.ApprovedCard))
	require.True(t, auth.Success)

	void := suite.client.Post(t, "/v1/payments/"+auth.Result.Authorization+"/void", map[string]any{})
	assert.Equal(t, http.StatusOK, void.StatusCode)
	assert.True(t, void.Success)
	assert.Equal(t, "Status: CANCELLED", void.Result.Message)

	again := suite.client.Post(t, "/v1/payments/"+auth.Result.Authorization+"/void", map[string]any{})
	assert.Equal(t, http.StatusBadGateway, again.StatusCode)
	assert.Equal(t, domain.ErrorCodeSDK, again.Result.ErrorCode)
	assert.Empty(t, again.Result.Authorization)
}

func (suite *E2ETestSuite) TestVerify_AuthorizesAndVoids() {
	t := suite.T()

	reply := suite.client.PostWithKey(t, "/v1/payments/verify", map[string]any{"card": testdata.ApprovedCard}, "verify-1")

	assert.True(t, reply.Success)
	assert.Equal(t, "Status: CANCELLED", reply.Result.Message)

	requests := suite.platform.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, domain.VerifyAmount, requests[0].Amount)
	assert.Equal(t, "/v2/"+merchantID+"/payments/pay-1/cancel", requests[1].Path)
	assert.Equal(t, "verify-1-authorize", requests[0].IdempotenceKey)
	assert.Equal(t, "verify-1-void", requests[1].IdempotenceKey)
}

func (suite *E2ETestSuite) TestPurchase_Declined() {
	t := suite.T()

	reply := suite.client.Post(t, "/v1/payments/purchase", ChargeBody(1000, testdata.DeclinedCard))

	assert.Equal(t, http.StatusPaymentRequired, reply.StatusCode)
	assert.False(t, reply.Success)
	assert.Equal(t, "Status: REJECTED", reply.Result.Message)
	assert.Equal(t, testdata.DeclineErrorCode, reply.Result.ErrorCode)
	assert.Equal(t, "pay-1", reply.Result.Authorization)
	assert.Len(t, suite.platform.Requests(), 1)
}

func (suite *E2ETestSuite) TestPurchase_PlatformUnavailable() {
	t := suite.T()

	reply := suite.client.PostWithKey(t, "/v1/payments/purchase", ChargeBody(1000, testdata.UnavailableCard), "purchase-1")

	assert.Equal(t, http.StatusBadGateway, reply.StatusCode)
	assert.False(t, reply.Success)
	assert.Equal(t, domain.ErrorCodeSDK, reply.Result.ErrorCode)
	assert.Empty(t, reply.Result.Authorization)
	assert.Empty(t, reply.Result.Params)

	requests := suite.platform.Requests()
	require.Len(t, requests, maxRetries)
	for _, r := range requests {
		assert.Equal(t, "purchase-1", r.IdempotenceKey)
	}
}

func (suite *E2ETestSuite) TestWrongSecret_IsClientFault() {
	t := suite.T()

	server := startGateway(t, suite.platform.URL(), "not-the-secret")
	client := NewTestClient(server.URL)

	reply := client.Post(t, "/v1/payments/purchase", ChargeBody(1000, testdata.ApprovedCard))

	assert.Equal(t, http.StatusBadGateway, reply.StatusCode)
	assert.Equal(t, domain.ErrorCodeSDK, reply.Result.ErrorCode)
	assert.Empty(t, suite.platform.Requests())
}
