package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestClient wraps HTTP calls to gateway
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Reply is a decoded gateway response.
type Reply struct {
	StatusCode int
	Success    bool
	Result     domain.Result
	Error      *api.ErrorDetail
}

// Post sends body to path with a fresh idempotency key.
func (c *TestClient) Post(t *testing.T, path string, body any) Reply {
	return c.PostWithKey(t, path, body, "e2e-"+uuid.New().String())
}

func (c *TestClient) PostWithKey(t *testing.T, path string, body any, idempotencyKey string) Reply {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := c.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env struct {
		Success bool             `json:"success"`
		Data    *domain.Result   `json:"data"`
		Error   *api.ErrorDetail `json:"error"`
	}
	require.NoError(t, json.Unmarshal(bodyBytes, &env), string(bodyBytes))

	reply := Reply{StatusCode: resp.StatusCode, Success: env.Success, Error: env.Error}
	if env.Data != nil {
		reply.Result = *env.Data
	}
	return reply
}

func ChargeBody(amount int64, card domain.Card) map[string]any {
	return map[string]any{
		"amount": amount,
		"card":   card,
		"options": domain.Options{
			OrderID:    "order-" + uuid.New().String()[:8],
			CustomerID: "cust-1",
			Email:      "jane@example.com",
		},
	}
}
