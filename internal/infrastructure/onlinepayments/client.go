package onlinepayments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
)

const (
	contentTypeJSON = "application/json"
	sdkIdentifier   = "onlinepayments-gateway/1.0"
	sdkCreator      = "DanielPopoola"
)

// PaymentsClient is the payments API of one platform endpoint.
type PaymentsClient interface {
	CreatePayment(ctx context.Context, merchantID string, req CreatePaymentRequest) (*CreatePaymentResponse, error)
	CapturePayment(ctx context.Context, merchantID, paymentID string, req CapturePaymentRequest) (*CaptureResponse, error)
	RefundPayment(ctx context.Context, merchantID, paymentID string, req RefundRequest) (*RefundResponse, error)
	CancelPayment(ctx context.Context, merchantID, paymentID string, req CancelPaymentRequest) (*CancelPaymentResponse, error)
}

// HTTPClient talks to the platform over HTTPS. It holds no per-call state and
// is safe for concurrent use.
type HTTPClient struct {
	baseURL    string
	signer     *Signer
	metaInfo   string
	httpClient *http.Client
	now        func() time.Time
	logger     *slog.Logger
}

func NewHTTPClient(endpoint string, creds domain.Credentials, timeout time.Duration, logger *slog.Logger) *HTTPClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPClient{
		baseURL:  strings.TrimRight(endpoint, "/"),
		signer:   NewSigner(creds.APIKeyID, creds.APISecret),
		metaInfo: serverMetaInfo(creds.IntegratorOrDefault()),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		now:    time.Now,
		logger: logger,
	}
}

func (c *HTTPClient) CreatePayment(ctx context.Context, merchantID string, req CreatePaymentRequest) (*CreatePaymentResponse, error) {
	path := fmt.Sprintf("/v2/%s/payments", url.PathEscape(merchantID))
	return sendRequest[CreatePaymentRequest, CreatePaymentResponse](c, ctx, http.MethodPost, path, &req)
}

func (c *HTTPClient) CapturePayment(ctx context.Context, merchantID, paymentID string, req CapturePaymentRequest) (*CaptureResponse, error) {
	path := fmt.Sprintf("/v2/%s/payments/%s/capture", url.PathEscape(merchantID), url.PathEscape(paymentID))
	return sendRequest[CapturePaymentRequest, CaptureResponse](c, ctx, http.MethodPost, path, &req)
}

func (c *HTTPClient) RefundPayment(ctx context.Context, merchantID, paymentID string, req RefundRequest) (*RefundResponse, error) {
	path := fmt.Sprintf("/v2/%s/payments/%s/refund", url.PathEscape(merchantID), url.PathEscape(paymentID))
	return sendRequest[RefundRequest, RefundResponse](c, ctx, http.MethodPost, path, &req)
}

func (c *HTTPClient) CancelPayment(ctx context.Context, merchantID, paymentID string, req CancelPaymentRequest) (*CancelPaymentResponse, error) {
	path := fmt.Sprintf("/v2/%s/payments/%s/cancel", url.PathEscape(merchantID), url.PathEscape(paymentID))
	return sendRequest[CancelPaymentRequest, CancelPaymentResponse](c, ctx, http.MethodPost, path, &req)
}

func sendRequest[Req any, Resp any](c *HTTPClient, ctx context.Context, method, path string, reqBody *Req) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if reqBody != nil {
		httpReq.Header.Set("Content-Type", contentTypeJSON)
	}
	httpReq.Header.Set("Accept", contentTypeJSON)
	httpReq.Header.Set("Date", c.now().UTC().Format(http.TimeFormat))
	httpReq.Header.Set("X-GCS-ServerMetaInfo", c.metaInfo)
	if key := IdempotenceKeyFrom(ctx); key != "" {
		httpReq.Header.Set("X-GCS-Idempotence-Key", key)
	}
	httpReq.Header.Set("Authorization", c.signer.Authorization(httpReq))

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &CommunicationError{Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("online payments call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &CommunicationError{Err: fmt.Errorf("error reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	var out Resp
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &CommunicationError{Err: fmt.Errorf("error decoding json response: %w", err)}
	}

	return &out, nil
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Body: body}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return apiErr
	}

	apiErr.ErrorID = errResp.ErrorID
	apiErr.Errors = errResp.Errors
	apiErr.PaymentResult = errResp.PaymentResult
	apiErr.RefundResult = errResp.RefundResult
	return apiErr
}

func serverMetaInfo(integrator string) string {
	info := struct {
		PlatformIdentifier string `json:"platformIdentifier"`
		SDKIdentifier      string `json:"sdkIdentifier"`
		SDKCreator         string `json:"sdkCreator"`
		Integrator         string `json:"integrator"`
	}{
		PlatformIdentifier: runtime.GOOS + "; Go " + runtime.Version(),
		SDKIdentifier:      sdkIdentifier,
		SDKCreator:         sdkCreator,
		Integrator:         integrator,
	}

	data, _ := json.Marshal(info)
	return base64.StdEncoding.EncodeToString(data)
}
