package onlinepayments

import (
	"log/slog"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/config"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
)

// NewClient builds the production stack for one endpoint: a circuit breaker
// around retries around the signed HTTP client.
func NewClient(endpoint string, creds domain.Credentials, cfg config.ClientConfig, logger *slog.Logger) PaymentsClient {
	if logger == nil {
		logger = slog.Default()
	}
	httpClient := NewHTTPClient(endpoint, creds, cfg.Timeout, logger)
	retrying := NewRetryClient(httpClient, cfg.Retry)
	return NewBreakerClient(endpoint, retrying, cfg.Breaker, logger)
}
