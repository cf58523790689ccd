package handlers

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/application/services"
)

// HealthCheck reports whether one backend is reachable.
type HealthCheck func(ctx context.Context) error

// Handlers implements the OpenAPI StrictServerInterface
type Handlers struct {
	paymentService *services.PaymentService
	queryService   *services.QueryService
	checks         map[string]HealthCheck
	logger         *slog.Logger
}

func NewHandlers(
	paymentService *services.PaymentService,
	queryService *services.QueryService,
	checks map[string]HealthCheck,
	logger *slog.Logger,
) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		paymentService: paymentService,
		queryService:   queryService,
		checks:         checks,
		logger:         logger,
	}
}

// Ensure Handlers implements StrictServerInterface
var _ api.StrictServerInterface = (*Handlers)(nil)

func idempotencyKey(key *api.IdempotencyKey) string {
	if key == nil {
		return ""
	}
	return *key
}
