package handlers

import (
	"context"
	"time"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/interfaces/rest"
)

func (h *Handlers) GetBrand(
	_ context.Context,
	_ api.GetBrandRequestObject,
) (api.GetBrandResponseObject, error) {
	return api.GetBrand200JSONResponse{
		Success: true,
		Data:    rest.ToAPIBrand(h.paymentService.Brand(), h.paymentService.Test()),
	}, nil
}

// Health runs every registered check and reports each backend.
func (h *Handlers) Health(
	ctx context.Context,
	_ api.HealthRequestObject,
) (api.HealthResponseObject, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	healthy := true
	report := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warn("health check failed", "backend", name, "error", err)
			report[name] = "down"
			healthy = false
			continue
		}
		report[name] = "up"
	}

	envelope := api.HealthEnvelope{Success: healthy, Data: report}
	if !healthy {
		return api.Health503JSONResponse(envelope), nil
	}
	return api.Health200JSONResponse(envelope), nil
}
