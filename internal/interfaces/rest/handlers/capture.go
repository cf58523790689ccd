package handlers

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/application/services"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/interfaces/rest"
)

func (h *Handlers) Capture(
	ctx context.Context,
	request api.CaptureRequestObject,
) (api.CaptureResponseObject, error) {
	req := request.Body

	cmd := services.CaptureCommand{
		Authorization: request.Authorization,
		Amount:        req.Amount,
		Options:       rest.ToDomainOptions(req.Options),
	}

	result, err := h.paymentService.Capture(ctx, cmd, idempotencyKey(request.Params.IdempotencyKey))
	if err != nil {
		return h.mapCaptureErrorToAPIResponse(err)
	}

	return mapCaptureResultToAPIResponse(result), nil
}

func mapCaptureResultToAPIResponse(result *domain.Result) api.CaptureResponseObject {
	envelope := rest.ToAPIResult(result)

	switch rest.ResultStatus(result) {
	case http.StatusBadGateway:
		return api.Capture502JSONResponse(envelope)
	case http.StatusPaymentRequired:
		return api.Capture402JSONResponse(envelope)
	default:
		return api.Capture200JSONResponse(envelope)
	}
}

func (h *Handlers) mapCaptureErrorToAPIResponse(err error) (api.CaptureResponseObject, error) {
	statusCode, errorResponse := rest.BuildErrorResponse(err)

	switch statusCode {
	case http.StatusBadRequest:
		return api.Capture400JSONResponse(errorResponse), nil
	case http.StatusConflict:
		return api.Capture409JSONResponse(errorResponse), nil
	case http.StatusUnprocessableEntity:
		return api.Capture422JSONResponse(errorResponse), nil
	default:
		h.logServerError(err)
		return api.Capture500JSONResponse(errorResponse), nil
	}
}
