package handlers

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/application/services"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/interfaces/rest"
)

func (h *Handlers) Verify(
	ctx context.Context,
	request api.VerifyRequestObject,
) (api.VerifyResponseObject, error) {
	req := request.Body

	cmd := services.VerifyCommand{
		Card:    rest.ToDomainCard(req.Card),
		Options: rest.ToDomainOptions(req.Options),
	}

	result, err := h.paymentService.Verify(ctx, cmd, idempotencyKey(request.Params.IdempotencyKey))
	if err != nil {
		return h.mapVerifyErrorToAPIResponse(err)
	}

	return mapVerifyResultToAPIResponse(result), nil
}

func mapVerifyResultToAPIResponse(result *domain.Result) api.VerifyResponseObject {
	envelope := rest.ToAPIResult(result)

	switch rest.ResultStatus(result) {
	case http.StatusBadGateway:
		return api.Verify502JSONResponse(envelope)
	case http.StatusPaymentRequired:
		return api.Verify402JSONResponse(envelope)
	default:
		return api.Verify200JSONResponse(envelope)
	}
}

func (h *Handlers) mapVerifyErrorToAPIResponse(err error) (api.VerifyResponseObject, error) {
	statusCode, errorResponse := rest.BuildErrorResponse(err)

	switch statusCode {
	case http.StatusBadRequest:
		return api.Verify400JSONResponse(errorResponse), nil
	case http.StatusConflict:
		return api.Verify409JSONResponse(errorResponse), nil
	case http.StatusUnprocessableEntity:
		return api.Verify422JSONResponse(errorResponse), nil
	default:
		h.logServerError(err)
		return api.Verify500JSONResponse(errorResponse), nil
	}
}
