package handlers

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/application/services"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/interfaces/rest"
)

func (h *Handlers) Void(
	ctx context.Context,
	request api.VoidRequestObject,
) (api.VoidResponseObject, error) {
	cmd := services.VoidCommand{
		Authorization: request.Authorization,
	}
	if request.Body != nil {
		cmd.Options = rest.ToDomainOptions(request.Body.Options)
	}

	result, err := h.paymentService.Void(ctx, cmd, idempotencyKey(request.Params.IdempotencyKey))
	if err != nil {
		return h.mapVoidErrorToAPIResponse(err)
	}

	return mapVoidResultToAPIResponse(result), nil
}

func mapVoidResultToAPIResponse(result *domain.Result) api.VoidResponseObject {
	envelope := rest.ToAPIResult(result)

	switch rest.ResultStatus(result) {
	case http.StatusBadGateway:
		return api.Void502JSONResponse(envelope)
	case http.StatusPaymentRequired:
		return api.Void402JSONResponse(envelope)
	default:
		return api.Void200JSONResponse(envelope)
	}
}

func (h *Handlers) mapVoidErrorToAPIResponse(err error) (api.VoidResponseObject, error) {
	statusCode, errorResponse := rest.BuildErrorResponse(err)

	switch statusCode {
	case http.StatusBadRequest:
		return api.Void400JSONResponse(errorResponse), nil
	case http.StatusConflict:
		return api.Void409JSONResponse(errorResponse), nil
	case http.StatusUnprocessableEntity:
		return api.Void422JSONResponse(errorResponse), nil
	default:
		h.logServerError(err)
		return api.Void500JSONResponse(errorResponse), nil
	}
}
