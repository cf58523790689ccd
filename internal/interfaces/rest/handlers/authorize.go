package handlers

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/application/services"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/interfaces/rest"
)

func (h *Handlers) Authorize(
	ctx context.Context,
	request api.AuthorizeRequestObject,
) (api.AuthorizeResponseObject, error) {
	req := request.Body

	cmd := services.ChargeCommand{
		Amount:  req.Amount,
		Card:    rest.ToDomainCard(req.Card),
		Options: rest.ToDomainOptions(req.Options),
	}

	result, err := h.paymentService.Authorize(ctx, cmd, idempotencyKey(request.Params.IdempotencyKey))
	if err != nil {
		return h.mapAuthorizeErrorToAPIResponse(err)
	}

	return mapAuthorizeResultToAPIResponse(result), nil
}

func mapAuthorizeResultToAPIResponse(result *domain.Result) api.AuthorizeResponseObject {
	envelope := rest.ToAPIResult(result)

	switch rest.ResultStatus(result) {
	case http.StatusBadGateway:
		return api.Authorize502JSONResponse(envelope)
	case http.StatusPaymentRequired:
		return api.Authorize402JSONResponse(envelope)
	default:
		return api.Authorize200JSONResponse(envelope)
	}
}

func (h *Handlers) mapAuthorizeErrorToAPIResponse(err error) (api.AuthorizeResponseObject, error) {
	statusCode, errorResponse := rest.BuildErrorResponse(err)

	switch statusCode {
	case http.StatusBadRequest:
		return api.Authorize400JSONResponse(errorResponse), nil
	case http.StatusConflict:
		return api.Authorize409JSONResponse(errorResponse), nil
	case http.StatusUnprocessableEntity:
		return api.Authorize422JSONResponse(errorResponse), nil
	default:
		h.logServerError(err)
		return api.Authorize500JSONResponse(errorResponse), nil
	}
}
