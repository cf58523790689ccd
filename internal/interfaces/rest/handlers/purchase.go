package handlers

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/application/services"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/interfaces/rest"
)

func (h *Handlers) Purchase(
	ctx context.Context,
	request api.PurchaseRequestObject,
) (api.PurchaseResponseObject, error) {
	req := request.Body

	cmd := services.ChargeCommand{
		Amount:  req.Amount,
		Card:    rest.ToDomainCard(req.Card),
		Options: rest.ToDomainOptions(req.Options),
	}

	result, err := h.paymentService.Purchase(ctx, cmd, idempotencyKey(request.Params.IdempotencyKey))
	if err != nil {
		return h.mapPurchaseErrorToAPIResponse(err)
	}

	return mapPurchaseResultToAPIResponse(result), nil
}

func mapPurchaseResultToAPIResponse(result *domain.Result) api.PurchaseResponseObject {
	envelope := rest.ToAPIResult(result)

	switch rest.ResultStatus(result) {
	case http.StatusBadGateway:
		return api.Purchase502JSONResponse(envelope)
	case http.StatusPaymentRequired:
		return api.Purchase402JSONResponse(envelope)
	default:
		return api.Purchase200JSONResponse(envelope)
	}
}

func (h *Handlers) mapPurchaseErrorToAPIResponse(err error) (api.PurchaseResponseObject, error) {
	statusCode, errorResponse := rest.BuildErrorResponse(err)

	switch statusCode {
	case http.StatusBadRequest:
		return api.Purchase400JSONResponse(errorResponse), nil
	case http.StatusConflict:
		return api.Purchase409JSONResponse(errorResponse), nil
	case http.StatusUnprocessableEntity:
		return api.Purchase422JSONResponse(errorResponse), nil
	default:
		h.logServerError(err)
		return api.Purchase500JSONResponse(errorResponse), nil
	}
}
