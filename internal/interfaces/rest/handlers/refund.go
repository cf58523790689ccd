package handlers

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/application/services"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/interfaces/rest"
)

func (h *Handlers) Refund(
	ctx context.Context,
	request api.RefundRequestObject,
) (api.RefundResponseObject, error) {
	req := request.Body

	cmd := services.RefundCommand{
		Authorization: request.Authorization,
		Amount:        req.Amount,
		Options:       rest.ToDomainOptions(req.Options),
	}

	result, err := h.paymentService.Refund(ctx, cmd, idempotencyKey(request.Params.IdempotencyKey))
	if err != nil {
		return h.mapRefundErrorToAPIResponse(err)
	}

	return mapRefundResultToAPIResponse(result), nil
}

func mapRefundResultToAPIResponse(result *domain.Result) api.RefundResponseObject {
	envelope := rest.ToAPIResult(result)

	switch rest.ResultStatus(result) {
	case http.StatusBadGateway:
		return api.Refund502JSONResponse(envelope)
	case http.StatusPaymentRequired:
		return api.Refund402JSONResponse(envelope)
	default:
		return api.Refund200JSONResponse(envelope)
	}
}

func (h *Handlers) mapRefundErrorToAPIResponse(err error) (api.RefundResponseObject, error) {
	statusCode, errorResponse := rest.BuildErrorResponse(err)

	switch statusCode {
	case http.StatusBadRequest:
		return api.Refund400JSONResponse(errorResponse), nil
	case http.StatusConflict:
		return api.Refund409JSONResponse(errorResponse), nil
	case http.StatusUnprocessableEntity:
		return api.Refund422JSONResponse(errorResponse), nil
	default:
		h.logServerError(err)
		return api.Refund500JSONResponse(errorResponse), nil
	}
}
