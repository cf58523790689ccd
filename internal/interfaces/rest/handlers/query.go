package handlers

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/interfaces/rest"
)

func (h *Handlers) ListTransactions(
	ctx context.Context,
	request api.ListTransactionsRequestObject,
) (api.ListTransactionsResponseObject, error) {
	var limit, offset int
	if request.Params.Limit != nil {
		limit = *request.Params.Limit
	}
	if request.Params.Offset != nil {
		offset = *request.Params.Offset
	}

	txns, err := h.queryService.History(ctx, request.Authorization, limit, offset)
	if err != nil {
		return h.mapHistoryErrorToAPIResponse(err)
	}

	return api.ListTransactions200JSONResponse{
		Success: true,
		Data:    rest.ToAPITransactions(txns),
	}, nil
}

func (h *Handlers) mapHistoryErrorToAPIResponse(err error) (api.ListTransactionsResponseObject, error) {
	statusCode, errorResponse := rest.BuildErrorResponse(err)

	switch statusCode {
	case http.StatusBadRequest:
		return api.ListTransactions400JSONResponse(errorResponse), nil
	case http.StatusNotFound:
		return api.ListTransactions404JSONResponse(errorResponse), nil
	case http.StatusServiceUnavailable:
		return api.ListTransactions503JSONResponse(errorResponse), nil
	default:
		h.logServerError(err)
		return api.ListTransactions500JSONResponse(errorResponse), nil
	}
}
