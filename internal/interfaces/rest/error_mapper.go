package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/application"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
)

// BuildErrorResponse maps an application error to its status and body.
func BuildErrorResponse(err error) (int, api.ErrorResponse) {
	return application.ToHTTPStatus(err), api.ErrorResponse{
		Success: false,
		Error: api.ErrorDetail{
			Code:    api.ErrorDetailCode(application.ToErrorCode(err)),
			Message: err.Error(),
		},
	}
}

// ResultStatus maps a gateway result to an HTTP status: declines are 402,
// faults reaching the platform are 502.
func ResultStatus(result *domain.Result) int {
	switch {
	case result.Success:
		return http.StatusOK
	case result.ErrorCode == domain.ErrorCodeSDK:
		return http.StatusBadGateway
	default:
		return http.StatusPaymentRequired
	}
}

// WriteError answers outside the generated handlers, from middleware.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode, body := BuildErrorResponse(err)

	if statusCode >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed",
			"error", err,
			"code", body.Error.Code,
			"category", application.CategorizeError(err),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
