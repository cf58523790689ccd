package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/go-playground/validator"
)

// ErrorCategory describes the nature of a failure for logging and alerting.
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines the category of a service-level error.
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	if domain.IsConfigurationError(err) {
		return CategoryInfrastructure
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return CategoryClientError
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeIdempotencyMismatch, ErrCodeInvalidInput, ErrCodeNotFound:
			return CategoryClientError
		case ErrCodeInternal, ErrCodeUnavailable:
			return CategoryInfrastructure
		case ErrCodeRequestProcessing, ErrCodeTimeout:
			return CategoryTransient
		}
	}

	return CategoryInfrastructure
}

// CategorizeResult classifies a failed gateway result: client faults are
// transient, anything the platform answered is permanent.
func CategorizeResult(result *domain.Result) ErrorCategory {
	switch {
	case result == nil:
		return CategoryInfrastructure
	case result.Success:
		return ""
	case result.ErrorCode == domain.ErrorCodeSDK:
		return CategoryTransient
	default:
		return CategoryPermanent
	}
}

// ToHTTPStatus maps an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	return http.StatusInternalServerError
}

// ToErrorCode gives a stable error code for API responses.
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return ErrCodeInvalidInput
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}
