package application

import (
	"errors"
	"fmt"
	"net/http"
)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeIdempotencyMismatch = "IDEMPOTENCY_MISMATCH"
	ErrCodeRequestProcessing   = "REQUEST_PROCESSING"
	ErrCodeTimeout             = "TIMEOUT"
	ErrCodeInternal            = "INTERNAL_ERROR"
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeUnavailable         = "UNAVAILABLE"
)

func NewIdempotencyMismatchError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeIdempotencyMismatch,
		Message:    "Idempotency key reused with different request parameters",
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

func NewRequestProcessingError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeRequestProcessing,
		Message:    "Request is being processed. Please retry in a moment.",
		HTTPStatus: http.StatusConflict,
	}
}

func NewTimeoutError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    "Request timed out",
		HTTPStatus: http.StatusGatewayTimeout,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewNotFoundError(what string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeNotFound,
		Message:    what + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

func NewUnavailableError(what string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUnavailable,
		Message:    what + " is not enabled",
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
