package onlinepayments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"
)

// APIError is returned for every non-2xx reply from the platform.
type APIError struct {
	StatusCode    int
	ErrorID       string
	Errors        []APIErrorItem
	PaymentResult *CreatePaymentResponse
	RefundResult  *RefundResponse
	Body          []byte
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("online payments error [%s]: %s (status: %d)", e.Errors[0].Identifier(), e.Errors[0].Message, e.StatusCode)
	}
	return fmt.Sprintf("online payments returned status %d", e.StatusCode)
}

// Declined reports a processed but refused payment or refund.
func (e *APIError) Declined() bool {
	return e.PaymentResult != nil || e.RefundResult != nil
}

func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500 && !e.Declined()
}

// Payload decodes the raw error body, or returns an empty map.
func (e *APIError) Payload() map[string]any {
	payload := map[string]any{}
	if len(e.Body) == 0 {
		return payload
	}
	if err := json.Unmarshal(e.Body, &payload); err != nil {
		return map[string]any{}
	}
	return payload
}

// CommunicationError wraps failures that happened before a reply was read:
// dialing, TLS, timeouts, truncated or undecodable bodies.
type CommunicationError struct {
	Err error
}

func (e *CommunicationError) Error() string {
	return fmt.Sprintf("communication error: %v", e.Err)
}

func (e *CommunicationError) Unwrap() error {
	return e.Err
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

func IsCommunicationError(err error) bool {
	var commErr *CommunicationError
	return errors.As(err, &commErr)
}

// isRetryable: transport faults and 5xx are retried; declines, 4xx,
// cancellation and an open circuit are not.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}

	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.IsRetryable()
	}

	return IsCommunicationError(err)
}

// isTransportFault decides what counts against the circuit breaker.
func isTransportFault(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.IsRetryable()
	}
	return true
}
