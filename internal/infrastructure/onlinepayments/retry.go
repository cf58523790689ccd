package onlinepayments

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/config"
)

// RetryClient retries transport faults and 5xx replies. Every attempt of a
// call carries the same idempotence key.
type RetryClient struct {
	inner      PaymentsClient
	baseDelay  time.Duration
	maxRetries int
}

func NewRetryClient(inner PaymentsClient, cfg config.RetryConfig) *RetryClient {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RetryClient{
		inner:      inner,
		baseDelay:  cfg.BaseDelay,
		maxRetries: maxRetries,
	}
}

func (r *RetryClient) CreatePayment(ctx context.Context, merchantID string, req CreatePaymentRequest) (*CreatePaymentResponse, error) {
	return retry(r, ctx, func(ctx context.Context) (*CreatePaymentResponse, error) {
		return r.inner.CreatePayment(ctx, merchantID, req)
	})
}

func (r *RetryClient) CapturePayment(ctx context.Context, merchantID, paymentID string, req CapturePaymentRequest) (*CaptureResponse, error) {
	return retry(r, ctx, func(ctx context.Context) (*CaptureResponse, error) {
		return r.inner.CapturePayment(ctx, merchantID, paymentID, req)
	})
}

func (r *RetryClient) RefundPayment(ctx context.Context, merchantID, paymentID string, req RefundRequest) (*RefundResponse, error) {
	return retry(r, ctx, func(ctx context.Context) (*RefundResponse, error) {
		return r.inner.RefundPayment(ctx, merchantID, paymentID, req)
	})
}

func (r *RetryClient) CancelPayment(ctx context.Context, merchantID, paymentID string, req CancelPaymentRequest) (*CancelPaymentResponse, error) {
	return retry(r, ctx, func(ctx context.Context) (*CancelPaymentResponse, error) {
		return r.inner.CancelPayment(ctx, merchantID, paymentID, req)
	})
}

func retry[T any](r *RetryClient, ctx context.Context, operation func(ctx context.Context) (*T, error)) (*T, error) {
	ctx = ensureIdempotenceKey(ctx)

	var lastErr error
	for attempt := 0; attempt < r.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < r.maxRetries-1 {
			if err := sleep(ctx, r.backoff(attempt)); err != nil {
				return nil, err
			}
		}
	}

	if r.maxRetries == 1 {
		return nil, lastErr
	}
	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

// backoff doubles the base delay per attempt and adds up to half of it as jitter.
func (r *RetryClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)
	if base <= 0 {
		return 0
	}
	jitter := time.Duration(rand.Int64N(int64(base)/2 + 1))
	return base + jitter
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
