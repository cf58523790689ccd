package onlinepayments

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/config"
	"github.com/sony/gobreaker"
)

// BreakerClient stops calling an endpoint that keeps failing at the
// transport level. Declines and 4xx replies never trip it.
type BreakerClient struct {
	inner PaymentsClient
	cb    *gobreaker.CircuitBreaker
}

func NewBreakerClient(name string, inner PaymentsClient, cfg config.BreakerConfig, logger *slog.Logger) *BreakerClient {
	if logger == nil {
		logger = slog.Default()
	}
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 1
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
		IsSuccessful: func(err error) bool {
			return !isTransportFault(err)
		},
	}

	return &BreakerClient{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *BreakerClient) State() gobreaker.State {
	return b.cb.State()
}

// Check fails while the breaker is open.
func (b *BreakerClient) Check(context.Context) error {
	if b.State() == gobreaker.StateOpen {
		return fmt.Errorf("%s: %w", b.cb.Name(), gobreaker.ErrOpenState)
	}
	return nil
}

func (b *BreakerClient) CreatePayment(ctx context.Context, merchantID string, req CreatePaymentRequest) (*CreatePaymentResponse, error) {
	return execute(b, func() (*CreatePaymentResponse, error) {
		return b.inner.CreatePayment(ctx, merchantID, req)
	})
}

func (b *BreakerClient) CapturePayment(ctx context.Context, merchantID, paymentID string, req CapturePaymentRequest) (*CaptureResponse, error) {
	return execute(b, func() (*CaptureResponse, error) {
		return b.inner.CapturePayment(ctx, merchantID, paymentID, req)
	})
}

func (b *BreakerClient) RefundPayment(ctx context.Context, merchantID, paymentID string, req RefundRequest) (*RefundResponse, error) {
	return execute(b, func() (*RefundResponse, error) {
		return b.inner.RefundPayment(ctx, merchantID, paymentID, req)
	})
}

func (b *BreakerClient) CancelPayment(ctx context.Context, merchantID, paymentID string, req CancelPaymentRequest) (*CancelPaymentResponse, error) {
	return execute(b, func() (*CancelPaymentResponse, error) {
		return b.inner.CancelPayment(ctx, merchantID, paymentID, req)
	})
}

func execute[T any](b *BreakerClient, operation func() (*T, error)) (*T, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return operation()
	})
	if err != nil {
		return nil, err
	}
	return out.(*T), nil
}
