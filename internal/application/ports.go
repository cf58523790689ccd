package application

import (
	"context"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
)

// PaymentGateway is the port for the brand adapter.
type PaymentGateway interface {
	Brand() domain.BrandConfig
	Test() bool
	Purchase(ctx context.Context, amount int64, card domain.Card, opts domain.Options) *domain.Result
	Authorize(ctx context.Context, amount int64, card domain.Card, opts domain.Options) *domain.Result
	Capture(ctx context.Context, amount int64, authorization string, opts domain.Options) *domain.Result
	Refund(ctx context.Context, amount int64, authorization string, opts domain.Options) *domain.Result
	Void(ctx context.Context, authorization string, opts domain.Options) *domain.Result
	Verify(ctx context.Context, card domain.Card, opts domain.Options) *domain.Result
}

// TransactionRepository is the port for the audit log.
type TransactionRepository interface {
	Record(ctx context.Context, txn *domain.Transaction) error
	FindByAuthorization(ctx context.Context, authorization string, limit, offset int) ([]*domain.Transaction, error)
}

// IdempotencyRecord is what an idempotency key currently points at.
// Result is nil while the first request is still in flight.
type IdempotencyRecord struct {
	RequestHash string         `json:"request_hash"`
	Result      *domain.Result `json:"result,omitempty"`
}

func (r *IdempotencyRecord) Completed() bool {
	return r.Result != nil
}

// IdempotencyStore locks a key for the first request and caches its result.
// Acquire returns a nil record when the caller now owns the key.
type IdempotencyStore interface {
	Acquire(ctx context.Context, key, requestHash string) (*IdempotencyRecord, error)
	Complete(ctx context.Context, key, requestHash string, result *domain.Result) error
	Release(ctx context.Context, key string) error
}
