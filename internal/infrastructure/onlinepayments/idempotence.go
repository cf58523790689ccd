package onlinepayments

import (
	"context"

	"github.com/google/uuid"
)

type idempotenceKey struct{}

// WithIdempotenceKey attaches the X-GCS-Idempotence-Key sent with every
// attempt of one logical call.
func WithIdempotenceKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotenceKey{}, key)
}

func IdempotenceKeyFrom(ctx context.Context) string {
	key, _ := ctx.Value(idempotenceKey{}).(string)
	return key
}

// ensureIdempotenceKey keeps a caller-supplied key or generates one.
func ensureIdempotenceKey(ctx context.Context) context.Context {
	if IdempotenceKeyFrom(ctx) != "" {
		return ctx
	}
	return WithIdempotenceKey(ctx, uuid.NewString())
}
