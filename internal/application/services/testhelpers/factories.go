package testhelpers

import (
	"context"
	"testing"
	"time"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/infrastructure/persistence/postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// NewTransaction returns an audit record for authorization with sensible defaults.
func NewTransaction(authorization string, op domain.Operation, success bool) *domain.Transaction {
	txn := &domain.Transaction{
		ID:            uuid.New().String(),
		Brand:         domain.BrandOnlinePayments,
		Operation:     op,
		Amount:        5000,
		Currency:      "AUD",
		Success:       success,
		Message:       "Status: AUTHORIZED",
		Authorization: authorization,
		Test:          true,
		Params:        map[string]any{"payment": map[string]any{"id": authorization}},
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
	if !success {
		txn.Message = "Status: REJECTED"
		txn.ErrorCode = "30511001"
	}
	return txn
}

// RecordTransactions stores txns one millisecond apart, oldest first.
func RecordTransactions(t *testing.T, ctx context.Context, repo *postgres.TransactionRepository, txns ...*domain.Transaction) {
	t.Helper()

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i, txn := range txns {
		txn.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		require.NoError(t, repo.Record(ctx, txn))
	}
}
