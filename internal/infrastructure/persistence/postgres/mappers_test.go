package postgres

import (
	"testing"
	"time"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMappers_RoundTrip(t *testing.T) {
	txn := &domain.Transaction{
		ID:            "0b6f2c1e-1111-4a4a-9f00-000000000001",
		Brand:         domain.BrandPayOne,
		Operation:     domain.OperationRefund,
		Amount:        250,
		Currency:      "EUR",
		Success:       false,
		Message:       "Status: REJECTED",
		Authorization: "pay-7",
		ErrorCode:     "30171001",
		Test:          true,
		Params:        map[string]any{"id": "pay-7-r"},
		CreatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	model := toDBModel(txn)
	assert.Equal(t, "pay-7", *model.AuthorizationID)
	assert.Equal(t, "refund", model.Operation)

	assert.Equal(t, txn, toDomainModel(*model))
}

func TestMappers_EmptyOptionalColumns(t *testing.T) {
	model := toDBModel(&domain.Transaction{ID: "id", Brand: domain.BrandCAWL, Success: true})

	assert.Nil(t, model.AuthorizationID)
	assert.Nil(t, model.ErrorCode)
	assert.Equal(t, map[string]any{}, model.Params)

	back := toDomainModel(TransactionModel{ID: "id"})
	assert.Empty(t, back.Authorization)
	assert.Empty(t, back.ErrorCode)
	assert.Equal(t, map[string]any{}, back.Params)
}
