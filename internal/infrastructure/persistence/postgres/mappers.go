package postgres

import (
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
)

// toDomainModel: maps db model to domain entity
func toDomainModel(m TransactionModel) *domain.Transaction {
	params := m.Params
	if params == nil {
		params = map[string]any{}
	}
	return &domain.Transaction{
		ID:            m.ID,
		Brand:         m.Brand,
		Operation:     domain.Operation(m.Operation),
		Amount:        m.AmountCents,
		Currency:      m.Currency,
		Success:       m.Success,
		Message:       m.Message,
		Authorization: deref(m.AuthorizationID),
		ErrorCode:     deref(m.ErrorCode),
		Test:          m.Test,
		Params:        params,
		CreatedAt:     m.CreatedAt,
	}
}

// toDBModel: maps domain entity to db model
func toDBModel(t *domain.Transaction) *TransactionModel {
	params := t.Params
	if params == nil {
		params = map[string]any{}
	}
	return &TransactionModel{
		ID:              t.ID,
		Brand:           t.Brand,
		Operation:       string(t.Operation),
		AmountCents:     t.Amount,
		Currency:        t.Currency,
		Success:         t.Success,
		Message:         t.Message,
		AuthorizationID: nullable(t.Authorization),
		ErrorCode:       nullable(t.ErrorCode),
		Test:            t.Test,
		Params:          params,
		CreatedAt:       t.CreatedAt,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
