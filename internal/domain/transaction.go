package domain

import (
	"errors"
	"time"
)

// Transaction is the audit record of one gateway call.
type Transaction struct {
	ID            string
	Brand         string
	Operation     Operation
	Amount        int64
	Currency      string
	Success       bool
	Message       string
	Authorization string
	ErrorCode     string
	Test          bool
	Params        map[string]any
	CreatedAt     time.Time
}

func NewTransaction(
	id string,
	brand string,
	op Operation,
	amount Money,
	result *Result,
) (*Transaction, error) {
	if id == "" {
		return nil, errors.New("transaction ID is required")
	}
	if brand == "" {
		return nil, errors.New("brand is required")
	}
	if result == nil {
		return nil, errors.New("result is required")
	}

	params := result.Params
	if params == nil {
		params = map[string]any{}
	}

	return &Transaction{
		ID:            id,
		Brand:         brand,
		Operation:     op,
		Amount:        amount.Amount,
		Currency:      amount.Currency,
		Success:       result.Success,
		Message:       result.Message,
		Authorization: result.Authorization,
		ErrorCode:     result.ErrorCode,
		Test:          result.Test,
		Params:        params,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
