package postgres

import (
	"time"
)

// TransactionModel is one row of the transactions table. Nullable columns
// are pointers.
type TransactionModel struct {
	ID              string
	Brand           string
	Operation       string
	AmountCents     int64
	Currency        string
	Success         bool
	Message         string
	AuthorizationID *string
	ErrorCode       *string
	Test            bool
	Params          map[string]any
	CreatedAt       time.Time
}
