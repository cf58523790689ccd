package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/jackc/pgx/v5"
)

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrDuplicateTransaction = errors.New("transaction already recorded")
)

const transactionColumns = `
	id, brand, operation, amount_cents, currency, success, message,
	authorization_id, error_code, test, params, created_at
`

type TransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Record appends one audit entry.
func (r *TransactionRepository) Record(ctx context.Context, txn *domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	m := toDBModel(txn)
	_, err := r.db.Pool.Exec(ctx, query,
		m.ID,
		m.Brand,
		m.Operation,
		m.AmountCents,
		m.Currency,
		m.Success,
		m.Message,
		m.AuthorizationID,
		m.ErrorCode,
		m.Test,
		m.Params,
		m.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	return nil
}

// FindByID retrieves a single audit entry
func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	row := r.db.Pool.QueryRow(ctx, query, id)
	txn, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTransactionNotFound
	}
	return txn, err
}

// FindByAuthorization lists the entries of one authorization, newest first.
func (r *TransactionRepository) FindByAuthorization(ctx context.Context, authorization string, limit, offset int) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE authorization_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Pool.Query(ctx, query, authorization, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query transactions by authorization: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan transactions: %w", err)
	}

	return results, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var m TransactionModel
	err := row.Scan(
		&m.ID, &m.Brand, &m.Operation, &m.AmountCents, &m.Currency, &m.Success, &m.Message,
		&m.AuthorizationID, &m.ErrorCode, &m.Test, &m.Params, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return toDomainModel(m), nil
}
