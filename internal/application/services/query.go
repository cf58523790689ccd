package services

import (
	"context"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/application"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type QueryService struct {
	txRepo application.TransactionRepository
}

func NewQueryService(txRepo application.TransactionRepository) *QueryService {
	return &QueryService{txRepo: txRepo}
}

// History lists the audit records of one authorization, newest first.
func (s *QueryService) History(ctx context.Context, authorization string, limit, offset int) ([]*domain.Transaction, error) {
	if s.txRepo == nil {
		return nil, application.NewUnavailableError("transaction history")
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	txns, err := s.txRepo.FindByAuthorization(ctx, authorization, limit, offset)
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	if len(txns) == 0 && offset == 0 {
		return nil, application.NewNotFoundError("authorization " + authorization)
	}
	return txns, nil
}
