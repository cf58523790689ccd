package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/application"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/infrastructure/onlinepayments"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
)

var validate = validator.New()

// PaymentService runs gateway operations with idempotency, auditing and
// logging. The idempotency store and the transaction repository are optional.
type PaymentService struct {
	gateway     application.PaymentGateway
	txRepo      application.TransactionRepository
	idempotency application.IdempotencyStore
	logger      *slog.Logger
}

func NewPaymentService(
	gateway application.PaymentGateway,
	txRepo application.TransactionRepository,
	idempotency application.IdempotencyStore,
	logger *slog.Logger,
) *PaymentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentService{
		gateway:     gateway,
		txRepo:      txRepo,
		idempotency: idempotency,
		logger:      logger,
	}
}

func (s *PaymentService) Purchase(ctx context.Context, cmd ChargeCommand, idempotencyKey string) (*domain.Result, error) {
	return s.execute(ctx, domain.OperationPurchase, idempotencyKey, cmd, target{amount: cmd.Amount, card: &cmd.Card, opts: cmd.Options}, func(ctx context.Context) *domain.Result {
		return s.gateway.Purchase(ctx, cmd.Amount, cmd.Card, cmd.Options)
	})
}

func (s *PaymentService) Authorize(ctx context.Context, cmd ChargeCommand, idempotencyKey string) (*domain.Result, error) {
	return s.execute(ctx, domain.OperationAuthorize, idempotencyKey, cmd, target{amount: cmd.Amount, card: &cmd.Card, opts: cmd.Options}, func(ctx context.Context) *domain.Result {
		return s.gateway.Authorize(ctx, cmd.Amount, cmd.Card, cmd.Options)
	})
}

func (s *PaymentService) Capture(ctx context.Context, cmd CaptureCommand, idempotencyKey string) (*domain.Result, error) {
	return s.execute(ctx, domain.OperationCapture, idempotencyKey, cmd, target{amount: cmd.Amount, authorization: cmd.Authorization, opts: cmd.Options}, func(ctx context.Context) *domain.Result {
		return s.gateway.Capture(ctx, cmd.Amount, cmd.Authorization, cmd.Options)
	})
}

func (s *PaymentService) Refund(ctx context.Context, cmd RefundCommand, idempotencyKey string) (*domain.Result, error) {
	return s.execute(ctx, domain.OperationRefund, idempotencyKey, cmd, target{amount: cmd.Amount, authorization: cmd.Authorization, opts: cmd.Options}, func(ctx context.Context) *domain.Result {
		return s.gateway.Refund(ctx, cmd.Amount, cmd.Authorization, cmd.Options)
	})
}

func (s *PaymentService) Void(ctx context.Context, cmd VoidCommand, idempotencyKey string) (*domain.Result, error) {
	return s.execute(ctx, domain.OperationVoid, idempotencyKey, cmd, target{authorization: cmd.Authorization, opts: cmd.Options}, func(ctx context.Context) *domain.Result {
		return s.gateway.Void(ctx, cmd.Authorization, cmd.Options)
	})
}

func (s *PaymentService) Verify(ctx context.Context, cmd VerifyCommand, idempotencyKey string) (*domain.Result, error) {
	return s.execute(ctx, domain.OperationVerify, idempotencyKey, cmd, target{amount: domain.VerifyAmount, card: &cmd.Card, opts: cmd.Options}, func(ctx context.Context) *domain.Result {
		return s.gateway.Verify(ctx, cmd.Card, cmd.Options)
	})
}

// target is what an operation acts on, for auditing.
type target struct {
	amount        int64
	authorization string
	card          *domain.Card
	opts          domain.Options
}

func (s *PaymentService) Brand() domain.BrandConfig {
	return s.gateway.Brand()
}

func (s *PaymentService) Test() bool {
	return s.gateway.Test()
}

func (s *PaymentService) execute(
	ctx context.Context,
	op domain.Operation,
	idempotencyKey string,
	cmd any,
	tgt target,
	call func(ctx context.Context) *domain.Result,
) (*domain.Result, error) {
	if err := validate.Struct(cmd); err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	brand := s.gateway.Brand()
	if card := tgt.card; card != nil && card.Brand != "" && !brand.SupportsCardType(card.Brand) {
		return nil, application.NewInvalidInputError(fmt.Errorf("card type %q is not accepted by %s", card.Brand, brand.DisplayName))
	}

	money, err := domain.NewMoney(tgt.amount, tgt.opts.CurrencyOr(brand.DefaultCurrency))
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	logger := s.logger.With("operation", op, "brand", brand.Key)
	if idempotencyKey != "" {
		logger = logger.With("idempotency_key", idempotencyKey)
	}

	useIdempotency := s.idempotency != nil && idempotencyKey != ""
	requestHash := ComputeHash(op, cmd)

	if useIdempotency {
		cached, err := s.checkIdempotency(ctx, idempotencyKey, requestHash)
		if err != nil {
			logger.Warn("idempotency check rejected request", "error", err)
			return nil, err
		}
		if cached != nil {
			logger.Info("replaying cached result", "success", cached.Success)
			return cached, nil
		}
	}

	callCtx := ctx
	if idempotencyKey != "" {
		callCtx = onlinepayments.WithIdempotenceKey(ctx, idempotencyKey)
	}
	result := call(callCtx)

	s.record(ctx, logger, op, money, tgt.authorization, result)

	if useIdempotency {
		s.finishIdempotency(ctx, logger, idempotencyKey, requestHash, result)
	}

	if result.Success {
		logger.Info("payment operation succeeded",
			"authorization", result.Authorization,
			"amount", money.Amount,
			"currency", money.Currency,
		)
	} else {
		logger.Warn("payment operation failed",
			"authorization", result.Authorization,
			"error_code", result.ErrorCode,
			"category", application.CategorizeResult(result),
			"message", result.Message,
		)
	}

	return result, nil
}

// checkIdempotency returns the cached result for a completed request, or nil
// when this call now owns the key.
func (s *PaymentService) checkIdempotency(ctx context.Context, key, requestHash string) (*domain.Result, error) {
	record, err := s.idempotency.Acquire(ctx, key, requestHash)
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	if record == nil {
		return nil, nil
	}

	if record.RequestHash != requestHash {
		return nil, application.NewIdempotencyMismatchError()
	}
	if !record.Completed() {
		return nil, application.NewRequestProcessingError()
	}
	return record.Result, nil
}

// finishIdempotency caches answered results. Client faults release the key so
// the caller can retry. A fault after the request context ended keeps the key
// held until it expires.
func (s *PaymentService) finishIdempotency(ctx context.Context, logger *slog.Logger, key, requestHash string, result *domain.Result) {
	if result.ErrorCode == domain.ErrorCodeSDK && ctx.Err() != nil {
		logger.Warn("request ended before the platform answered, idempotency key held", "error", ctx.Err())
		return
	}

	ctx = context.WithoutCancel(ctx)

	if result.ErrorCode == domain.ErrorCodeSDK {
		if err := s.idempotency.Release(ctx, key); err != nil {
			logger.Error("failed to release idempotency key", "error", err)
		}
		return
	}

	if err := s.idempotency.Complete(ctx, key, requestHash, result); err != nil {
		logger.Error("failed to cache result", "error", err)
	}
}

// record writes the audit entry. Failures are logged, never returned.
func (s *PaymentService) record(ctx context.Context, logger *slog.Logger, op domain.Operation, money domain.Money, authorization string, result *domain.Result) {
	if s.txRepo == nil {
		return
	}

	txn, err := domain.NewTransaction(uuid.New().String(), s.gateway.Brand().Key, op, money, result)
	if err != nil {
		logger.Error("failed to build audit record", "error", err)
		return
	}
	if txn.Authorization == "" {
		txn.Authorization = authorization
	}

	if err := s.txRepo.Record(context.WithoutCancel(ctx), txn); err != nil {
		logger.Error("failed to record transaction", "transaction_id", txn.ID, "error", err)
	}
}
