package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/application"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/application/services"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/infrastructure/onlinepayments"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	brand       domain.BrandConfig
	gateway     *mocks.MockPaymentGateway
	txRepo      *mocks.MockTransactionRepository
	idempotency *mocks.MockIdempotencyStore
	service     *services.PaymentService
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

// SetupTest runs before each test
func (suite *PaymentServiceTestSuite) SetupTest() {
	brand, err := domain.LookupBrand(domain.BrandCAWL)
	suite.Require().NoError(err)
	suite.brand = brand

	suite.gateway = mocks.NewMockPaymentGateway(suite.T())
	suite.txRepo = mocks.NewMockTransactionRepository(suite.T())
	suite.idempotency = mocks.NewMockIdempotencyStore(suite.T())

	suite.gateway.EXPECT().Brand().Return(brand).Maybe()
	suite.gateway.EXPECT().Test().Return(true).Maybe()

	suite.service = services.NewPaymentService(suite.gateway, suite.txRepo, suite.idempotency, nil)
}

func defaultCharge() services.ChargeCommand {
	return services.ChargeCommand{
		Amount: 1000,
		Card: domain.Card{
			Number:            "4111111111111111",
			HolderName:        "Jane Doe",
			VerificationValue: "123",
			Month:             12,
			Year:              2030,
			Brand:             "visa",
		},
		Options: domain.Options{OrderID: "order-1"},
	}
}

func approved(authorization string) *domain.Result {
	return &domain.Result{
		Success:       true,
		Message:       "Status: CAPTURED",
		Params:        map[string]any{},
		Authorization: authorization,
		Test:          true,
	}
}

// ============================================================================
// HAPPY PATH TESTS
// ============================================================================

func (suite *PaymentServiceTestSuite) Test_Purchase_Success_RecordsAndCaches() {
	ctx := context.Background()
	cmd := defaultCharge()
	key := "idem-" + uuid.New().String()
	result := approved("pay-1")

	suite.idempotency.EXPECT().
		Acquire(mock.Anything, key, services.ComputeHash(domain.OperationPurchase, cmd)).
		Return(nil, nil).
		Once()

	suite.gateway.EXPECT().
		Purchase(mock.Anything, cmd.Amount, cmd.Card, cmd.Options).
		Return(result).
		Once()

	suite.txRepo.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(txn *domain.Transaction) bool {
			return txn.Operation == domain.OperationPurchase &&
				txn.Brand == domain.BrandCAWL &&
				txn.Amount == 1000 &&
				txn.Currency == "EUR" &&
				txn.Authorization == "pay-1" &&
				txn.Success
		})).
		Return(nil).
		Once()

	suite.idempotency.EXPECT().
		Complete(mock.Anything, key, mock.Anything, result).
		Return(nil).
		Once()

	got, err := suite.service.Purchase(ctx, cmd, key)

	suite.Require().NoError(err)
	suite.Equal(result, got)
}

func (suite *PaymentServiceTestSuite) Test_Capture_WithoutIdempotencyKey() {
	cmd := services.CaptureCommand{Authorization: "pay-1", Amount: 500}
	result := approved("pay-1")

	suite.gateway.EXPECT().
		Capture(mock.Anything, int64(500), "pay-1", domain.Options{}).
		Return(result).
		Once()
	suite.txRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Once()

	got, err := suite.service.Capture(context.Background(), cmd, "")

	suite.Require().NoError(err)
	suite.True(got.Success)
}

func (suite *PaymentServiceTestSuite) Test_Verify_RecordsVerifyAmount() {
	cmd := services.VerifyCommand{Card: defaultCharge().Card}

	suite.gateway.EXPECT().
		Verify(mock.Anything, cmd.Card, cmd.Options).
		Return(approved("pay-2")).
		Once()
	suite.txRepo.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(txn *domain.Transaction) bool {
			return txn.Operation == domain.OperationVerify && txn.Amount == domain.VerifyAmount
		})).
		Return(nil).
		Once()

	got, err := suite.service.Verify(context.Background(), cmd, "")

	suite.Require().NoError(err)
	suite.Equal("pay-2", got.Authorization)
}

// ============================================================================
// EDGE CASE TESTS
// ============================================================================

func (suite *PaymentServiceTestSuite) Test_Purchase_ReplaysCompletedResult() {
	cmd := defaultCharge()
	key := "idem-" + uuid.New().String()
	hash := services.ComputeHash(domain.OperationPurchase, cmd)
	cached := approved("pay-1")

	suite.idempotency.EXPECT().
		Acquire(mock.Anything, key, hash).
		Return(&application.IdempotencyRecord{RequestHash: hash, Result: cached}, nil).
		Once()

	got, err := suite.service.Purchase(context.Background(), cmd, key)

	suite.Require().NoError(err)
	suite.Equal(cached, got)
	suite.gateway.AssertNotCalled(suite.T(), "Purchase", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) Test_Purchase_KeyReusedWithDifferentRequest() {
	cmd := defaultCharge()
	key := "idem-" + uuid.New().String()

	suite.idempotency.EXPECT().
		Acquire(mock.Anything, key, mock.Anything).
		Return(&application.IdempotencyRecord{RequestHash: "other", Result: approved("pay-1")}, nil).
		Once()

	got, err := suite.service.Purchase(context.Background(), cmd, key)

	suite.Nil(got)
	svcErr, ok := application.IsServiceError(err)
	suite.Require().True(ok)
	suite.Equal(application.ErrCodeIdempotencyMismatch, svcErr.Code)
}

func (suite *PaymentServiceTestSuite) Test_Purchase_InFlight() {
	cmd := defaultCharge()
	key := "idem-" + uuid.New().String()
	hash := services.ComputeHash(domain.OperationPurchase, cmd)

	suite.idempotency.EXPECT().
		Acquire(mock.Anything, key, hash).
		Return(&application.IdempotencyRecord{RequestHash: hash}, nil).
		Once()

	_, err := suite.service.Purchase(context.Background(), cmd, key)

	svcErr, ok := application.IsServiceError(err)
	suite.Require().True(ok)
	suite.Equal(application.ErrCodeRequestProcessing, svcErr.Code)
}

func (suite *PaymentServiceTestSuite) Test_Purchase_SDKFaultReleasesKey() {
	cmd := defaultCharge()
	key := "idem-" + uuid.New().String()
	fault := &domain.Result{
		Success:   false,
		Message:   "communication error: connection refused",
		Params:    map[string]any{},
		Test:      true,
		ErrorCode: domain.ErrorCodeSDK,
	}

	suite.idempotency.EXPECT().Acquire(mock.Anything, key, mock.Anything).Return(nil, nil).Once()
	suite.gateway.EXPECT().Purchase(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(fault).Once()
	suite.txRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Once()
	suite.idempotency.EXPECT().Release(mock.Anything, key).Return(nil).Once()

	got, err := suite.service.Purchase(context.Background(), cmd, key)

	suite.Require().NoError(err)
	suite.Equal(domain.ErrorCodeSDK, got.ErrorCode)
}

func (suite *PaymentServiceTestSuite) Test_Purchase_ForwardsIdempotencyKeyToPlatform() {
	cmd := defaultCharge()
	key := "idem-" + uuid.New().String()

	suite.idempotency.EXPECT().Acquire(mock.Anything, key, mock.Anything).Return(nil, nil).Once()
	suite.gateway.EXPECT().
		Purchase(mock.Anything, cmd.Amount, cmd.Card, cmd.Options).
		RunAndReturn(func(ctx context.Context, _ int64, _ domain.Card, _ domain.Options) *domain.Result {
			suite.Equal(key, onlinepayments.IdempotenceKeyFrom(ctx))
			return approved("pay-1")
		}).
		Once()
	suite.txRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Once()
	suite.idempotency.EXPECT().Complete(mock.Anything, key, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := suite.service.Purchase(context.Background(), cmd, key)

	suite.Require().NoError(err)
}

func (suite *PaymentServiceTestSuite) Test_Capture_NoKeyLeavesContextBare() {
	suite.gateway.EXPECT().
		Capture(mock.Anything, int64(500), "pay-1", domain.Options{}).
		RunAndReturn(func(ctx context.Context, _ int64, _ string, _ domain.Options) *domain.Result {
			suite.Empty(onlinepayments.IdempotenceKeyFrom(ctx))
			return approved("pay-1")
		}).
		Once()
	suite.txRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := suite.service.Capture(context.Background(), services.CaptureCommand{Authorization: "pay-1", Amount: 500}, "")

	suite.Require().NoError(err)
}

func (suite *PaymentServiceTestSuite) Test_Purchase_FaultAfterDeadlineKeepsKey() {
	cmd := defaultCharge()
	key := "idem-" + uuid.New().String()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	suite.idempotency.EXPECT().Acquire(mock.Anything, key, mock.Anything).Return(nil, nil).Once()
	suite.gateway.EXPECT().
		Purchase(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, int64, domain.Card, domain.Options) *domain.Result {
			cancel()
			return &domain.Result{
				Message:   "context canceled",
				Params:    map[string]any{},
				ErrorCode: domain.ErrorCodeSDK,
			}
		}).
		Once()
	suite.txRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(nil).Once()

	got, err := suite.service.Purchase(ctx, cmd, key)

	suite.Require().NoError(err)
	suite.Equal(domain.ErrorCodeSDK, got.ErrorCode)
	suite.idempotency.AssertNotCalled(suite.T(), "Release", mock.Anything, mock.Anything)
	suite.idempotency.AssertNotCalled(suite.T(), "Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) Test_Authorize_UnsupportedCardType() {
	cmd := defaultCharge()
	cmd.Card.Brand = "diners"

	_, err := suite.service.Authorize(context.Background(), cmd, "")

	svcErr, ok := application.IsServiceError(err)
	suite.Require().True(ok)
	suite.Equal(application.ErrCodeInvalidInput, svcErr.Code)
	suite.gateway.AssertNotCalled(suite.T(), "Authorize", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) Test_Void_FaultIsAuditedUnderAuthorization() {
	fault := &domain.Result{
		Message:   "boom",
		Params:    map[string]any{},
		ErrorCode: domain.ErrorCodeSDK,
	}

	suite.gateway.EXPECT().Void(mock.Anything, "pay-9", domain.Options{}).Return(fault).Once()
	suite.txRepo.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(txn *domain.Transaction) bool {
			return txn.Authorization == "pay-9" && txn.ErrorCode == domain.ErrorCodeSDK
		})).
		Return(nil).
		Once()

	got, err := suite.service.Void(context.Background(), services.VoidCommand{Authorization: "pay-9"}, "")

	suite.Require().NoError(err)
	suite.False(got.Success)
}

func (suite *PaymentServiceTestSuite) Test_Refund_AuditFailureIsNotSurfaced() {
	cmd := services.RefundCommand{Authorization: "pay-1", Amount: 100, Options: domain.Options{Currency: "usd"}}

	suite.gateway.EXPECT().Refund(mock.Anything, int64(100), "pay-1", cmd.Options).Return(approved("pay-1")).Once()
	suite.txRepo.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(txn *domain.Transaction) bool {
			return txn.Currency == "USD"
		})).
		Return(errors.New("database down")).
		Once()

	got, err := suite.service.Refund(context.Background(), cmd, "")

	suite.Require().NoError(err)
	suite.True(got.Success)
}

func (suite *PaymentServiceTestSuite) Test_InvalidInput() {
	tests := []struct {
		name string
		call func() error
	}{
		{"zero amount", func() error {
			cmd := defaultCharge()
			cmd.Amount = 0
			_, err := suite.service.Authorize(context.Background(), cmd, "")
			return err
		}},
		{"missing card number", func() error {
			cmd := defaultCharge()
			cmd.Card.Number = ""
			_, err := suite.service.Purchase(context.Background(), cmd, "")
			return err
		}},
		{"bad month", func() error {
			cmd := services.VerifyCommand{Card: defaultCharge().Card}
			cmd.Card.Month = 13
			_, err := suite.service.Verify(context.Background(), cmd, "")
			return err
		}},
		{"missing authorization", func() error {
			_, err := suite.service.Capture(context.Background(), services.CaptureCommand{Amount: 1}, "")
			return err
		}},
		{"bad currency", func() error {
			cmd := services.RefundCommand{Authorization: "pay-1", Amount: 1, Options: domain.Options{Currency: "euro"}}
			_, err := suite.service.Refund(context.Background(), cmd, "")
			return err
		}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := tt.call()
			svcErr, ok := application.IsServiceError(err)
			suite.Require().True(ok)
			suite.Equal(application.ErrCodeInvalidInput, svcErr.Code)
		})
	}
}

func TestPaymentService_WithoutOptionalBackends(t *testing.T) {
	brand, err := domain.LookupBrand(domain.BrandPayOne)
	require.NoError(t, err)

	gateway := mocks.NewMockPaymentGateway(t)
	gateway.EXPECT().Brand().Return(brand)
	gateway.EXPECT().
		Authorize(mock.Anything, int64(1000), mock.Anything, mock.Anything).
		Return(approved("pay-1")).
		Once()

	service := services.NewPaymentService(gateway, nil, nil, nil)
	got, err := service.Authorize(context.Background(), defaultCharge(), "idem-1")

	require.NoError(t, err)
	assert.True(t, got.Success)
}

func TestComputeHash(t *testing.T) {
	a := defaultCharge()
	b := defaultCharge()
	a.Options.BillingAddress = &domain.Address{City: "Lyon"}
	b.Options.BillingAddress = &domain.Address{City: "Lyon"}

	assert.Equal(t, services.ComputeHash(domain.OperationPurchase, a), services.ComputeHash(domain.OperationPurchase, b))
	assert.NotEqual(t, services.ComputeHash(domain.OperationPurchase, a), services.ComputeHash(domain.OperationAuthorize, a))
}
