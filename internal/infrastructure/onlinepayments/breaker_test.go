package onlinepayments_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/config"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/infrastructure/onlinepayments"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/infrastructure/onlinepayments/mocks"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testBreakerConfig = config.BreakerConfig{
	MaxRequests:      1,
	Interval:         time.Minute,
	Timeout:          time.Minute,
	FailureThreshold: 2,
}

func TestBreakerClient_OpensAfterTransportFaults(t *testing.T) {
	mockClient := mocks.NewMockPaymentsClient(t)
	breaker := onlinepayments.NewBreakerClient("test", mockClient, testBreakerConfig, nil)

	commErr := &onlinepayments.CommunicationError{Err: errors.New("timeout")}
	mockClient.EXPECT().
		CreatePayment(mock.Anything, "merchant-1", mock.Anything).
		Return(nil, commErr).
		Twice()

	for i := 0; i < 2; i++ {
		_, err := breaker.CreatePayment(context.Background(), "merchant-1", paymentRequest())
		require.ErrorIs(t, err, commErr)
	}

	assert.Equal(t, gobreaker.StateOpen, breaker.State())
	assert.ErrorIs(t, breaker.Check(context.Background()), gobreaker.ErrOpenState)

	_, err := breaker.CreatePayment(context.Background(), "merchant-1", paymentRequest())
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestBreakerClient_DeclinesDoNotTrip(t *testing.T) {
	mockClient := mocks.NewMockPaymentsClient(t)
	breaker := onlinepayments.NewBreakerClient("test", mockClient, testBreakerConfig, nil)

	declined := &onlinepayments.APIError{
		StatusCode:    402,
		PaymentResult: &onlinepayments.CreatePaymentResponse{},
	}
	invalid := &onlinepayments.APIError{StatusCode: 400}

	mockClient.EXPECT().
		CreatePayment(mock.Anything, "merchant-1", mock.Anything).
		Return(nil, declined).
		Twice()
	mockClient.EXPECT().
		CapturePayment(mock.Anything, "merchant-1", "pay-1", mock.Anything).
		Return(nil, invalid).
		Twice()

	for i := 0; i < 2; i++ {
		_, err := breaker.CreatePayment(context.Background(), "merchant-1", paymentRequest())
		assert.ErrorIs(t, err, declined)

		_, err = breaker.CapturePayment(context.Background(), "merchant-1", "pay-1", onlinepayments.CapturePaymentRequest{})
		assert.ErrorIs(t, err, invalid)
	}

	assert.Equal(t, gobreaker.StateClosed, breaker.State())
}

func TestBreakerClient_PassesResponsesThrough(t *testing.T) {
	mockClient := mocks.NewMockPaymentsClient(t)
	breaker := onlinepayments.NewBreakerClient("test", mockClient, testBreakerConfig, nil)

	expected := &onlinepayments.RefundResponse{ID: "ref-1", Status: onlinepayments.StatusRefundRequested}
	mockClient.EXPECT().
		RefundPayment(mock.Anything, "merchant-1", "pay-1", mock.Anything).
		Return(expected, nil).
		Once()

	resp, err := breaker.RefundPayment(context.Background(), "merchant-1", "pay-1", onlinepayments.RefundRequest{})

	require.NoError(t, err)
	assert.Same(t, expected, resp)
}

func TestNewClient_ComposesStack(t *testing.T) {
	client := onlinepayments.NewClient("https://example.test", testCredentials(), config.ClientConfig{
		Timeout: time.Second,
		Retry:   testRetryConfig,
		Breaker: testBreakerConfig,
	}, nil)

	breaker, ok := client.(*onlinepayments.BreakerClient)
	require.True(t, ok)
	assert.Equal(t, gobreaker.StateClosed, breaker.State())
	assert.NoError(t, breaker.Check(context.Background()))
}
