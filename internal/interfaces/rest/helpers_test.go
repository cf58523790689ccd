package rest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/application"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
)

func TestToDomainOptions(t *testing.T) {
	t.Run("nil options", func(t *testing.T) {
		assert.Equal(t, domain.Options{}, ToDomainOptions(nil))
	})

	t.Run("billing address is copied", func(t *testing.T) {
		currency, city := "EUR", "Paris"
		opts := ToDomainOptions(&api.Options{
			Currency:       &currency,
			BillingAddress: &api.Address{City: &city},
		})

		assert.Equal(t, "EUR", opts.Currency)
		require.NotNil(t, opts.BillingAddress)
		assert.Equal(t, "Paris", opts.BillingAddress.City)
		assert.Empty(t, opts.BillingAddress.Zip)
	})
}

func TestToAPIResult(t *testing.T) {
	env := ToAPIResult(&domain.Result{
		Success: false,
		Message: "card declined",
		Test:    true,
	})

	assert.False(t, env.Success)
	assert.Equal(t, "card declined", env.Data.Message)
	assert.NotNil(t, env.Data.Params)
	assert.Nil(t, env.Data.Authorization)
	assert.Nil(t, env.Data.ErrorCode)
}

func TestResultStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, ResultStatus(&domain.Result{Success: true}))
	assert.Equal(t, http.StatusBadGateway, ResultStatus(&domain.Result{ErrorCode: domain.ErrorCodeSDK}))
	assert.Equal(t, http.StatusPaymentRequired, ResultStatus(&domain.Result{ErrorCode: domain.ErrorCodeGateway}))
}

func TestBuildErrorResponse(t *testing.T) {
	status, body := BuildErrorResponse(application.NewInvalidInputError(errors.New("amount must be positive")))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, body.Success)
	assert.Equal(t, api.ErrorDetailCodeINVALIDINPUT, body.Error.Code)
	assert.Contains(t, body.Error.Message, "amount must be positive")
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, application.NewRequestProcessingError(), nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"REQUEST_PROCESSING"`)
}
