package gateway

import (
	"encoding/json"
	"testing"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/infrastructure/onlinepayments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBrand(t *testing.T) domain.BrandConfig {
	t.Helper()
	brand, err := domain.LookupBrand(domain.BrandOnlinePayments)
	require.NoError(t, err)
	return brand
}

func testCard() domain.Card {
	return domain.Card{
		Number:            "4111111111111111",
		FirstName:         "Jane",
		LastName:          "Doe",
		VerificationValue: "123",
		Month:             1,
		Year:              2030,
		Brand:             "master",
	}
}

func asJSON(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestBuildCreatePayment_CardBlock(t *testing.T) {
	req := buildCreatePayment(testBrand(t), 1000, testCard(), domain.Options{}, onlinepayments.ModeSale)

	input := req.CardPaymentMethodSpecificInput
	require.NotNil(t, input)
	assert.Equal(t, "4111111111111111", input.Card.CardNumber)
	assert.Equal(t, "Jane Doe", input.Card.CardholderName)
	assert.Equal(t, "123", input.Card.Cvv)
	assert.Equal(t, "0130", input.Card.ExpiryDate)
	assert.Equal(t, domain.ProductMastercard, input.PaymentProductID)
	assert.Equal(t, onlinepayments.ModeSale, input.AuthorizationMode)
	require.NotNil(t, input.ThreeDSecure)
	assert.True(t, input.ThreeDSecure.SkipAuthentication)
}

func TestBuildCreatePayment_UnknownBrandIsVisa(t *testing.T) {
	card := testCard()
	card.Brand = "amex-unknown"

	req := buildCreatePayment(testBrand(t), 1000, card, domain.Options{}, onlinepayments.ModeSale)

	assert.Equal(t, domain.ProductVisa, req.CardPaymentMethodSpecificInput.PaymentProductID)
}

func TestBuildCreatePayment_OmitsEmptyBlocks(t *testing.T) {
	card := testCard()
	card.FirstName, card.LastName = "", ""

	req := buildCreatePayment(testBrand(t), 1000, card, domain.Options{}, "")
	body := asJSON(t, req)

	order := body["order"].(map[string]any)
	assert.NotContains(t, order, "customer")
	assert.NotContains(t, order, "references")
	assert.Equal(t, map[string]any{"amount": float64(1000), "currencyCode": "AUD"}, order["amountOfMoney"])

	input := body["cardPaymentMethodSpecificInput"].(map[string]any)
	assert.NotContains(t, input, "authorizationMode")
	assert.Equal(t, map[string]any{"skipAuthentication": true}, input["threeDSecure"])
}

func TestBuildCreatePayment_FullOptions(t *testing.T) {
	opts := domain.Options{
		Currency:    "eur",
		CustomerID:  "cust-1",
		Email:       "jane@example.com",
		OrderID:     "order-1",
		Description: "Store purchase",
		BillingAddress: &domain.Address{
			Address1: "1 Main St",
			Address2: "Apt 2",
			Zip:      "2000",
			City:     "Sydney",
			State:    "NSW",
			Country:  "AU",
			Phone:    "+61 2 0000 0000",
		},
	}

	req := buildCreatePayment(testBrand(t), 2500, testCard(), opts, onlinepayments.ModePreAuthorization)

	assert.Equal(t, "EUR", req.Order.AmountOfMoney.CurrencyCode)

	customer := req.Order.Customer
	require.NotNil(t, customer)
	assert.Equal(t, "cust-1", customer.MerchantCustomerID)
	assert.Equal(t, &onlinepayments.PersonalName{FirstName: "Jane", Surname: "Doe"}, customer.PersonalInformation.Name)
	assert.Equal(t, &onlinepayments.ContactDetails{EmailAddress: "jane@example.com", PhoneNumber: "+61 2 0000 0000"}, customer.ContactDetails)
	assert.Equal(t, &onlinepayments.Address{
		Street:         "1 Main St",
		AdditionalInfo: "Apt 2",
		Zip:            "2000",
		City:           "Sydney",
		State:          "NSW",
		CountryCode:    "AU",
	}, customer.BillingAddress)

	assert.Equal(t, &onlinepayments.OrderReferences{MerchantReference: "order-1", Descriptor: "Store purchase"}, req.Order.References)
}

func TestBuildCreatePayment_PhoneOnlyFromBillingAddress(t *testing.T) {
	opts := domain.Options{BillingAddress: &domain.Address{City: "Paris"}}

	req := buildCreatePayment(testBrand(t), 100, testCard(), opts, "")

	assert.Nil(t, req.Order.Customer.ContactDetails)
	assert.Equal(t, "Paris", req.Order.Customer.BillingAddress.City)
}

func TestBuildReferences(t *testing.T) {
	assert.Nil(t, buildReferences(domain.Options{}))
	assert.Equal(t, &onlinepayments.OrderReferences{Descriptor: "desc"}, buildReferences(domain.Options{Description: "desc"}))
	assert.Equal(t, &onlinepayments.OrderReferences{MerchantReference: "o-1"}, buildReferences(domain.Options{OrderID: "o-1"}))
}

func TestBuildRefund_DefaultsToBrandCurrency(t *testing.T) {
	cawl, err := domain.LookupBrand(domain.BrandCAWL)
	require.NoError(t, err)

	req := buildRefund(cawl, 700, domain.Options{})

	assert.Equal(t, &onlinepayments.AmountOfMoney{Amount: 700, CurrencyCode: "EUR"}, req.AmountOfMoney)
	assert.Equal(t, onlinepayments.CapturePaymentRequest{Amount: 700}, buildCapture(700))
}
