package gateway

import (
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/infrastructure/onlinepayments"
)

// buildCreatePayment maps a card charge onto the create-payment request.
// Blocks without content are left nil so they are omitted on the wire.
func buildCreatePayment(brand domain.BrandConfig, amount int64, card domain.Card, opts domain.Options, mode string) onlinepayments.CreatePaymentRequest {
	cardInput := &onlinepayments.CardPaymentMethodSpecificInput{
		Card: &onlinepayments.Card{
			CardNumber:     card.Number,
			CardholderName: card.Name(),
			Cvv:            card.VerificationValue,
			ExpiryDate:     card.ExpiryDate(),
		},
		PaymentProductID:  domain.CardBrandID(card.Brand),
		AuthorizationMode: mode,
		ThreeDSecure:      &onlinepayments.ThreeDSecure{SkipAuthentication: true},
	}

	order := &onlinepayments.Order{
		AmountOfMoney: buildAmount(brand, amount, opts),
		Customer:      buildCustomer(card, opts),
		References:    buildReferences(opts),
	}

	return onlinepayments.CreatePaymentRequest{
		CardPaymentMethodSpecificInput: cardInput,
		Order:                          order,
	}
}

func buildAmount(brand domain.BrandConfig, amount int64, opts domain.Options) *onlinepayments.AmountOfMoney {
	return &onlinepayments.AmountOfMoney{
		Amount:       amount,
		CurrencyCode: opts.CurrencyOr(brand.DefaultCurrency),
	}
}

func buildCustomer(card domain.Card, opts domain.Options) *onlinepayments.Customer {
	customer := &onlinepayments.Customer{
		MerchantCustomerID: opts.CustomerID,
	}

	if card.FirstName != "" || card.LastName != "" {
		customer.PersonalInformation = &onlinepayments.PersonalInformation{
			Name: &onlinepayments.PersonalName{
				FirstName: card.FirstName,
				Surname:   card.LastName,
			},
		}
	}

	contact := &onlinepayments.ContactDetails{EmailAddress: opts.Email}
	if opts.BillingAddress != nil {
		contact.PhoneNumber = opts.BillingAddress.Phone
	}
	if contact.EmailAddress != "" || contact.PhoneNumber != "" {
		customer.ContactDetails = contact
	}

	if addr := opts.BillingAddress; addr != nil {
		customer.BillingAddress = &onlinepayments.Address{
			Street:         addr.Address1,
			AdditionalInfo: addr.Address2,
			Zip:            addr.Zip,
			City:           addr.City,
			State:          addr.State,
			CountryCode:    addr.Country,
		}
	}

	if customer.MerchantCustomerID == "" &&
		customer.PersonalInformation == nil &&
		customer.ContactDetails == nil &&
		customer.BillingAddress == nil {
		return nil
	}
	return customer
}

func buildReferences(opts domain.Options) *onlinepayments.OrderReferences {
	if opts.OrderID == "" && opts.Description == "" {
		return nil
	}
	return &onlinepayments.OrderReferences{
		MerchantReference: opts.OrderID,
		Descriptor:        opts.Description,
	}
}

func buildCapture(amount int64) onlinepayments.CapturePaymentRequest {
	return onlinepayments.CapturePaymentRequest{Amount: amount}
}

func buildRefund(brand domain.BrandConfig, amount int64, opts domain.Options) onlinepayments.RefundRequest {
	return onlinepayments.RefundRequest{
		AmountOfMoney: buildAmount(brand, amount, opts),
	}
}
