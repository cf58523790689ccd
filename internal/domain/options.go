package domain

import "strings"

// Options are the optional per-call inputs. Empty fields are never sent.
type Options struct {
	// Currency overrides the brand default currency (ISO 4217, any case).
	Currency string `json:"currency,omitempty"`
	// CustomerID becomes order.customer.merchantCustomerId.
	CustomerID string `json:"customer_id,omitempty"`
	// Email becomes order.customer.contactDetails.emailAddress.
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	// OrderID becomes order.references.merchantReference.
	OrderID string `json:"order_id,omitempty"`
	// Description becomes order.references.descriptor.
	Description string `json:"description,omitempty"`
	// BillingAddress adds order.customer.billingAddress; its Phone adds the
	// contact phone number.
	BillingAddress *Address `json:"billing_address,omitempty"`
}

type Address struct {
	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	Zip      string `json:"zip,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// CurrencyOr returns the requested currency upper-cased, or fallback.
func (o Options) CurrencyOr(fallback string) string {
	if o.Currency != "" {
		return strings.ToUpper(o.Currency)
	}
	return strings.ToUpper(fallback)
}
