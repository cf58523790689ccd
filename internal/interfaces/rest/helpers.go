package rest

import (
	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
)

func ToDomainCard(c api.Card) domain.Card {
	return domain.Card{
		Number:            c.Number,
		HolderName:        deref(c.HolderName),
		FirstName:         deref(c.FirstName),
		LastName:          deref(c.LastName),
		VerificationValue: deref(c.VerificationValue),
		Month:             c.Month,
		Year:              c.Year,
		Brand:             deref(c.Brand),
	}
}

func ToDomainOptions(o *api.Options) domain.Options {
	if o == nil {
		return domain.Options{}
	}

	opts := domain.Options{
		Currency:    deref(o.Currency),
		CustomerID:  deref(o.CustomerId),
		Email:       deref(o.Email),
		OrderID:     deref(o.OrderId),
		Description: deref(o.Description),
	}
	if a := o.BillingAddress; a != nil {
		opts.BillingAddress = &domain.Address{
			Address1: deref(a.Address1),
			Address2: deref(a.Address2),
			Zip:      deref(a.Zip),
			City:     deref(a.City),
			State:    deref(a.State),
			Country:  deref(a.Country),
			Phone:    deref(a.Phone),
		}
	}
	return opts
}

// ToAPIResult wraps a gateway result in the reply envelope.
func ToAPIResult(r *domain.Result) api.ResultEnvelope {
	params := r.Params
	if params == nil {
		params = map[string]any{}
	}

	return api.ResultEnvelope{
		Success: r.Success,
		Data: api.Result{
			Success:       r.Success,
			Message:       r.Message,
			Params:        params,
			Authorization: optional(r.Authorization),
			Test:          r.Test,
			ErrorCode:     optional(r.ErrorCode),
		},
	}
}

func ToAPITransaction(t *domain.Transaction) api.Transaction {
	params := t.Params
	if params == nil {
		params = map[string]any{}
	}

	return api.Transaction{
		Id:            t.ID,
		Brand:         t.Brand,
		Operation:     string(t.Operation),
		Amount:        t.Amount,
		Currency:      t.Currency,
		Success:       t.Success,
		Message:       t.Message,
		Authorization: optional(t.Authorization),
		ErrorCode:     optional(t.ErrorCode),
		Test:          t.Test,
		Params:        params,
		CreatedAt:     t.CreatedAt,
	}
}

func ToAPITransactions(txns []*domain.Transaction) []api.Transaction {
	out := make([]api.Transaction, 0, len(txns))
	for _, t := range txns {
		out = append(out, ToAPITransaction(t))
	}
	return out
}

func ToAPIBrand(b domain.BrandConfig, test bool) api.Brand {
	return api.Brand{
		Key:                b.Key,
		DisplayName:        b.DisplayName,
		HomepageUrl:        b.HomepageURL,
		DefaultCurrency:    b.DefaultCurrency,
		SandboxUrl:         b.SandboxURL,
		LiveUrl:            b.LiveURL,
		SupportedCountries: b.SupportedCountries,
		SupportedCardTypes: b.SupportedCardTypes,
		Test:               test,
		Endpoint:           b.Endpoint(test),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
