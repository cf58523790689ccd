package domain

import (
	"errors"
	"strings"
)

// Money is an amount in minor currency units.
type Money struct {
	Amount   int64
	Currency string
}

func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, errors.New("amount cannot be negative")
	}
	if len(currency) != 3 {
		return Money{}, errors.New("currency must be a 3-letter ISO 4217 code")
	}
	return Money{Amount: amount, Currency: strings.ToUpper(currency)}, nil
}

// VerifyAmount is the minimal authorization used to check a card.
const VerifyAmount int64 = 100
