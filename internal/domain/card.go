package domain

import (
	"fmt"
	"log/slog"
	"strings"
)

// Online Payments product ids. Unknown brands are sent as Visa.
const (
	ProductVisa       = 1
	ProductAmex       = 2
	ProductMastercard = 3
	ProductJCB        = 125
	ProductDiscover   = 128
)

var productIDs = map[string]int{
	"visa":             ProductVisa,
	"master":           ProductMastercard,
	"mastercard":       ProductMastercard,
	"american_express": ProductAmex,
	"amex":             ProductAmex,
	"discover":         ProductDiscover,
	"jcb":              ProductJCB,
}

// Card is the payment instrument supplied with purchase, authorize and verify.
type Card struct {
	Number            string `json:"number" validate:"required"`
	HolderName        string `json:"holder_name,omitempty"`
	FirstName         string `json:"first_name,omitempty"`
	LastName          string `json:"last_name,omitempty"`
	VerificationValue string `json:"verification_value,omitempty"`
	Month             int    `json:"month" validate:"min=1,max=12"`
	Year              int    `json:"year" validate:"min=1"`
	Brand             string `json:"brand,omitempty"`
}

// Name is the cardholder name: HolderName, or first and last name joined.
func (c Card) Name() string {
	if c.HolderName != "" {
		return c.HolderName
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c Card) ExpiryDate() string {
	return FormatExpiry(c.Month, c.Year)
}

// LogValue keeps the PAN and CVV out of logs.
func (c Card) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("number", MaskPAN(c.Number)),
		slog.String("brand", c.Brand),
		slog.String("expiry", c.ExpiryDate()),
	)
}

// FormatExpiry renders MMYY: zero-padded month, last two digits of the year.
func FormatExpiry(month, year int) string {
	return fmt.Sprintf("%02d%02d", month, year%100)
}

// CardBrandID maps a card brand name to its Online Payments product id.
func CardBrandID(brand string) int {
	if id, ok := productIDs[strings.ToLower(strings.TrimSpace(brand))]; ok {
		return id
	}
	return ProductVisa
}

// MaskPAN keeps the last four digits.
func MaskPAN(pan string) string {
	pan = strings.TrimSpace(pan)
	if len(pan) <= 4 {
		return strings.Repeat("*", len(pan))
	}
	return strings.Repeat("*", len(pan)-4) + pan[len(pan)-4:]
}
