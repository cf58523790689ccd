package domain

import (
	"slices"
	"strings"
)

const (
	BrandOnlinePayments = "onlinepayments"
	BrandCAWL           = "cawl"
	BrandPayOne         = "payone"
)

// BrandConfig is the static description of one Online Payments brand.
type BrandConfig struct {
	Key                string   `json:"key"`
	DisplayName        string   `json:"display_name"`
	HomepageURL        string   `json:"homepage_url"`
	DefaultCurrency    string   `json:"default_currency"`
	SandboxURL         string   `json:"sandbox_url"`
	LiveURL            string   `json:"live_url"`
	SupportedCountries []string `json:"supported_countries"`
	SupportedCardTypes []string `json:"supported_card_types"`
}

var (
	supportedCountries = []string{"US", "CA", "GB", "AU", "NL", "DE", "FR", "ES", "IT"}
	supportedCardTypes = []string{"visa", "master", "american_express", "discover", "jcb"}
	cardTypeAliases    = map[string]string{"mastercard": "master", "amex": "american_express"}

	anzWorldline = BrandConfig{
		Key:                BrandOnlinePayments,
		DisplayName:        "ANZ Worldline",
		HomepageURL:        "https://docs.anzworldline-solutions.com.au/en/getting-started/",
		DefaultCurrency:    "AUD",
		SandboxURL:         "https://payment.preprod.anzworldline-solutions.com.au",
		LiveURL:            "https://payment.anzworldline-solutions.com.au",
		SupportedCountries: supportedCountries,
		SupportedCardTypes: supportedCardTypes,
	}

	cawl = BrandConfig{
		Key:                BrandCAWL,
		DisplayName:        "CAWL",
		HomepageURL:        "https://docs.ecommerce.cawl-solutions.fr/en/",
		DefaultCurrency:    "EUR",
		SandboxURL:         "https://payment.preprod.ca.cawl-solutions.fr",
		LiveURL:            "https://payment.ca.cawl-solutions.fr",
		SupportedCountries: supportedCountries,
		SupportedCardTypes: supportedCardTypes,
	}

	payOne = BrandConfig{
		Key:                BrandPayOne,
		DisplayName:        "PayOne",
		HomepageURL:        "https://developer.payone.com/en/",
		DefaultCurrency:    "EUR",
		SandboxURL:         "https://payment.preprod.payone.com",
		LiveURL:            "https://payment.payone.com",
		SupportedCountries: supportedCountries,
		SupportedCardTypes: supportedCardTypes,
	}
)

// Brands returns every known brand, ordered by key.
func Brands() []BrandConfig {
	return []BrandConfig{cawl.clone(), anzWorldline.clone(), payOne.clone()}
}

// LookupBrand resolves a brand by key, case-insensitively.
func LookupBrand(key string) (BrandConfig, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case BrandOnlinePayments:
		return anzWorldline.clone(), nil
	case BrandCAWL:
		return cawl.clone(), nil
	case BrandPayOne:
		return payOne.clone(), nil
	}
	return BrandConfig{}, NewUnknownBrandError(key)
}

// Endpoint picks the sandbox or live base URL.
func (b BrandConfig) Endpoint(test bool) string {
	if test {
		return b.SandboxURL
	}
	return b.LiveURL
}

// SupportsCardType reports whether the brand accepts cardType. The short
// aliases the request builder knows ("mastercard", "amex") count too.
func (b BrandConfig) SupportsCardType(cardType string) bool {
	cardType = strings.ToLower(cardType)
	if alias, ok := cardTypeAliases[cardType]; ok {
		cardType = alias
	}
	return slices.Contains(b.SupportedCardTypes, cardType)
}

func (b BrandConfig) clone() BrandConfig {
	b.SupportedCountries = slices.Clone(b.SupportedCountries)
	b.SupportedCardTypes = slices.Clone(b.SupportedCardTypes)
	return b
}
