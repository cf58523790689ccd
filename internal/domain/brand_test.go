package domain_test

import (
	"testing"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupBrand(t *testing.T) {
	t.Run("resolves every brand", func(t *testing.T) {
		cases := map[string]struct {
			name, currency, sandbox, live string
		}{
			"onlinepayments": {"ANZ Worldline", "AUD", "https://payment.preprod.anzworldline-solutions.com.au", "https://payment.anzworldline-solutions.com.au"},
			"cawl":           {"CAWL", "EUR", "https://payment.preprod.ca.cawl-solutions.fr", "https://payment.ca.cawl-solutions.fr"},
			"PayOne":         {"PayOne", "EUR", "https://payment.preprod.payone.com", "https://payment.payone.com"},
		}

		for key, want := range cases {
			brand, err := domain.LookupBrand(key)
			require.NoError(t, err, key)
			assert.Equal(t, want.name, brand.DisplayName)
			assert.Equal(t, want.currency, brand.DefaultCurrency)
			assert.Equal(t, want.sandbox, brand.Endpoint(true))
			assert.Equal(t, want.live, brand.Endpoint(false))
			assert.NotEmpty(t, brand.HomepageURL)
		}
	})

	t.Run("rejects unknown brand", func(t *testing.T) {
		_, err := domain.LookupBrand("stripe")
		require.Error(t, err)
		assert.True(t, domain.IsConfigurationError(err))
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeUnknownBrand))
	})
}

func TestBrandConfig_IsImmutable(t *testing.T) {
	first, err := domain.LookupBrand(domain.BrandCAWL)
	require.NoError(t, err)
	first.SupportedCardTypes[0] = "tampered"
	first.DefaultCurrency = "USD"

	second, err := domain.LookupBrand(domain.BrandCAWL)
	require.NoError(t, err)
	assert.Equal(t, "visa", second.SupportedCardTypes[0])
	assert.Equal(t, "EUR", second.DefaultCurrency)
}

func TestBrandConfig_SupportsCardType(t *testing.T) {
	brand, err := domain.LookupBrand(domain.BrandPayOne)
	require.NoError(t, err)

	assert.True(t, brand.SupportsCardType("VISA"))
	assert.True(t, brand.SupportsCardType("american_express"))
	assert.True(t, brand.SupportsCardType("Amex"))
	assert.True(t, brand.SupportsCardType("mastercard"))
	assert.False(t, brand.SupportsCardType("diners"))
}

func TestBrands(t *testing.T) {
	brands := domain.Brands()
	require.Len(t, brands, 3)
	assert.Equal(t, domain.BrandCAWL, brands[0].Key)
	assert.Equal(t, domain.BrandOnlinePayments, brands[1].Key)
	assert.Equal(t, domain.BrandPayOne, brands[2].Key)
}
