package domain

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator"
)

// DefaultIntegrator is reported to the platform when none is configured.
const DefaultIntegrator = "github.com/DanielPopoola/onlinepayments-gateway"

var validate = validator.New()

// optionNames maps credential fields to the construction option that sets them.
var optionNames = map[string]string{
	"MerchantID": "partner",
	"APIKeyID":   "login",
	"APISecret":  "password",
}

// Credentials identify the merchant towards the platform.
type Credentials struct {
	MerchantID string `validate:"required"`
	APIKeyID   string `validate:"required"`
	APISecret  string `validate:"required"`
	Integrator string
}

// Validate reports every missing required option at once.
func (c Credentials) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if name, ok := optionNames[fe.Field()]; ok {
			missing = append(missing, name)
		}
	}
	return NewMissingOptionError(missing...)
}

func (c Credentials) IntegratorOrDefault() string {
	if c.Integrator == "" {
		return DefaultIntegrator
	}
	return c.Integrator
}

func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("merchant_id", c.MerchantID),
		slog.String("api_key_id", c.APIKeyID),
		slog.String("api_secret", MaskSecret(c.APISecret)),
	)
}

// MaskSecret hides all but the last four characters.
func MaskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
