package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents a business or configuration error.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeMissingOption = "MISSING_OPTION"
	ErrCodeUnknownBrand  = "UNKNOWN_BRAND"
)

func NewMissingOptionError(options ...string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingOption,
		Message: fmt.Sprintf("missing required option(s): %s", strings.Join(options, ", ")),
	}
}

func NewUnknownBrandError(key string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnknownBrand,
		Message: fmt.Sprintf("unknown brand %q", key),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// IsConfigurationError reports faults raised while building a gateway.
func IsConfigurationError(err error) bool {
	return IsErrorCode(err, ErrCodeMissingOption) || IsErrorCode(err, ErrCodeUnknownBrand)
}
