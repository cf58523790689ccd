package testdata

import "github.com/DanielPopoola/onlinepayments-gateway/internal/domain"

// Card numbers the fake platform reacts to.
const (
	ApprovedNumber    = "4111111111111111"
	DeclinedNumber    = "4000000000000002"
	UnavailableNumber = "4000000000000119"
)

// DeclineErrorCode is returned for DeclinedNumber.
const DeclineErrorCode = "30511001"

var (
	ApprovedCard = domain.Card{
		Number:            ApprovedNumber,
		HolderName:        "Jane Doe",
		VerificationValue: "123",
		Month:             12,
		Year:              2030,
		Brand:             "visa",
	}

	DeclinedCard = domain.Card{
		Number:            DeclinedNumber,
		FirstName:         "John",
		LastName:          "Roe",
		VerificationValue: "123",
		Month:             1,
		Year:              2031,
		Brand:             "visa",
	}

	UnavailableCard = domain.Card{
		Number:            UnavailableNumber,
		HolderName:        "Jane Doe",
		VerificationValue: "123",
		Month:             6,
		Year:              2029,
		Brand:             "master",
	}
)
