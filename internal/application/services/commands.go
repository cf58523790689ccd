package services

import "github.com/DanielPopoola/onlinepayments-gateway/internal/domain"

type ChargeCommand struct {
	Amount  int64          `json:"amount" validate:"gt=0"`
	Card    domain.Card    `json:"card"`
	Options domain.Options `json:"options"`
}

type CaptureCommand struct {
	Authorization string         `json:"authorization" validate:"required"`
	Amount        int64          `json:"amount" validate:"gt=0"`
	Options       domain.Options `json:"options"`
}

type RefundCommand struct {
	Authorization string         `json:"authorization" validate:"required"`
	Amount        int64          `json:"amount" validate:"gt=0"`
	Options       domain.Options `json:"options"`
}

type VoidCommand struct {
	Authorization string         `json:"authorization" validate:"required"`
	Options       domain.Options `json:"options"`
}

type VerifyCommand struct {
	Card    domain.Card    `json:"card"`
	Options domain.Options `json:"options"`
}
