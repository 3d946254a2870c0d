package promo

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("promo code not found")
	ErrNotYetValid = errors.New("promo code not yet valid")
	ErrExpired     = errors.New("promo code expired")
	ErrExhausted   = errors.New("promo code usage exhausted")
	ErrCodeTaken   = errors.New("promo code already exists")
)
