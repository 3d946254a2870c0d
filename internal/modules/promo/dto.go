package promo

import "time"

type CreatePromoRequest struct {
	Code          string    `json:"code"`
	DiscountType  string    `json:"discount_type" binding:"required,oneof=percent fixed"`
	DiscountValue float64   `json:"discount_value" binding:"required"`
	ValidFrom     time.Time `json:"valid_from" binding:"required"`
	ValidUntil    time.Time `json:"valid_until" binding:"required"`
	UsageLimit    int       `json:"usage_limit" binding:"required"`
}
