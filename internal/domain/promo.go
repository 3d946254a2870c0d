package domain

import "time"

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// PromoCode is redeemed atomically with booking creation: the validity window
// and remaining usage are checked, and UsageCount incremented, inside the same
// transaction that inserts the booking.
type PromoCode struct {
	ID            int64        `json:"id"`
	Code          string       `json:"code" validate:"required" gorm:"uniqueIndex"`
	DiscountType  DiscountType `json:"discount_type" validate:"required,oneof=percent fixed"`
	DiscountValue float64      `json:"discount_value" validate:"gte=0"`
	ValidFrom     time.Time    `json:"valid_from"`
	ValidUntil    time.Time    `json:"valid_until"`
	UsageLimit    int          `json:"usage_limit"`
	UsageCount    int          `json:"usage_count"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
