package domain

import "time"

// Excursion is a sellable trip template. Concrete departures are Slots.
// Excursions referenced by bookings are deactivated, never deleted.
type Excursion struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name" validate:"required" gorm:"uniqueIndex"`
	Description string        `json:"description,omitempty" gorm:"type:text"`
	Duration    time.Duration `json:"duration"`
	BasePrice   float64       `json:"base_price" validate:"gte=0"`
	Active      bool          `json:"active"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
