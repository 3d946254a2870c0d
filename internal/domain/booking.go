package domain

import "time"

type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentNotPaid  PaymentStatus = "not_paid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type ClientStatus string

const (
	ClientNotArrived ClientStatus = "not_arrived"
	ClientArrived    ClientStatus = "arrived"
)

// Booking reserves capacity on a Slot for one adult holder plus zero or more
// children. The three status fields are independent axes: only Status affects
// occupancy, and cancelled is terminal.
type Booking struct {
	ID           int64         `json:"id"`
	SlotID       int64         `json:"slot_id" validate:"required" gorm:"index"`
	HolderID     int64         `json:"holder_id" validate:"required" gorm:"index"`
	CreatedByID  *int64        `json:"created_by_id,omitempty"`
	PromoCodeID  *int64        `json:"promo_code_id,omitempty"`
	TotalPrice   float64       `json:"total_price"`
	HolderWeight float64       `json:"holder_weight,omitempty"`
	Status       BookingStatus `json:"status"`
	Payment      PaymentStatus `json:"payment_status" gorm:"column:payment_status"`
	Client       ClientStatus  `json:"client_status" gorm:"column:client_status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	CancelledAt  *time.Time    `json:"cancelled_at,omitempty"`

	Slot     *Slot          `json:"slot,omitempty" gorm:"foreignKey:SlotID"`
	Children []BookingChild `json:"children,omitempty" gorm:"foreignKey:BookingID"`
}

// BookingChild is an additional occupant under a booking. Each child counts
// one unit of people capacity and its Weight toward the slot weight limit.
type BookingChild struct {
	ID          int64     `json:"id"`
	BookingID   int64     `json:"booking_id" gorm:"index"`
	ChildUserID *int64    `json:"child_user_id,omitempty"`
	AgeCategory string    `json:"age_category"`
	Price       float64   `json:"price"`
	Weight      float64   `json:"weight,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
