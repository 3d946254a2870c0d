package domain

import "time"

type SlotStatus string

const (
	SlotScheduled SlotStatus = "scheduled"
	SlotCompleted SlotStatus = "completed"
	SlotCancelled SlotStatus = "cancelled"
)

// Slot is one departure of an Excursion. MaxPeople and MaxWeight are fixed at
// creation and every booking against the slot must respect them.
// MaxWeight <= 0 means the slot does not track weight.
type Slot struct {
	ID          int64      `json:"id"`
	ExcursionID int64      `json:"excursion_id" validate:"required" gorm:"index"`
	StartTime   time.Time  `json:"start_time" validate:"required" gorm:"index"`
	MaxPeople   int        `json:"max_people" validate:"required,gt=0"`
	MaxWeight   float64    `json:"max_weight,omitempty"`
	CaptainID   *int64     `json:"captain_id,omitempty"`
	Status      SlotStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Excursion *Excursion `json:"excursion,omitempty" gorm:"foreignKey:ExcursionID"`
}
