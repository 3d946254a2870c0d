package catalog

import "time"

type CreateExcursionRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
	BasePrice       float64 `json:"base_price" binding:"gte=0"`
}

type CreateSlotRequest struct {
	ExcursionID int64     `json:"excursion_id" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	MaxPeople   int       `json:"max_people" binding:"required,gt=0"`
	MaxWeight   float64   `json:"max_weight"`
	CaptainID   *int64    `json:"captain_id"`
}
