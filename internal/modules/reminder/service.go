package reminder

import (
	"context"
	"errors"
	"time"

	"seatrips/internal/domain"
)

var ErrValidation = errors.New("validation error")

// Service selects bookings due for a departure reminder: active, paid, with a
// slot starting inside the lookahead window. Read-only, no locking; it only
// observes committed state and may run on any cadence.
type Service struct {
	bookings BookingSource
	now      func() time.Time
}

func NewService(bookings BookingSource) *Service {
	return &Service{bookings: bookings, now: time.Now}
}

func (s *Service) UpcomingForReminder(ctx context.Context, windowHours int) ([]domain.Booking, error) {
	if windowHours <= 0 {
		return nil, ErrValidation
	}
	return s.bookings.UpcomingForReminder(ctx, s.now(), time.Duration(windowHours)*time.Hour)
}
