package reminder

import (
	"context"
	"time"

	"seatrips/internal/domain"
)

// BookingSource — only the query the selector needs.
type BookingSource interface {
	UpcomingForReminder(ctx context.Context, now time.Time, window time.Duration) ([]domain.Booking, error)
}
