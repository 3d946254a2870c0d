package reservation

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrSlotNotFound     = errors.New("slot not found")
	ErrSlotClosed       = errors.New("slot is not open for reservations")
	ErrDuplicateBooking = errors.New("holder already has an active booking on this slot")
	ErrCapacityExceeded = errors.New("slot capacity exceeded")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingCancelled = errors.New("booking is cancelled")
	ErrBusy             = errors.New("slot is busy, retry the reservation")
)
