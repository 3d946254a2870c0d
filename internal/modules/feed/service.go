package feed

import (
	"context"
	"time"

	"seatrips/internal/domain"
)

type Event struct {
	Type      string    `json:"type"`
	BookingID int64     `json:"booking_id"`
	SlotID    int64     `json:"slot_id"`
	HolderID  int64     `json:"holder_id"`
	Total     float64   `json:"total_price"`
	At        time.Time `json:"at"`
}

// Service pushes booking lifecycle events to connected staff dashboards.
// It satisfies the reservation module's BookingEvents interface; delivery is
// best-effort.
type Service struct {
	hub *Hub
}

func NewService(hub *Hub) *Service {
	return &Service{hub: hub}
}

func (s *Service) NotifyBookingCreated(ctx context.Context, b *domain.Booking) error {
	s.hub.Broadcast(Event{
		Type:      "booking_created",
		BookingID: b.ID,
		SlotID:    b.SlotID,
		HolderID:  b.HolderID,
		Total:     b.TotalPrice,
		At:        time.Now(),
	})
	return nil
}

func (s *Service) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) error {
	s.hub.Broadcast(Event{
		Type:      "booking_cancelled",
		BookingID: b.ID,
		SlotID:    b.SlotID,
		HolderID:  b.HolderID,
		Total:     b.TotalPrice,
		At:        time.Now(),
	})
	return nil
}
