package reservation

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"seatrips/internal/domain"
	"seatrips/internal/modules/promo"
	"seatrips/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// reserveAttempts bounds the internal retry on serialization/lock conflicts
// before the caller sees ErrBusy.
const reserveAttempts = 3

// BookingEvents receives best-effort notifications about committed bookings.
// Delivery transport is up to the implementation.
type BookingEvents interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking) error
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking) error
}

type Service struct {
	db       *gorm.DB
	bookings *repository.BookingRepository
	events   BookingEvents
	now      func() time.Time
}

func NewService(db *gorm.DB, bookings *repository.BookingRepository, events BookingEvents) *Service {
	return &Service{
		db:       db,
		bookings: bookings,
		events:   events,
		now:      time.Now,
	}
}

// Reserve creates a booking against a slot. The whole check-then-insert runs
// in one transaction with the slot row locked, so concurrent reservations for
// the same slot serialize and can never together exceed its capacity.
// Transient lock/serialization conflicts are retried from the top.
func (s *Service) Reserve(ctx context.Context, req ReserveRequest) (*domain.Booking, error) {
	if req.SlotID <= 0 || req.HolderID <= 0 || req.Price < 0 {
		return nil, ErrValidation
	}
	for _, ch := range req.Children {
		if ch.Price < 0 || ch.Weight < 0 {
			return nil, ErrValidation
		}
	}

	for attempt := 0; attempt < reserveAttempts; attempt++ {
		b, err := s.reserveOnce(ctx, req)
		if err == nil {
			if s.events != nil {
				_ = s.events.NotifyBookingCreated(ctx, b)
			}
			return b, nil
		}
		if !isTransient(err) {
			return nil, err
		}
		time.Sleep(time.Duration(attempt+1) * 10 * time.Millisecond)
	}
	return nil, ErrBusy
}

func (s *Service) reserveOnce(ctx context.Context, req ReserveRequest) (*domain.Booking, error) {
	var booking *domain.Booking

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slot, err := repository.GetSlotForUpdate(tx, req.SlotID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		if slot.Status != domain.SlotScheduled {
			return ErrSlotClosed
		}

		exists, err := repository.ActiveBookingExists(tx, req.SlotID, req.HolderID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateBooking
		}

		people, weight, err := repository.SlotOccupancy(tx, req.SlotID)
		if err != nil {
			return err
		}

		addPeople := 1 + len(req.Children)
		addWeight := req.HolderWeight
		for _, ch := range req.Children {
			addWeight += ch.Weight
		}
		if err := checkCapacity(slot, people, weight, addPeople, addWeight); err != nil {
			return err
		}

		total := req.Price
		for _, ch := range req.Children {
			total += ch.Price
		}

		var promoID *int64
		if req.PromoCode != "" {
			p, err := promo.ValidateForUpdate(tx, req.PromoCode, s.now())
			if err != nil {
				return err
			}
			total = promo.Apply(total, p)
			if err := repository.ConsumePromo(tx, p.ID); err != nil {
				return err
			}
			promoID = &p.ID
		}

		children := make([]domain.BookingChild, 0, len(req.Children))
		for _, ch := range req.Children {
			children = append(children, domain.BookingChild{
				ChildUserID: ch.ChildUserID,
				AgeCategory: ch.AgeCategory,
				Price:       ch.Price,
				Weight:      ch.Weight,
			})
		}

		b := &domain.Booking{
			SlotID:       req.SlotID,
			HolderID:     req.HolderID,
			CreatedByID:  req.CreatedByID,
			PromoCodeID:  promoID,
			TotalPrice:   math.Round(total*100) / 100,
			HolderWeight: req.HolderWeight,
			Status:       domain.BookingActive,
			Payment:      domain.PaymentNotPaid,
			Client:       domain.ClientNotArrived,
			Children:     children,
		}

		if err := repository.CreateBooking(tx, b); err != nil {
			if repository.IsUniqueViolation(err) {
				return ErrDuplicateBooking
			}
			return err
		}

		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Cancel sets an active booking to cancelled. Cancelled is terminal, and the
// freed capacity becomes visible to the next Reserve immediately because
// occupancy is recomputed from live rows.
func (s *Service) Cancel(ctx context.Context, bookingID int64) (bool, error) {
	rows, err := s.bookings.Cancel(ctx, bookingID, s.now())
	if err != nil {
		return false, err
	}
	if rows == 0 {
		b, err := s.bookings.GetByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, ErrBookingNotFound
			}
			return false, err
		}
		if b.Status == domain.BookingCancelled {
			return false, ErrBookingCancelled
		}
		return false, nil
	}

	if s.events != nil {
		if b, err := s.bookings.GetByID(ctx, bookingID); err == nil {
			_ = s.events.NotifyBookingCancelled(ctx, b)
		}
	}
	return true, nil
}

// UpdateStatus partially updates the client/payment axes. Each field is
// optional; updating one never touches the other. With neither supplied it is
// a no-op reporting false.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, clientStatus *string, paymentStatus *string) (bool, error) {
	if clientStatus == nil && paymentStatus == nil {
		return false, nil
	}

	fields := map[string]interface{}{}
	if clientStatus != nil {
		switch domain.ClientStatus(*clientStatus) {
		case domain.ClientArrived, domain.ClientNotArrived:
			fields["client_status"] = *clientStatus
		default:
			return false, ErrValidation
		}
	}
	if paymentStatus != nil {
		switch domain.PaymentStatus(*paymentStatus) {
		case domain.PaymentPaid, domain.PaymentNotPaid, domain.PaymentRefunded:
			fields["payment_status"] = *paymentStatus
		default:
			return false, ErrValidation
		}
	}

	rows, err := s.bookings.UpdateStatusFields(ctx, bookingID, fields)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		b, err := s.bookings.GetByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, ErrBookingNotFound
			}
			return false, err
		}
		if b.Status == domain.BookingCancelled {
			return false, ErrBookingCancelled
		}
		return false, nil
	}
	return true, nil
}

func (s *Service) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) ListByHolder(ctx context.Context, holderID int64, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.bookings.ListByHolder(ctx, holderID, limit, offset)
}

// isTransient reports lock/serialization failures that are safe to retry from
// the top of the reservation.
func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03":
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "database table is locked")
}
