package repository

import (
	"context"
	"time"

	"seatrips/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// SlotOccupancy sums people and weight consumed on a slot by active bookings:
// one person per adult holder, one per child, weight analogously. Pass the
// coordinator's transaction handle so the read shares its lock scope.
func SlotOccupancy(tx *gorm.DB, slotID int64) (people int, weight float64, err error) {
	var adults struct {
		People int
		Weight float64
	}
	err = tx.Raw(`
SELECT COUNT(1) AS people, COALESCE(SUM(holder_weight), 0) AS weight
FROM bookings
WHERE slot_id = ? AND status = ?`, slotID, domain.BookingActive).Scan(&adults).Error
	if err != nil {
		return 0, 0, err
	}

	var children struct {
		People int
		Weight float64
	}
	err = tx.Raw(`
SELECT COUNT(1) AS people, COALESCE(SUM(bc.weight), 0) AS weight
FROM booking_children bc
JOIN bookings b ON b.id = bc.booking_id
WHERE b.slot_id = ? AND b.status = ?`, slotID, domain.BookingActive).Scan(&children).Error
	if err != nil {
		return 0, 0, err
	}

	return adults.People + children.People, adults.Weight + children.Weight, nil
}

// ActiveBookingExists reports whether the holder already has an active booking
// on the slot.
func ActiveBookingExists(tx *gorm.DB, slotID, holderID int64) (bool, error) {
	var cnt int64
	err := tx.Model(&domain.Booking{}).
		Where("slot_id = ? AND holder_id = ? AND status = ?", slotID, holderID, domain.BookingActive).
		Count(&cnt).Error
	return cnt > 0, err
}

// CreateBooking inserts the booking together with its children rows.
func CreateBooking(tx *gorm.DB, b *domain.Booking) error {
	return tx.Create(b).Error
}

func (r *BookingRepository) DB() *gorm.DB { return r.db }

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Preload("Children").Preload("Slot").First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListByHolder(ctx context.Context, holderID int64, limit, offset int) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("holder_id = ?", holderID).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Preload("Children").
		Preload("Slot").
		Preload("Slot.Excursion").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatusFields applies a partial update of the client/payment axes and
// returns the number of rows touched. Cancelled bookings are terminal, so the
// guard on status keeps them out of the update.
func (r *BookingRepository) UpdateStatusFields(ctx context.Context, id int64, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ? AND status <> ?", id, domain.BookingCancelled).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// Cancel flips an active booking to cancelled. Returns the rows touched: 0
// means the booking is missing or was already cancelled.
func (r *BookingRepository) Cancel(ctx context.Context, id int64, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ? AND status = ?", id, domain.BookingActive).
		Updates(map[string]interface{}{
			"status":       domain.BookingCancelled,
			"cancelled_at": at,
		})
	return res.RowsAffected, res.Error
}

// UpcomingForReminder selects active, paid bookings whose slot starts inside
// (now, now+window]. Ordered by slot start then booking id so pagination is
// stable.
func (r *BookingRepository) UpcomingForReminder(ctx context.Context, now time.Time, window time.Duration) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Joins("JOIN slots ON slots.id = bookings.slot_id").
		Where("bookings.status = ? AND bookings.payment_status = ?", domain.BookingActive, domain.PaymentPaid).
		Where("slots.start_time > ? AND slots.start_time <= ?", now, now.Add(window)).
		Order("slots.start_time, bookings.id").
		Preload("Slot").
		Preload("Slot.Excursion").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
