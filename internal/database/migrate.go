package database

import (
	"seatrips/internal/domain"

	"gorm.io/gorm"
)

// Migrate creates the schema and the partial unique index that backs the
// one-active-booking-per-(holder,slot) invariant at the storage level. The
// WHERE clause works on both Postgres and SQLite.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Excursion{},
		&domain.Slot{},
		&domain.Booking{},
		&domain.BookingChild{},
		&domain.PromoCode{},
	); err != nil {
		return err
	}

	return db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_one_active_booking_per_holder
ON bookings (slot_id, holder_id)
WHERE status = 'active'`).Error
}
