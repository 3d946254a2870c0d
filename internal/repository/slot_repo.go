package repository

import (
	"context"

	"seatrips/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SlotRepository struct {
	db *gorm.DB
}

func NewSlotRepository(db *gorm.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

func (r *SlotRepository) Create(ctx context.Context, s *domain.Slot) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SlotRepository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	var s domain.Slot
	if err := r.db.WithContext(ctx).Preload("Excursion").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// GetForUpdate loads the slot row under an exclusive lock. Must be called with
// a transaction handle; concurrent reservations for the same slot serialize on
// this lock.
func GetSlotForUpdate(tx *gorm.DB, id int64) (*domain.Slot, error) {
	var s domain.Slot
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SlotRepository) ListByExcursion(ctx context.Context, excursionID int64) ([]domain.Slot, error) {
	var out []domain.Slot
	err := r.db.WithContext(ctx).
		Where("excursion_id = ?", excursionID).
		Order("start_time").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus moves a slot between scheduled/completed/cancelled. Capacity
// fields are immutable and deliberately have no update method.
func (r *SlotRepository) UpdateStatus(ctx context.Context, id int64, status domain.SlotStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.Slot{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
