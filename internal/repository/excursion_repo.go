package repository

import (
	"context"

	"seatrips/internal/domain"

	"gorm.io/gorm"
)

type ExcursionRepository struct {
	db *gorm.DB
}

func NewExcursionRepository(db *gorm.DB) *ExcursionRepository {
	return &ExcursionRepository{db: db}
}

func (r *ExcursionRepository) Create(ctx context.Context, e *domain.Excursion) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ExcursionRepository) GetByID(ctx context.Context, id int64) (*domain.Excursion, error) {
	var e domain.Excursion
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExcursionRepository) List(ctx context.Context, activeOnly bool) ([]domain.Excursion, error) {
	q := r.db.WithContext(ctx).Order("id")
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var out []domain.Excursion
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SetActive deactivates or reactivates an excursion. Deactivation is the only
// way an excursion leaves the catalog; rows referenced by bookings stay.
func (r *ExcursionRepository) SetActive(ctx context.Context, id int64, active bool) error {
	res := r.db.WithContext(ctx).Model(&domain.Excursion{}).Where("id = ?", id).Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
