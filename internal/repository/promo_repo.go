package repository

import (
	"context"

	"seatrips/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PromoRepository struct {
	db *gorm.DB
}

func NewPromoRepository(db *gorm.DB) *PromoRepository {
	return &PromoRepository{db: db}
}

func (r *PromoRepository) Create(ctx context.Context, p *domain.PromoCode) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PromoRepository) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	var p domain.PromoCode
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromoRepository) List(ctx context.Context) ([]domain.PromoCode, error) {
	var out []domain.PromoCode
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetPromoForUpdate locks the promo row so concurrent redemptions of the same
// code serialize; the usage check and increment stay atomic.
func GetPromoForUpdate(tx *gorm.DB, code string) (*domain.PromoCode, error) {
	var p domain.PromoCode
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("code = ?", code).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ConsumePromo increments usage_count. Call only after GetPromoForUpdate in
// the same transaction.
func ConsumePromo(tx *gorm.DB, id int64) error {
	return tx.Model(&domain.PromoCode{}).
		Where("id = ?", id).
		Update("usage_count", gorm.Expr("usage_count + 1")).Error
}
