package promo

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"seatrips/internal/domain"
	"seatrips/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	promos *repository.PromoRepository
}

func NewService(promos *repository.PromoRepository) *Service {
	return &Service{promos: promos}
}

func (s *Service) Create(ctx context.Context, req CreatePromoRequest) (*domain.PromoCode, error) {
	if !req.ValidUntil.After(req.ValidFrom) || req.UsageLimit <= 0 {
		return nil, ErrValidation
	}
	if req.DiscountValue < 0 {
		return nil, ErrValidation
	}
	if domain.DiscountType(req.DiscountType) == domain.DiscountPercent && req.DiscountValue > 100 {
		return nil, ErrValidation
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		code = strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	}

	p := &domain.PromoCode{
		Code:          code,
		DiscountType:  domain.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		ValidFrom:     req.ValidFrom,
		ValidUntil:    req.ValidUntil,
		UsageLimit:    req.UsageLimit,
	}

	if err := s.promos.Create(ctx, p); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrCodeTaken
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]domain.PromoCode, error) {
	return s.promos.List(ctx)
}

func (s *Service) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	p, err := s.promos.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// ValidateAt checks the validity window and remaining usage at the given
// instant.
func ValidateAt(p *domain.PromoCode, at time.Time) error {
	if at.Before(p.ValidFrom) {
		return ErrNotYetValid
	}
	if at.After(p.ValidUntil) {
		return ErrExpired
	}
	if p.UsageCount >= p.UsageLimit {
		return ErrExhausted
	}
	return nil
}

// ValidateForUpdate loads the promo row under an exclusive lock and validates
// it. Meant for the reservation transaction: the lock keeps the usage check
// and the later increment atomic against concurrent redemptions.
func ValidateForUpdate(tx *gorm.DB, code string, at time.Time) (*domain.PromoCode, error) {
	p, err := repository.GetPromoForUpdate(tx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := ValidateAt(p, at); err != nil {
		return nil, err
	}
	return p, nil
}

// Apply computes the discounted price. Percent discounts round to the
// currency's minimal unit; the result never goes below zero.
func Apply(base float64, p *domain.PromoCode) float64 {
	var out float64
	switch p.DiscountType {
	case domain.DiscountPercent:
		out = base * (100 - p.DiscountValue) / 100
	case domain.DiscountFixed:
		out = base - p.DiscountValue
	default:
		out = base
	}
	if out < 0 {
		return 0
	}
	return math.Round(out*100) / 100
}
