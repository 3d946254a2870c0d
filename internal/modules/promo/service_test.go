package promo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"seatrips/internal/database"
	"seatrips/internal/domain"
	"seatrips/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:promo_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err, "failed to open sqlite db")
	require.NoError(t, database.Migrate(db), "failed to migrate db")
	return NewService(repository.NewPromoRepository(db))
}

func TestValidateAt(t *testing.T) {
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	base := domain.PromoCode{
		Code:       "X",
		ValidFrom:  now.Add(-time.Hour),
		ValidUntil: now.Add(time.Hour),
		UsageLimit: 2,
		UsageCount: 0,
	}

	tests := []struct {
		name   string
		mutate func(p *domain.PromoCode)
		want   error
	}{
		{"valid", func(p *domain.PromoCode) {}, nil},
		{"not yet valid", func(p *domain.PromoCode) { p.ValidFrom = now.Add(time.Minute) }, ErrNotYetValid},
		{"expired", func(p *domain.PromoCode) { p.ValidUntil = now.Add(-time.Minute) }, ErrExpired},
		{"exhausted", func(p *domain.PromoCode) { p.UsageCount = 2 }, ErrExhausted},
		{"over limit", func(p *domain.PromoCode) { p.UsageCount = 3 }, ErrExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			err := ValidateAt(&p, now)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestValidateAtBoundaries(t *testing.T) {
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	p := domain.PromoCode{ValidFrom: now, ValidUntil: now, UsageLimit: 1}

	// valid_from <= now <= valid_until is inclusive on both ends
	assert.NoError(t, ValidateAt(&p, now))
}

func TestApplyPercent(t *testing.T) {
	p := &domain.PromoCode{DiscountType: domain.DiscountPercent, DiscountValue: 20}
	assert.Equal(t, 800.0, Apply(1000, p))

	// rounds to the minimal currency unit
	odd := &domain.PromoCode{DiscountType: domain.DiscountPercent, DiscountValue: 33}
	assert.Equal(t, 66.99, Apply(99.99, odd))
}

func TestApplyFixed(t *testing.T) {
	p := &domain.PromoCode{DiscountType: domain.DiscountFixed, DiscountValue: 300}
	assert.Equal(t, 700.0, Apply(1000, p))
}

func TestApplyFixedNeverNegative(t *testing.T) {
	p := &domain.PromoCode{DiscountType: domain.DiscountFixed, DiscountValue: 5000}
	assert.Equal(t, 0.0, Apply(1000, p))
}

func TestCreateRejectsBadWindow(t *testing.T) {
	svc := setupTestService(t)

	now := time.Now()
	_, err := svc.Create(context.Background(), CreatePromoRequest{
		Code:          "BAD",
		DiscountType:  "percent",
		DiscountValue: 10,
		ValidFrom:     now,
		ValidUntil:    now.Add(-time.Hour),
		UsageLimit:    10,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRejectsPercentOver100(t *testing.T) {
	svc := setupTestService(t)

	now := time.Now()
	_, err := svc.Create(context.Background(), CreatePromoRequest{
		Code:          "BIG",
		DiscountType:  "percent",
		DiscountValue: 150,
		ValidFrom:     now,
		ValidUntil:    now.Add(time.Hour),
		UsageLimit:    10,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateGeneratesCode(t *testing.T) {
	svc := setupTestService(t)

	now := time.Now()
	p, err := svc.Create(context.Background(), CreatePromoRequest{
		DiscountType:  "fixed",
		DiscountValue: 100,
		ValidFrom:     now,
		ValidUntil:    now.Add(time.Hour),
		UsageLimit:    10,
	})
	require.NoError(t, err)
	assert.Len(t, p.Code, 8)
}

func TestCreateDuplicateCode(t *testing.T) {
	svc := setupTestService(t)

	now := time.Now()
	req := CreatePromoRequest{
		Code:          "TWICE",
		DiscountType:  "fixed",
		DiscountValue: 100,
		ValidFrom:     now,
		ValidUntil:    now.Add(time.Hour),
		UsageLimit:    10,
	}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrCodeTaken)
}
