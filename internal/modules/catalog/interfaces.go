package catalog

import (
	"context"

	"seatrips/internal/domain"
)

// ExcursionRepository — only the methods the catalog service uses
type ExcursionRepository interface {
	Create(ctx context.Context, e *domain.Excursion) error
	GetByID(ctx context.Context, id int64) (*domain.Excursion, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Excursion, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

type SlotRepository interface {
	Create(ctx context.Context, s *domain.Slot) error
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	ListByExcursion(ctx context.Context, excursionID int64) ([]domain.Slot, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SlotStatus) error
}
