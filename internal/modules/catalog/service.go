package catalog

import (
	"context"
	"errors"
	"time"

	"seatrips/internal/domain"
	"seatrips/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	excursions ExcursionRepository
	slots      SlotRepository
	now        func() time.Time
}

func NewService(excursions ExcursionRepository, slots SlotRepository) *Service {
	return &Service{
		excursions: excursions,
		slots:      slots,
		now:        time.Now,
	}
}

func (s *Service) CreateExcursion(ctx context.Context, req CreateExcursionRequest) (*domain.Excursion, error) {
	e := &domain.Excursion{
		Name:        req.Name,
		Description: req.Description,
		Duration:    time.Duration(req.DurationMinutes) * time.Minute,
		BasePrice:   req.BasePrice,
		Active:      true,
	}

	if err := s.excursions.Create(ctx, e); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) ListExcursions(ctx context.Context, activeOnly bool) ([]domain.Excursion, error) {
	return s.excursions.List(ctx, activeOnly)
}

func (s *Service) GetExcursion(ctx context.Context, id int64) (*domain.Excursion, error) {
	e, err := s.excursions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// SetExcursionActive deactivates or reactivates an excursion. Excursions
// referenced by bookings are never deleted.
func (s *Service) SetExcursionActive(ctx context.Context, id int64, active bool) error {
	if err := s.excursions.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) CreateSlot(ctx context.Context, req CreateSlotRequest) (*domain.Slot, error) {
	if !req.StartTime.After(s.now()) {
		return nil, ErrValidation
	}

	e, err := s.excursions.GetByID(ctx, req.ExcursionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !e.Active {
		return nil, ErrExcursionInactive
	}

	slot := &domain.Slot{
		ExcursionID: req.ExcursionID,
		StartTime:   req.StartTime,
		MaxPeople:   req.MaxPeople,
		MaxWeight:   req.MaxWeight,
		CaptainID:   req.CaptainID,
		Status:      domain.SlotScheduled,
	}

	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *Service) ListSlots(ctx context.Context, excursionID int64) ([]domain.Slot, error) {
	return s.slots.ListByExcursion(ctx, excursionID)
}

func (s *Service) GetSlot(ctx context.Context, id int64) (*domain.Slot, error) {
	slot, err := s.slots.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return slot, nil
}

// UpdateSlotStatus moves a slot out of scheduled. Completed and cancelled are
// terminal; existing bookings keep their own lifecycle and are cancelled
// individually by staff.
func (s *Service) UpdateSlotStatus(ctx context.Context, id int64, status domain.SlotStatus) error {
	if status != domain.SlotCompleted && status != domain.SlotCancelled {
		return ErrValidation
	}

	slot, err := s.slots.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if slot.Status != domain.SlotScheduled {
		return ErrInvalidTransition
	}

	return s.slots.UpdateStatus(ctx, id, status)
}
