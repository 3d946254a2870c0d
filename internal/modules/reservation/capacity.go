package reservation

import (
	"context"
	"errors"

	"seatrips/internal/domain"
	"seatrips/internal/repository"

	"gorm.io/gorm"
)

// checkCapacity validates a prospective reservation against the slot limits.
// Weight is enforced the same way as people count, but only on slots that
// track it (MaxWeight > 0).
func checkCapacity(slot *domain.Slot, people int, weight float64, addPeople int, addWeight float64) error {
	if people+addPeople > slot.MaxPeople {
		return ErrCapacityExceeded
	}
	if slot.MaxWeight > 0 && weight+addWeight > slot.MaxWeight {
		return ErrCapacityExceeded
	}
	return nil
}

// Occupancy is the stand-alone read of a slot's consumed capacity. It runs
// outside any lock and only observes committed state, so it may lag a
// concurrent reservation by a moment.
func (s *Service) Occupancy(ctx context.Context, slotID int64) (people int, weight float64, err error) {
	var slot domain.Slot
	if err := s.db.WithContext(ctx).First(&slot, slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrSlotNotFound
		}
		return 0, 0, err
	}
	return repository.SlotOccupancy(s.db.WithContext(ctx), slotID)
}
