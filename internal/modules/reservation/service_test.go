package reservation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"seatrips/internal/database"
	"seatrips/internal/domain"
	"seatrips/internal/modules/promo"
	"seatrips/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:reservation_test_%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err, "failed to open sqlite db")
	require.NoError(t, database.Migrate(db), "failed to migrate db")

	svc := NewService(db, repository.NewBookingRepository(db), nil)
	return svc, db
}

func createSlot(t *testing.T, db *gorm.DB, maxPeople int, maxWeight float64) *domain.Slot {
	t.Helper()
	e := &domain.Excursion{Name: fmt.Sprintf("Excursion %s %d", t.Name(), time.Now().UnixNano()), BasePrice: 1000, Active: true}
	require.NoError(t, db.Create(e).Error)

	s := &domain.Slot{
		ExcursionID: e.ID,
		StartTime:   time.Now().Add(48 * time.Hour),
		MaxPeople:   maxPeople,
		MaxWeight:   maxWeight,
		Status:      domain.SlotScheduled,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

// reserveRetrying keeps retrying while the slot lock is contended so
// concurrency tests settle on a definite outcome per goroutine.
func reserveRetrying(svc *Service, req ReserveRequest) (*domain.Booking, error) {
	for i := 0; i < 20; i++ {
		b, err := svc.Reserve(context.Background(), req)
		if !errors.Is(err, ErrBusy) {
			return b, err
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, ErrBusy
}

func TestReserveWithChildScenario(t *testing.T) {
	svc, db := setupTestService(t)
	slot := createSlot(t, db, 10, 0)

	a, err := svc.Reserve(context.Background(), ReserveRequest{
		SlotID:   slot.ID,
		HolderID: 1,
		Price:    1000,
		Children: []ChildRequest{{AgeCategory: "8-12", Price: 500}},
	})
	require.NoError(t, err)
	require.Len(t, a.Children, 1)
	assert.Equal(t, 1500.0, a.TotalPrice)
	assert.Equal(t, domain.BookingActive, a.Status)
	assert.Equal(t, domain.PaymentNotPaid, a.Payment)
	assert.Equal(t, domain.ClientNotArrived, a.Client)

	people, _, err := svc.Occupancy(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, people)

	_, err = svc.Reserve(context.Background(), ReserveRequest{SlotID: slot.ID, HolderID: 2, Price: 1000})
	require.NoError(t, err)

	people, _, err = svc.Occupancy(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, people)
}

func TestReserveSlotNotFound(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Reserve(context.Background(), ReserveRequest{SlotID: 12345, HolderID: 1, Price: 100})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestReserveSlotClosed(t *testing.T) {
	svc, db := setupTestService(t)
	slot := createSlot(t, db, 5, 0)
	require.NoError(t, db.Model(&domain.Slot{}).Where("id = ?", slot.ID).Update("status", domain.SlotCancelled).Error)

	_, err := svc.Reserve(context.Background(), ReserveRequest{SlotID: slot.ID, HolderID: 1, Price: 100})
	assert.ErrorIs(t, err, ErrSlotClosed)
}

func TestReserveDuplicateHolder(t *testing.T) {
	svc, db := setupTestService(t)
	slot := createSlot(t, db, 5, 0)

	_, err := svc.Reserve(context.Background(), ReserveRequest{SlotID: slot.ID, HolderID: 7, Price: 100})
	require.NoError(t, err)

	_, err = svc.Reserve(context.Background(), ReserveRequest{SlotID: slot.ID, HolderID: 7, Price: 100})
	assert.ErrorIs(t, err, ErrDuplicateBooking)
}

func TestConcurrentReserveNeverExceedsCapacity(t *testing.T) {
	svc, db := setupTestService(t)
	const maxPeople = 3
	const attempts = 8
	slot := createSlot(t, db, maxPeople, 0)

	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := reserveRetrying(svc, ReserveRequest{
				SlotID:   slot.ID,
				HolderID: int64(100 + i),
				Price:    1000,
			})
			results[i] = err
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrCapacityExceeded)
		}
	}
	assert.Equal(t, maxPeople, succeeded)

	people, _, err := svc.Occupancy(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.Equal(t, maxPeople, people)
}

func TestConcurrentReserveSameHolder(t *testing.T) {
	svc, db := setupTestService(t)
	slot := createSlot(t, db, 5, 0)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := reserveRetrying(svc, ReserveRequest{SlotID: slot.ID, HolderID: 42, Price: 100})
			results[i] = err
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrDuplicateBooking)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestCancelFreesCapacity(t *testing.T) {
	svc, db := setupTestService(t)
	slot := createSlot(t, db, 2, 0)

	a, err := svc.Reserve(context.Background(), ReserveRequest{SlotID: slot.ID, HolderID: 1, Price: 100})
	require.NoError(t, err)
	_, err = svc.Reserve(context.Background(), ReserveRequest{SlotID: slot.ID, HolderID: 2, Price: 100})
	require.NoError(t, err)

	// full
	_, err = svc.Reserve(context.Background(), ReserveRequest{SlotID: slot.ID, HolderID: 3, Price: 100})
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	ok, err := svc.Cancel(context.Background(), a.ID)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = svc.Reserve(context.Background(), ReserveRequest{SlotID: slot.ID, HolderID: 3, Price: 100})
	assert.NoError(t, err)
}

func TestCancelledHolderCanRebook(t *testing.T) {
	svc, db := setupTestService(t)
	slot := createSlot(t, db, 2, 0)

	a, err := svc.Reserve(context.Background(), ReserveRequest{SlotID: slot.ID, HolderID: 9, Price: 100})
	require.NoError(t, err)

	ok, err := svc.Cancel(context.Background(), a.ID)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = svc.Reserve(context.Background(), ReserveRequest{SlotID: slot.ID, HolderID: 9, Price: 100})
	assert.NoError(t, err)
}

func TestWeightLimitEnforced(t *testing.T) {
	svc, db := setupTestService(t)
	slot := createSlot(t, db, 10, 200)

	_, err := svc.Reserve(context.Background(), ReserveRequest{
		SlotID:       slot.ID,
		HolderID:     1,
		Price:        100,
		HolderWeight: 90,
		Children:     []ChildRequest{{AgeCategory: "8-12", Price: 50, Weight: 40}},
	})
	require.NoError(t, err)

	// 130 used of 200; another 90 fits, 90+40 does not
	_, err = svc.Reserve(context.Background(), ReserveRequest{
		SlotID:       slot.ID,
		HolderID:     2,
		Price:        100,
		HolderWeight: 90,
		Children:     []ChildRequest{{AgeCategory: "4-7", Price: 50, Weight: 40}},
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	_, err = svc.Reserve(context.Background(), ReserveRequest{SlotID: slot.ID, HolderID: 2, Price: 100, HolderWeight: 70})
	assert.NoError(t, err)
}

func TestReserveWithPromo(t *testing.T) {
	svc, db := setupTestService(t)
	slot := createSlot(t, db, 5, 0)

	p := &domain.PromoCode{
		Code:          "SUNSET20",
		DiscountType:  domain.DiscountPercent,
		DiscountValue: 20,
		ValidFrom:     time.Now().Add(-time.Hour),
		ValidUntil:    time.Now().Add(time.Hour),
		UsageLimit:    5,
	}
	require.NoError(t, db.Create(p).Error)

	b, err := svc.Reserve(context.Background(), ReserveRequest{
		SlotID:    slot.ID,
		HolderID:  1,
		Price:     1000,
		Children:  []ChildRequest{{AgeCategory: "8-12", Price: 500}},
		PromoCode: "SUNSET20",
	})
	require.NoError(t, err)
	assert.Equal(t, 1200.0, b.TotalPrice)
	require.NotNil(t, b.PromoCodeID)
	assert.Equal(t, p.ID, *b.PromoCodeID)

	var stored domain.PromoCode
	require.NoError(t, db.First(&stored, p.ID).Error)
	assert.Equal(t, 1, stored.UsageCount)
}

func TestReserveWithExpiredPromo(t *testing.T) {
	svc, db := setupTestService(t)
	slot := createSlot(t, db, 5, 0)

	p := &domain.PromoCode{
		Code:          "OLDCODE",
		DiscountType:  domain.DiscountFixed,
		DiscountValue: 100,
		ValidFrom:     time.Now().Add(-48 * time.Hour),
		ValidUntil:    time.Now().Add(-24 * time.Hour),
		UsageLimit:    5,
	}
	require.NoError(t, db.Create(p).Error)

	_, err := svc.Reserve(context.Background(), ReserveRequest{SlotID: slot.ID, HolderID: 1, Price: 1000, PromoCode: "OLDCODE"})
	assert.ErrorIs(t, err, promo.ErrExpired)

	// rejection rolls the whole transaction back: no booking row exists
	people, _, err := svc.Occupancy(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, people)
}

func TestPromoConcurrentExhaustion(t *testing.T) {
	svc, db := setupTestService(t)
	slot := createSlot(t, db, 10, 0)

	p := &domain.PromoCode{
		Code:          "ONCE",
		DiscountType:  domain.DiscountFixed,
		DiscountValue: 200,
		ValidFrom:     time.Now().Add(-time.Hour),
		ValidUntil:    time.Now().Add(time.Hour),
		UsageLimit:    1,
	}
	require.NoError(t, db.Create(p).Error)

	var wg sync.WaitGroup
	results := make([]error, 2)
	bookings := make([]*domain.Booking, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b, err := reserveRetrying(svc, ReserveRequest{
				SlotID:    slot.ID,
				HolderID:  int64(300 + i),
				Price:     1000,
				PromoCode: "ONCE",
			})
			results[i] = err
			bookings[i] = b
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for i, err := range results {
		if err == nil {
			succeeded++
			assert.Equal(t, 800.0, bookings[i].TotalPrice)
		} else {
			assert.ErrorIs(t, err, promo.ErrExhausted)
		}
	}
	assert.Equal(t, 1, succeeded)

	var stored domain.PromoCode
	require.NoError(t, db.First(&stored, p.ID).Error)
	assert.Equal(t, 1, stored.UsageCount)
}
