package reservation

import (
	"context"
	"testing"

	"seatrips/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateStatusNoFieldsIsNoOp(t *testing.T) {
	svc, db := setupTestService(t)
	slot := createSlot(t, db, 5, 0)

	b, err := svc.Reserve(context.Background(), ReserveRequest{SlotID: slot.ID, HolderID: 1, Price: 100})
	require.NoError(t, err)

	ok, err := svc.UpdateStatus(context.Background(), b.ID, nil, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentNotPaid, got.Payment)
	assert.Equal(t, domain.ClientNotArrived, got.Client)
}

func TestUpdateStatusAxesAreIndependent(t *testing.T) {
	svc, db := setupTestService(t)
	slot := createSlot(t, db, 5, 0)

	b, err := svc.Reserve(context.Background(), ReserveRequest{SlotID: slot.ID, HolderID: 1, Price: 100})
	require.NoError(t, err)

	ok, err := svc.UpdateStatus(context.Background(), b.ID, nil, strPtr(string(domain.PaymentPaid)))
	require.NoError(t, err)
	require.True(t, ok)

	got, err := svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, got.Payment)
	assert.Equal(t, domain.ClientNotArrived, got.Client)
	assert.Equal(t, domain.BookingActive, got.Status)

	ok, err = svc.UpdateStatus(context.Background(), b.ID, strPtr(string(domain.ClientArrived)), nil)
	require.NoError(t, err)
	require.True(t, ok)

	got, err = svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, got.Payment)
	assert.Equal(t, domain.ClientArrived, got.Client)

	// arrival corrections are allowed
	ok, err = svc.UpdateStatus(context.Background(), b.ID, strPtr(string(domain.ClientNotArrived)), nil)
	require.NoError(t, err)
	require.True(t, ok)

	got, err = svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ClientNotArrived, got.Client)
	assert.Equal(t, domain.PaymentPaid, got.Payment)
}

func TestUpdateStatusUnknownValue(t *testing.T) {
	svc, db := setupTestService(t)
	slot := createSlot(t, db, 5, 0)

	b, err := svc.Reserve(context.Background(), ReserveRequest{SlotID: slot.ID, HolderID: 1, Price: 100})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), b.ID, strPtr("teleported"), nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatusBookingNotFound(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.UpdateStatus(context.Background(), 99999, strPtr(string(domain.ClientArrived)), nil)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelledBookingIsTerminal(t *testing.T) {
	svc, db := setupTestService(t)
	slot := createSlot(t, db, 5, 0)

	b, err := svc.Reserve(context.Background(), ReserveRequest{SlotID: slot.ID, HolderID: 1, Price: 100})
	require.NoError(t, err)

	ok, err := svc.Cancel(context.Background(), b.ID)
	require.NoError(t, err)
	require.True(t, ok)

	// second cancel
	_, err = svc.Cancel(context.Background(), b.ID)
	assert.ErrorIs(t, err, ErrBookingCancelled)

	// no axis may move after cancellation
	_, err = svc.UpdateStatus(context.Background(), b.ID, nil, strPtr(string(domain.PaymentPaid)))
	assert.ErrorIs(t, err, ErrBookingCancelled)

	got, err := svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, got.Status)
	assert.Equal(t, domain.PaymentNotPaid, got.Payment)
	assert.NotNil(t, got.CancelledAt)
}

func TestCancelBookingNotFound(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Cancel(context.Background(), 424242)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
