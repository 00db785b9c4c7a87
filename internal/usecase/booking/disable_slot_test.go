package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shearbook/barbershop-api/internal/clock"
	"github.com/shearbook/barbershop-api/internal/httperr"
)

func TestDisableSlotBlocksBookings(t *testing.T) {
	repo := newFakeRepo()
	shopID := repo.addShop(3, 30, "09:00", "18:00")
	serviceID := repo.addService()

	uc := NewDisableSlot(repo, testCache(), testDispatcher(), clock.System())

	require.NoError(t, uc.Execute(context.Background(), shopID, "10:00", "2025-03-10"))

	count, _ := repo.OccupancyCount(context.Background(), shopID, "2025-03-10", "10:00")
	assert.Equal(t, 3, count)

	createUC := NewCreateBooking(repo, testCache(), testDispatcher())
	result, err := createUC.Execute(context.Background(), CreateBookingInput{
		ShopID:     shopID,
		UserID:     uuid.New(),
		Date:       "2025-03-10",
		Time:       "10:00",
		ServiceIDs: []uuid.UUID{serviceID},
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoCapacity, result.Outcome)
}

func TestDisableSlotIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	shopID := repo.addShop(2, 30, "09:00", "18:00")

	uc := NewDisableSlot(repo, testCache(), testDispatcher(), clock.System())

	require.NoError(t, uc.Execute(context.Background(), shopID, "10:00", "2025-03-10"))
	require.NoError(t, uc.Execute(context.Background(), shopID, "10:00", "2025-03-10"))

	count, _ := repo.OccupancyCount(context.Background(), shopID, "2025-03-10", "10:00")
	assert.Equal(t, 2, count)
}

func TestDisableSlotDateDefaultsToToday(t *testing.T) {
	repo := newFakeRepo()
	shopID := repo.addShop(2, 30, "09:00", "18:00")

	fixed := clock.Fixed(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	uc := NewDisableSlot(repo, testCache(), testDispatcher(), fixed)

	require.NoError(t, uc.Execute(context.Background(), shopID, "10:00", ""))

	count, _ := repo.OccupancyCount(context.Background(), shopID, "2025-03-10", "10:00")
	assert.Equal(t, 2, count)
}

func TestDisableSlotUnknownShop(t *testing.T) {
	repo := newFakeRepo()
	uc := NewDisableSlot(repo, testCache(), testDispatcher(), clock.System())

	err := uc.Execute(context.Background(), uuid.New(), "10:00", "2025-03-10")
	require.Error(t, err)

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, httperr.CodeShopNotFound, code)
}
