package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shearbook/barbershop-api/internal/audit"
	"github.com/shearbook/barbershop-api/internal/cache"
	"github.com/shearbook/barbershop-api/internal/httperr"
)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zap.NewNop())
}

func testCache() *cache.SlotsCache {
	return cache.NewSlotsCache(nil)
}

func TestCreateBookingFillsSlotThenRejects(t *testing.T) {
	repo := newFakeRepo()
	shopID := repo.addShop(2, 30, "09:00", "18:00")
	serviceID := repo.addService()

	uc := NewCreateBooking(repo, testCache(), testDispatcher())

	in := CreateBookingInput{
		ShopID:     shopID,
		UserID:     uuid.New(),
		Date:       "2025-03-10",
		Time:       "10:00",
		ServiceIDs: []uuid.UUID{serviceID},
		TotalPrice: 25,
	}

	for i := 0; i < 2; i++ {
		result, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, OutcomeConfirmed, result.Outcome)
		require.NotNil(t, result.BookingID)
	}

	// The slot is at capacity; the third attempt is a normal rejection,
	// not an error.
	result, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoCapacity, result.Outcome)
	assert.Nil(t, result.BookingID)

	assert.Len(t, repo.bookings, 2)
	count, _ := repo.OccupancyCount(context.Background(), shopID, in.Date, in.Time)
	assert.Equal(t, 2, count)
}

func TestCreateBookingSlotsAreIndependent(t *testing.T) {
	repo := newFakeRepo()
	shopID := repo.addShop(1, 30, "09:00", "18:00")
	serviceID := repo.addService()

	uc := NewCreateBooking(repo, testCache(), testDispatcher())

	first := CreateBookingInput{
		ShopID:     shopID,
		UserID:     uuid.New(),
		Date:       "2025-03-10",
		Time:       "10:00",
		ServiceIDs: []uuid.UUID{serviceID},
	}
	result, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, OutcomeConfirmed, result.Outcome)

	other := first
	other.Time = "10:30"
	result, err = uc.Execute(context.Background(), other)
	require.NoError(t, err)
	assert.Equal(t, OutcomeConfirmed, result.Outcome)
}

func TestCreateBookingUnknownService(t *testing.T) {
	repo := newFakeRepo()
	shopID := repo.addShop(2, 30, "09:00", "18:00")

	uc := NewCreateBooking(repo, testCache(), testDispatcher())

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ShopID:     shopID,
		UserID:     uuid.New(),
		Date:       "2025-03-10",
		Time:       "10:00",
		ServiceIDs: []uuid.UUID{uuid.New()},
	})
	require.Error(t, err)

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, httperr.CodeServiceNotFound, code)

	// Nothing persisted on rejection.
	assert.Empty(t, repo.bookings)
	count, _ := repo.OccupancyCount(context.Background(), shopID, "2025-03-10", "10:00")
	assert.Zero(t, count)
}

func TestCreateBookingUnknownShop(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, testCache(), testDispatcher())

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ShopID: uuid.New(),
		UserID: uuid.New(),
		Date:   "2025-03-10",
		Time:   "10:00",
	})
	require.Error(t, err)

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, httperr.CodeShopNotFound, code)
}

func TestCreateBookingShopWithoutSettings(t *testing.T) {
	repo := newFakeRepo()
	shopID := uuid.New()
	repo.shops[shopID] = nil

	uc := NewCreateBooking(repo, testCache(), testDispatcher())

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ShopID: shopID,
		UserID: uuid.New(),
		Date:   "2025-03-10",
		Time:   "10:00",
	})
	require.Error(t, err)

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, httperr.CodeNotConfigured, code)
}
