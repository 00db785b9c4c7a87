package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shearbook/barbershop-api/internal/clock"
	domain "github.com/shearbook/barbershop-api/internal/domain/booking"
	"github.com/shearbook/barbershop-api/internal/httperr"
	"github.com/shearbook/barbershop-api/internal/models"
)

func TestListBookingsMapsServices(t *testing.T) {
	repo := newFakeRepo()
	shopID := repo.addShop(2, 30, "09:00", "18:00")

	userID := uuid.New()
	repo.listed = []models.Booking{
		{
			ID:     uuid.New(),
			ShopID: shopID,
			UserID: userID,
			Date:   "2025-03-10",
			Time:   "10:00",
			Status: string(domain.StatusBooked),
			Services: []models.BookingServiceLink{
				{Service: models.ShopService{Name: "Haircut"}},
				{Service: models.ShopService{Name: "Beard Trim"}},
			},
			TotalPrice: 40,
		},
		{
			ID:     uuid.New(),
			ShopID: shopID,
			UserID: userID,
			Date:   "2025-03-10",
			Time:   "11:00",
			Status: string(domain.StatusCancelled),
		},
	}

	uc := NewListBookings(repo, clock.System())

	out, err := uc.Execute(context.Background(), shopID, "2025-03-10", "booked")
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, userID.String(), out[0].UserID)
	assert.Equal(t, "10:00", out[0].Time)
	assert.Equal(t, []string{"Haircut", "Beard Trim"}, out[0].Services)
	assert.Equal(t, 40.0, out[0].TotalPrice)
}

func TestListBookingsDateDefaultsToToday(t *testing.T) {
	repo := newFakeRepo()
	shopID := repo.addShop(2, 30, "09:00", "18:00")

	fixed := clock.Fixed(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	uc := NewListBookings(repo, fixed)

	out, err := uc.Execute(context.Background(), shopID, "", "booked")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "2025-03-10", repo.lastDate)
}

func TestListBookingsRejectsInvalidStatus(t *testing.T) {
	repo := newFakeRepo()
	shopID := repo.addShop(2, 30, "09:00", "18:00")

	uc := NewListBookings(repo, clock.System())

	_, err := uc.Execute(context.Background(), shopID, "2025-03-10", "pending")
	require.Error(t, err)

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, httperr.CodeInvalidStatus, code)
}
