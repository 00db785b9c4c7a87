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

func TestEarningsExplicitRange(t *testing.T) {
	repo := newFakeRepo()
	shopID := repo.addShop(2, 30, "09:00", "18:00")
	repo.earnings = 80

	uc := NewGetEarnings(repo, clock.System())

	result, err := uc.Execute(context.Background(), shopID, "2025-03-01", "2025-03-31")
	require.NoError(t, err)

	assert.Equal(t, shopID, result.ShopID)
	assert.Equal(t, "2025-03-01", result.StartDate)
	assert.Equal(t, "2025-03-31", result.EndDate)
	assert.Equal(t, 80.0, result.TotalEarnings)

	assert.Equal(t, "2025-03-01", repo.lastStart)
	assert.Equal(t, "2025-03-31", repo.lastEnd)
}

func TestEarningsDefaultsToToday(t *testing.T) {
	repo := newFakeRepo()
	shopID := repo.addShop(2, 30, "09:00", "18:00")

	fixed := clock.Fixed(time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC))
	uc := NewGetEarnings(repo, fixed)

	result, err := uc.Execute(context.Background(), shopID, "", "")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", result.StartDate)
	assert.Equal(t, "2025-03-10", result.EndDate)

	// A single missing bound also collapses to today.
	result, err = uc.Execute(context.Background(), shopID, "2025-03-01", "")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", result.StartDate)
	assert.Equal(t, "2025-03-10", result.EndDate)
}

func TestEarningsRounding(t *testing.T) {
	repo := newFakeRepo()
	shopID := repo.addShop(2, 30, "09:00", "18:00")
	repo.earnings = 79.996

	uc := NewGetEarnings(repo, clock.System())

	result, err := uc.Execute(context.Background(), shopID, "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, 80.0, result.TotalEarnings)
}

func TestEarningsUnknownShop(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetEarnings(repo, clock.System())

	_, err := uc.Execute(context.Background(), uuid.New(), "", "")
	require.Error(t, err)

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, httperr.CodeShopNotFound, code)
}
