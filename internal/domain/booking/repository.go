package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/shearbook/barbershop-api/internal/httperr"
	"github.com/shearbook/barbershop-api/internal/models"
)

// ErrSlotFull signals the normal no-capacity outcome, not a system failure.
var ErrSlotFull = httperr.ErrBusiness("no_capacity")

type Repository interface {
	// -------- Shop / settings --------
	GetShop(
		ctx context.Context,
		shopID uuid.UUID,
	) (*models.ShopProfile, error)

	GetSettings(
		ctx context.Context,
		shopID uuid.UUID,
	) (*models.ShopSettings, error)

	// -------- Occupancy ledger --------
	OccupancyForDate(
		ctx context.Context,
		shopID uuid.UUID,
		date string,
	) (map[string]int, error)

	OccupancyCount(
		ctx context.Context,
		shopID uuid.UUID,
		date string,
		slotTime string,
	) (int, error)

	// SetSlotFull forces the occupancy counter to max, creating the row if
	// absent. Idempotent.
	SetSlotFull(
		ctx context.Context,
		shopID uuid.UUID,
		date string,
		slotTime string,
		max int,
	) error

	// -------- Booking ledger --------

	// CreateBooking runs the whole reservation in one transaction: lock the
	// occupancy row, re-check capacity against max, validate every service
	// belongs to the shop, insert the booking with its service links and
	// bump the counter. Returns ErrSlotFull when the locked re-check fails
	// and a service_not_found business error on an invalid service id; in
	// both cases nothing is persisted.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
		serviceIDs []uuid.UUID,
		max int,
	) error

	GetBooking(
		ctx context.Context,
		bookingID uuid.UUID,
	) (*models.Booking, error)

	// SaveStatusChange persists the booking's new status; when releaseSlot
	// is set the matching occupancy counter is decremented in the same
	// transaction, clamped at zero.
	SaveStatusChange(
		ctx context.Context,
		b *models.Booking,
		releaseSlot bool,
	) error

	ListBookings(
		ctx context.Context,
		shopID uuid.UUID,
		date string,
		status Status,
	) ([]models.Booking, error)

	// -------- Earnings --------
	SumEarnings(
		ctx context.Context,
		shopID uuid.UUID,
		startDate string,
		endDate string,
	) (float64, error)
}
