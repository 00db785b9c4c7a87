package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/shearbook/barbershop-api/internal/audit"
	"github.com/shearbook/barbershop-api/internal/cache"
	domain "github.com/shearbook/barbershop-api/internal/domain/booking"
	"github.com/shearbook/barbershop-api/internal/models"
)

// ======================================================
// INPUT / RESULT
// ======================================================

type CreateBookingInput struct {
	ShopID uuid.UUID
	UserID uuid.UUID

	Date string
	Time string

	ServiceIDs []uuid.UUID
	TotalPrice float64
}

const (
	OutcomeConfirmed  = "confirmed"
	OutcomeNoCapacity = "no_capacity"
)

type CreateBookingResult struct {
	Outcome   string
	BookingID *uuid.UUID
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	slots *cache.SlotsCache
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	slots *cache.SlotsCache,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		slots: slots,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*CreateBookingResult, error) {

	if _, err := uc.repo.GetShop(ctx, in.ShopID); err != nil {
		return nil, err
	}

	settings, err := uc.repo.GetSettings(ctx, in.ShopID)
	if err != nil {
		return nil, err
	}

	// Cheap pre-check outside the transaction. The locked re-check inside
	// CreateBooking is the one that counts under contention.
	current, err := uc.repo.OccupancyCount(ctx, in.ShopID, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if current+1 > settings.MaxBookingsPerSlot {
		return &CreateBookingResult{Outcome: OutcomeNoCapacity}, nil
	}

	b := &models.Booking{
		ShopID:     in.ShopID,
		UserID:     in.UserID,
		Date:       in.Date,
		Time:       in.Time,
		Status:     string(domain.InitialStatus()),
		TotalPrice: in.TotalPrice,
	}

	err = uc.repo.CreateBooking(ctx, b, in.ServiceIDs, settings.MaxBookingsPerSlot)
	if errors.Is(err, domain.ErrSlotFull) {
		return &CreateBookingResult{Outcome: OutcomeNoCapacity}, nil
	}
	if err != nil {
		return nil, err
	}

	uc.slots.Invalidate(ctx, in.ShopID, in.Date)

	uc.audit.Dispatch(audit.Event{
		ShopID:   in.ShopID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"date": in.Date, "time": in.Time},
	})

	return &CreateBookingResult{
		Outcome:   OutcomeConfirmed,
		BookingID: &b.ID,
	}, nil
}
