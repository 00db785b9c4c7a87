package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/shearbook/barbershop-api/internal/audit"
	"github.com/shearbook/barbershop-api/internal/cache"
	domain "github.com/shearbook/barbershop-api/internal/domain/booking"
	"github.com/shearbook/barbershop-api/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	slots *cache.SlotsCache
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	slots *cache.SlotsCache,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		slots: slots,
		audit: audit,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	bookingID uuid.UUID,
	targetRaw string,
) (*models.Booking, error) {

	target, err := domain.ParseTarget(targetRaw)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	b.Status = string(target)

	// Cancelling gives the slot back; completing keeps it consumed.
	releaseSlot := target == domain.StatusCancelled

	if err := uc.repo.SaveStatusChange(ctx, b, releaseSlot); err != nil {
		return nil, err
	}

	if releaseSlot {
		uc.slots.Invalidate(ctx, b.ShopID, b.Date)
	}

	action := audit.ActionBookingCompleted
	if target == domain.StatusCancelled {
		action = audit.ActionBookingCancelled
	}
	uc.audit.Dispatch(audit.Event{
		ShopID:   b.ShopID,
		Action:   action,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
