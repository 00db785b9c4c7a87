package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/shearbook/barbershop-api/internal/audit"
	"github.com/shearbook/barbershop-api/internal/cache"
	"github.com/shearbook/barbershop-api/internal/clock"
	domain "github.com/shearbook/barbershop-api/internal/domain/booking"
)

type DisableSlot struct {
	repo  domain.Repository
	slots *cache.SlotsCache
	audit *audit.Dispatcher
	clock clock.Clock
}

func NewDisableSlot(
	repo domain.Repository,
	slots *cache.SlotsCache,
	audit *audit.Dispatcher,
	clk clock.Clock,
) *DisableSlot {
	return &DisableSlot{
		repo:  repo,
		slots: slots,
		audit: audit,
		clock: clk,
	}
}

// Execute blocks a slot by forcing its occupancy to the shop's per-slot
// maximum. Safe to repeat; date defaults to today.
func (uc *DisableSlot) Execute(
	ctx context.Context,
	shopID uuid.UUID,
	slotTime string,
	date string,
) error {

	if _, err := uc.repo.GetShop(ctx, shopID); err != nil {
		return err
	}

	settings, err := uc.repo.GetSettings(ctx, shopID)
	if err != nil {
		return err
	}

	if date == "" {
		date = clock.Today(uc.clock)
	}

	if err := uc.repo.SetSlotFull(
		ctx, shopID, date, slotTime, settings.MaxBookingsPerSlot,
	); err != nil {
		return err
	}

	uc.slots.Invalidate(ctx, shopID, date)

	uc.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		Action:   audit.ActionSlotDisabled,
		Entity:   "slot",
		Metadata: map[string]any{"date": date, "time": slotTime},
	})

	return nil
}
