package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/shearbook/barbershop-api/internal/cache"
	domain "github.com/shearbook/barbershop-api/internal/domain/booking"
)

type GetAvailableSlots struct {
	repo  domain.Repository
	slots *cache.SlotsCache
}

func NewGetAvailableSlots(
	repo domain.Repository,
	slots *cache.SlotsCache,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:  repo,
		slots: slots,
	}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	shopID uuid.UUID,
	date string,
) ([]domain.Slot, error) {

	if _, err := uc.repo.GetShop(ctx, shopID); err != nil {
		return nil, err
	}

	settings, err := uc.repo.GetSettings(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if cached, ok := uc.slots.Get(ctx, shopID, date); ok {
		return cached, nil
	}

	occupancy, err := uc.repo.OccupancyForDate(ctx, shopID, date)
	if err != nil {
		return nil, err
	}

	slots, err := domain.GenerateSlots(settings, occupancy)
	if err != nil {
		return nil, err
	}

	uc.slots.Set(ctx, shopID, date, slots)

	return slots, nil
}
