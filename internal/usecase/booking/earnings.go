package booking

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/shearbook/barbershop-api/internal/clock"
	domain "github.com/shearbook/barbershop-api/internal/domain/booking"
)

type EarningsResult struct {
	ShopID        uuid.UUID `json:"shop_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TotalEarnings float64   `json:"total_earnings"`
}

type GetEarnings struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewGetEarnings(repo domain.Repository, clk clock.Clock) *GetEarnings {
	return &GetEarnings{
		repo:  repo,
		clock: clk,
	}
}

// Execute sums booking totals over the inclusive date range. Both bounds
// default to today when either is missing. The sum is status-blind.
func (uc *GetEarnings) Execute(
	ctx context.Context,
	shopID uuid.UUID,
	startDate string,
	endDate string,
) (*EarningsResult, error) {

	if _, err := uc.repo.GetShop(ctx, shopID); err != nil {
		return nil, err
	}

	if startDate == "" || endDate == "" {
		today := clock.Today(uc.clock)
		startDate = today
		endDate = today
	}

	total, err := uc.repo.SumEarnings(ctx, shopID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return &EarningsResult{
		ShopID:        shopID,
		StartDate:     startDate,
		EndDate:       endDate,
		TotalEarnings: math.Round(total*100) / 100,
	}, nil
}
