package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/shearbook/barbershop-api/internal/clock"
	domain "github.com/shearbook/barbershop-api/internal/domain/booking"
	"github.com/shearbook/barbershop-api/internal/dto"
	"github.com/shearbook/barbershop-api/internal/httperr"
)

type ListBookings struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewListBookings(repo domain.Repository, clk clock.Clock) *ListBookings {
	return &ListBookings{
		repo:  repo,
		clock: clk,
	}
}

// Execute returns a shop's bookings for one date, ordered by slot time.
// The status filter is mandatory; date defaults to today.
func (uc *ListBookings) Execute(
	ctx context.Context,
	shopID uuid.UUID,
	date string,
	statusRaw string,
) ([]dto.BookingListDTO, error) {

	status := domain.Status(statusRaw)
	if !domain.IsValid(status) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}

	if _, err := uc.repo.GetShop(ctx, shopID); err != nil {
		return nil, err
	}

	if date == "" {
		date = clock.Today(uc.clock)
	}

	bookings, err := uc.repo.ListBookings(ctx, shopID, date, status)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		services := make([]string, 0, len(b.Services))
		for _, link := range b.Services {
			services = append(services, link.Service.Name)
		}

		out = append(out, dto.BookingListDTO{
			BookingID:  b.ID.String(),
			UserID:     b.UserID.String(),
			Status:     b.Status,
			Time:       b.Time,
			CreatedAt:  b.CreatedAt,
			UpdatedAt:  b.UpdatedAt,
			Services:   services,
			TotalPrice: b.TotalPrice,
		})
	}

	return out, nil
}
