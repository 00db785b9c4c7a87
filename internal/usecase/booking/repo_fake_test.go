package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/shearbook/barbershop-api/internal/domain/booking"
	"github.com/shearbook/barbershop-api/internal/httperr"
	"github.com/shearbook/barbershop-api/internal/models"
)

// fakeRepo is an in-memory stand-in for the gorm repository. It enforces the
// same capacity and service-ownership rules so the use cases can be exercised
// without a database.
type fakeRepo struct {
	shops    map[uuid.UUID]*models.ShopProfile
	settings map[uuid.UUID]*models.ShopSettings
	services map[uuid.UUID]bool

	occupancy map[string]int
	bookings  map[uuid.UUID]*models.Booking
	listed    []models.Booking

	earnings  float64
	lastStart string
	lastEnd   string
	lastDate  string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shops:     make(map[uuid.UUID]*models.ShopProfile),
		settings:  make(map[uuid.UUID]*models.ShopSettings),
		services:  make(map[uuid.UUID]bool),
		occupancy: make(map[string]int),
		bookings:  make(map[uuid.UUID]*models.Booking),
	}
}

func (f *fakeRepo) addShop(max, period int, start, end string) uuid.UUID {
	shopID := uuid.New()
	f.shops[shopID] = &models.ShopProfile{ID: shopID}
	f.settings[shopID] = &models.ShopSettings{
		ShopID:             shopID,
		StartTime:          start,
		EndTime:            end,
		SlotPeriodMinutes:  period,
		MaxBookingsPerSlot: max,
	}
	return shopID
}

func (f *fakeRepo) addService() uuid.UUID {
	id := uuid.New()
	f.services[id] = true
	return id
}

func occKey(shopID uuid.UUID, date, slotTime string) string {
	return fmt.Sprintf("%s|%s|%s", shopID, date, slotTime)
}

func (f *fakeRepo) GetShop(_ context.Context, shopID uuid.UUID) (*models.ShopProfile, error) {
	shop, ok := f.shops[shopID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeShopNotFound)
	}
	return shop, nil
}

func (f *fakeRepo) GetSettings(_ context.Context, shopID uuid.UUID) (*models.ShopSettings, error) {
	settings, ok := f.settings[shopID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotConfigured)
	}
	return settings, nil
}

func (f *fakeRepo) OccupancyForDate(_ context.Context, shopID uuid.UUID, date string) (map[string]int, error) {
	out := make(map[string]int)
	prefix := fmt.Sprintf("%s|%s|", shopID, date)
	for key, count := range f.occupancy {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			out[key[len(prefix):]] = count
		}
	}
	return out, nil
}

func (f *fakeRepo) OccupancyCount(_ context.Context, shopID uuid.UUID, date, slotTime string) (int, error) {
	return f.occupancy[occKey(shopID, date, slotTime)], nil
}

func (f *fakeRepo) SetSlotFull(_ context.Context, shopID uuid.UUID, date, slotTime string, max int) error {
	f.occupancy[occKey(shopID, date, slotTime)] = max
	return nil
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking, serviceIDs []uuid.UUID, max int) error {
	for _, id := range serviceIDs {
		if !f.services[id] {
			return httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
	}

	key := occKey(b.ShopID, b.Date, b.Time)
	if f.occupancy[key]+1 > max {
		return domain.ErrSlotFull
	}

	b.ID = uuid.New()
	stored := *b
	f.bookings[b.ID] = &stored
	f.occupancy[key]++
	return nil
}

func (f *fakeRepo) GetBooking(_ context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) SaveStatusChange(_ context.Context, b *models.Booking, releaseSlot bool) error {
	stored, ok := f.bookings[b.ID]
	if !ok {
		return httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}

	if releaseSlot {
		key := occKey(b.ShopID, b.Date, b.Time)
		if f.occupancy[key] == 0 {
			return errors.New("occupancy underflow")
		}
		f.occupancy[key]--
	}

	stored.Status = b.Status
	return nil
}

func (f *fakeRepo) ListBookings(_ context.Context, shopID uuid.UUID, date string, status domain.Status) ([]models.Booking, error) {
	f.lastDate = date

	out := make([]models.Booking, 0)
	for _, b := range f.listed {
		if b.ShopID == shopID && b.Date == date && b.Status == string(status) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) SumEarnings(_ context.Context, shopID uuid.UUID, startDate, endDate string) (float64, error) {
	f.lastStart = startDate
	f.lastEnd = endDate
	return f.earnings, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
