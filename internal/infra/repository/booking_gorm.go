package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/shearbook/barbershop-api/internal/domain/booking"
	"github.com/shearbook/barbershop-api/internal/httperr"
	"github.com/shearbook/barbershop-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Shop / settings
// --------------------------------------------------

func (r *BookingGormRepository) GetShop(
	ctx context.Context,
	shopID uuid.UUID,
) (*models.ShopProfile, error) {

	var shop models.ShopProfile
	if err := r.db.WithContext(ctx).First(&shop, "id = ?", shopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeShopNotFound)
		}
		return nil, err
	}
	return &shop, nil
}

func (r *BookingGormRepository) GetSettings(
	ctx context.Context,
	shopID uuid.UUID,
) (*models.ShopSettings, error) {

	var settings models.ShopSettings
	if err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotConfigured)
		}
		return nil, err
	}
	return &settings, nil
}

// --------------------------------------------------
// Occupancy ledger
// --------------------------------------------------

func (r *BookingGormRepository) OccupancyForDate(
	ctx context.Context,
	shopID uuid.UUID,
	date string,
) (map[string]int, error) {

	var rows []models.SlotOccupancy
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND date = ?", shopID, date).
		Order("time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	occupancy := make(map[string]int, len(rows))
	for _, row := range rows {
		occupancy[row.Time] = row.Count
	}
	return occupancy, nil
}

func (r *BookingGormRepository) OccupancyCount(
	ctx context.Context,
	shopID uuid.UUID,
	date string,
	slotTime string,
) (int, error) {

	var row models.SlotOccupancy
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND date = ? AND time = ?", shopID, date, slotTime).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return row.Count, nil
}

func (r *BookingGormRepository) SetSlotFull(
	ctx context.Context,
	shopID uuid.UUID,
	date string,
	slotTime string,
	max int,
) error {

	occ := models.SlotOccupancy{
		ShopID: shopID,
		Date:   date,
		Time:   slotTime,
		Count:  max,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "shop_id"},
				{Name: "date"},
				{Name: "time"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{"count": max}),
		}).
		Create(&occ).Error
}

// --------------------------------------------------
// Booking ledger
// --------------------------------------------------

// CreateBooking serializes concurrent reservations on the occupancy row:
// the row is upserted first so it always exists, then read under FOR UPDATE.
// The locked count is the authoritative capacity check; the caller's
// pre-check only short-circuits obviously full slots.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
	serviceIDs []uuid.UUID,
	max int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		seed := models.SlotOccupancy{
			ShopID: b.ShopID,
			Date:   b.Date,
			Time:   b.Time,
			Count:  0,
		}
		if err := tx.
			Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "shop_id"},
					{Name: "date"},
					{Name: "time"},
				},
				DoNothing: true,
			}).
			Create(&seed).Error; err != nil {
			return err
		}

		var occ models.SlotOccupancy
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("shop_id = ? AND date = ? AND time = ?", b.ShopID, b.Date, b.Time).
			First(&occ).Error; err != nil {
			return err
		}

		if occ.Count+1 > max {
			return domain.ErrSlotFull
		}

		for _, serviceID := range serviceIDs {
			var svc models.ShopService
			if err := tx.
				Where("id = ? AND shop_id = ?", serviceID, b.ShopID).
				First(&svc).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return httperr.ErrBusiness(httperr.CodeServiceNotFound)
				}
				return err
			}
		}

		if err := tx.Create(b).Error; err != nil {
			return err
		}

		for _, serviceID := range serviceIDs {
			link := models.BookingServiceLink{
				BookingID: b.ID,
				ServiceID: serviceID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.SlotOccupancy{}).
			Where("id = ?", occ.ID).
			Update("count", gorm.Expr("count + 1")).Error
	})
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	bookingID uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Services.Service").
		First(&b, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) SaveStatusChange(
	ctx context.Context,
	b *models.Booking,
	releaseSlot bool,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Model(&models.Booking{}).
			Where("id = ?", b.ID).
			Update("status", b.Status).Error; err != nil {
			return err
		}

		if !releaseSlot {
			return nil
		}

		res := tx.Model(&models.SlotOccupancy{}).
			Where(
				"shop_id = ? AND date = ? AND time = ? AND count > 0",
				b.ShopID, b.Date, b.Time,
			).
			Update("count", gorm.Expr("count - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// counter already at zero: invariant violation, roll back
			return fmt.Errorf(
				"occupancy underflow for shop %s at %s %s",
				b.ShopID, b.Date, b.Time,
			)
		}
		return nil
	})
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	shopID uuid.UUID,
	date string,
	status domain.Status,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Services.Service").
		Where(
			"shop_id = ? AND date = ? AND status = ?",
			shopID, date, string(status),
		).
		Order("time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Earnings
// --------------------------------------------------

func (r *BookingGormRepository) SumEarnings(
	ctx context.Context,
	shopID uuid.UUID,
	startDate string,
	endDate string,
) (float64, error) {

	var total float64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where(
			"shop_id = ? AND date >= ? AND date <= ?",
			shopID, startDate, endDate,
		).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
