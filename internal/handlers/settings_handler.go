package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/shearbook/barbershop-api/internal/domain/booking"
	"github.com/shearbook/barbershop-api/internal/httperr"
	"github.com/shearbook/barbershop-api/internal/httpresp"
	"github.com/shearbook/barbershop-api/internal/models"
)

type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSettingsRequest struct {
	BookingEnabled       *bool  `json:"booking_enable" binding:"required"`
	ConfirmationRequired *bool  `json:"confirmation_required" binding:"required"`
	DisableWeekend       *bool  `json:"disable_weekend" binding:"required"`
	AvailableMonths      *int   `json:"available_booking_months" binding:"required"`
	MaxBookingsPerDay    *int   `json:"max_booking_per_day"`
	StartTime            string `json:"start_time" binding:"required"`
	EndTime              string `json:"end_time" binding:"required"`
	SlotPeriodMinutes    *int   `json:"period_of_each_booking" binding:"required"`
	MaxBookingsPerSlot   *int   `json:"max_booking_per_time" binding:"required"`
}

type UpdateSettingsRequest struct {
	BookingEnabled       *bool   `json:"booking_enable"`
	ConfirmationRequired *bool   `json:"confirmation_required"`
	DisableWeekend       *bool   `json:"disable_weekend"`
	AvailableMonths      *int    `json:"available_booking_months"`
	MaxBookingsPerDay    *int    `json:"max_booking_per_day"`
	StartTime            *string `json:"start_time"`
	EndTime              *string `json:"end_time"`
	SlotPeriodMinutes    *int    `json:"period_of_each_booking"`
	MaxBookingsPerSlot   *int    `json:"max_booking_per_time"`
}

func validateScheduleWindow(start, end string, period, maxPerSlot int) (string, bool) {
	if !domain.ValidSlotTime(start) || !domain.ValidSlotTime(end) {
		return "start_time and end_time must be HH:MM.", false
	}
	if start >= end {
		return "start_time must be before end_time.", false
	}
	if !models.IsValidSlotPeriod(period) {
		return "period_of_each_booking is not an accepted slot period.", false
	}
	if maxPerSlot < 1 {
		return "max_booking_per_time must be positive.", false
	}
	return "", true
}

// ======================================================
// CREATE
// ======================================================

func (h *SettingsHandler) Create(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}

	var shop models.ShopProfile
	if err := h.db.First(&shop, "id = ?", shopID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeShopNotFound, "Shop profile not found.")
		return
	}

	var req CreateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "All settings fields are required.")
		return
	}

	if msg, ok := validateScheduleWindow(
		req.StartTime, req.EndTime, *req.SlotPeriodMinutes, *req.MaxBookingsPerSlot,
	); !ok {
		httperr.BadRequest(c, "invalid_settings", msg)
		return
	}

	var count int64
	h.db.Model(&models.ShopSettings{}).Where("shop_id = ?", shopID).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "settings_exist", "Settings already exist for this shop.")
		return
	}

	settings := models.ShopSettings{
		ShopID:                 shopID,
		BookingEnabled:         *req.BookingEnabled,
		ConfirmationRequired:   *req.ConfirmationRequired,
		DisableWeekend:         *req.DisableWeekend,
		AvailableBookingMonths: *req.AvailableMonths,
		MaxBookingsPerDay:      req.MaxBookingsPerDay,
		StartTime:              req.StartTime,
		EndTime:                req.EndTime,
		SlotPeriodMinutes:      *req.SlotPeriodMinutes,
		MaxBookingsPerSlot:     *req.MaxBookingsPerSlot,
	}

	if err := h.db.Create(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_create_settings", "Could not create shop settings.")
		return
	}

	httpresp.Created(c, settings)
}

// ======================================================
// UPDATE
// ======================================================

func (h *SettingsHandler) Update(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}

	var settings models.ShopSettings
	if err := h.db.Where("shop_id = ?", shopID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotConfigured, "Settings do not exist for this shop.")
			return
		}
		httperr.Internal(c, "failed_to_get_settings", "Could not load shop settings.")
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid settings payload.")
		return
	}

	if req.BookingEnabled != nil {
		settings.BookingEnabled = *req.BookingEnabled
	}
	if req.ConfirmationRequired != nil {
		settings.ConfirmationRequired = *req.ConfirmationRequired
	}
	if req.DisableWeekend != nil {
		settings.DisableWeekend = *req.DisableWeekend
	}
	if req.AvailableMonths != nil {
		settings.AvailableBookingMonths = *req.AvailableMonths
	}
	if req.MaxBookingsPerDay != nil {
		settings.MaxBookingsPerDay = req.MaxBookingsPerDay
	}
	if req.StartTime != nil {
		settings.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		settings.EndTime = *req.EndTime
	}
	if req.SlotPeriodMinutes != nil {
		settings.SlotPeriodMinutes = *req.SlotPeriodMinutes
	}
	if req.MaxBookingsPerSlot != nil {
		settings.MaxBookingsPerSlot = *req.MaxBookingsPerSlot
	}

	if msg, ok := validateScheduleWindow(
		settings.StartTime, settings.EndTime,
		settings.SlotPeriodMinutes, settings.MaxBookingsPerSlot,
	); !ok {
		httperr.BadRequest(c, "invalid_settings", msg)
		return
	}

	if err := h.db.Save(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_update_settings", "Could not update shop settings.")
		return
	}

	httpresp.OK(c, settings)
}
