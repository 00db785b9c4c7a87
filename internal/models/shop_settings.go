package models

import (
	"time"

	"github.com/google/uuid"
)

// SlotPeriods lists the accepted slot granularities, in minutes.
var SlotPeriods = []int{5, 10, 15, 20, 25, 30, 35, 40, 45, 60, 75, 90, 105, 120, 150, 180}

func IsValidSlotPeriod(minutes int) bool {
	for _, p := range SlotPeriods {
		if p == minutes {
			return true
		}
	}
	return false
}

// ShopSettings holds the booking policy for a shop. One row per shop.
type ShopSettings struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	ShopID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"shop_id"`

	BookingEnabled       bool `gorm:"default:true" json:"booking_enable"`
	ConfirmationRequired bool `gorm:"default:true" json:"confirmation_required"`

	DisableWeekend         bool `gorm:"default:true" json:"disable_weekend"`
	AvailableBookingMonths int  `gorm:"default:1" json:"available_booking_months"`
	MaxBookingsPerDay      *int `json:"max_booking_per_day"`

	StartTime          string `gorm:"size:5;not null" json:"start_time"`
	EndTime            string `gorm:"size:5;not null" json:"end_time"`
	SlotPeriodMinutes  int    `gorm:"default:30" json:"period_of_each_booking"`
	MaxBookingsPerSlot int    `gorm:"default:1" json:"max_booking_per_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
