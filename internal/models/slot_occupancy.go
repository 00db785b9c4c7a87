package models

import (
	"time"

	"github.com/google/uuid"
)

// SlotOccupancy counts confirmed bookings per (shop, date, time) slot.
// Rows are created lazily and never deleted.
type SlotOccupancy struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShopID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_slot_occupancy_key;not null" json:"shop_id"`
	Date   string    `gorm:"size:10;uniqueIndex:idx_slot_occupancy_key;not null" json:"date"`
	Time   string    `gorm:"size:5;uniqueIndex:idx_slot_occupancy_key;not null" json:"time"`

	Count int `gorm:"default:0;not null" json:"count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
