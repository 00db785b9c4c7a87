package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"booking_id"`

	ShopID uuid.UUID `gorm:"type:uuid;index:idx_bookings_shop_date;not null" json:"shop_id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	Date string `gorm:"size:10;index:idx_bookings_shop_date;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Status     string  `gorm:"size:20;default:'booked'" json:"status"`
	TotalPrice float64 `json:"total_price"`

	Services []BookingServiceLink `gorm:"foreignKey:BookingID" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BookingServiceLink resolves the many-to-many between a booking and the
// shop's service catalog.
type BookingServiceLink struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null" json:"service_id"`

	Service ShopService `gorm:"foreignKey:ServiceID" json:"service"`
}
