package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopProfile struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"shop_id"`

	Name    string `gorm:"size:255;not null" json:"shop_name"`
	AboutUs string `gorm:"type:text" json:"about_us"`
	Email   string `gorm:"size:255" json:"email"`
	Phone   string `gorm:"size:15" json:"phone_number"`
	Address string `gorm:"type:text" json:"address"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// colon-joined list, split on read
	Amenities string `gorm:"size:100" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *ShopProfile) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s *ShopProfile) AmenityList() []string {
	if s.Amenities == "" {
		return []string{}
	}
	return strings.Split(s.Amenities, ":")
}

type BarberDetails struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"barber_id"`
	ShopID uuid.UUID `gorm:"type:uuid;index;not null" json:"shop_id"`

	Name  string `gorm:"size:70;not null" json:"barber_name"`
	Phone string `gorm:"size:15;not null" json:"phone_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BarberDetails) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
