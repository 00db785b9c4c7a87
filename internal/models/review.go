package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopReview struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"review_id"`
	ShopID uuid.UUID `gorm:"type:uuid;index;not null" json:"shop_id"`

	Body   string `gorm:"type:text;not null" json:"review_body"`
	Rating int    `gorm:"not null" json:"review_rating"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *ShopReview) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
