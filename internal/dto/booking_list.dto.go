package dto

import "time"

type BookingListDTO struct {
	BookingID  string    `json:"booking_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	Time       string    `json:"time"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Services   []string  `json:"services"`
	TotalPrice float64   `json:"total_price"`
}
