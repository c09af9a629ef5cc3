package dto

import "time"

type DepositResponseDTO struct {
	ID         int       `json:"id" example:"1"`
	Amount     float64   `json:"amount" example:"50"`
	Method     string    `json:"method" example:"UPI"`
	Screenshot string    `json:"screenshot" example:"1733745600000-proof.jpg"`
	Status     string    `json:"status" example:"pending"`
	CreatedAt  time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
	UserID     int       `json:"user_id,omitempty" example:"1"`
	UserEmail  string    `json:"user_email,omitempty" example:"test@test.com"`
}

type ReviewDepositRequestDTO struct {
	Status string `json:"status" example:"verified"`
}
