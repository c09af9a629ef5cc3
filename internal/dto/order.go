package dto

import "time"

type CreateOrderRequestDTO struct {
	Quantity int     `json:"quantity" example:"1000"`
	Country  string  `json:"country" example:"US"`
	Device   string  `json:"device" example:"mobile"`
	Cost     float64 `json:"cost" example:"50"`
}

type OrderResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	Quantity  int       `json:"quantity" example:"1000"`
	Country   string    `json:"country" example:"US"`
	Device    string    `json:"device" example:"mobile"`
	Cost      float64   `json:"cost" example:"50"`
	Status    string    `json:"status" example:"pending"`
	Progress  int       `json:"progress" example:"0"`
	CreatedAt time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
	UserID    int       `json:"user_id,omitempty" example:"1"`
	UserEmail string    `json:"user_email,omitempty" example:"test@test.com"`
}

type UpdateOrderRequestDTO struct {
	Status   *string `json:"status,omitempty" example:"running"`
	Progress *int    `json:"progress,omitempty" example:"45"`
}
