package dto

import "time"

type UserResponseDTO struct {
	ID           int       `json:"id" example:"1"`
	Email        string    `json:"email" example:"test@test.com"`
	Balance      float64   `json:"balance" example:"100"`
	Role         string    `json:"role" example:"user"`
	CreatedAt    time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
	DepositCount int       `json:"deposit_count" example:"2"`
	OrderCount   int       `json:"order_count" example:"3"`
}

type UpdateUserRequestDTO struct {
	Email    *string  `json:"email,omitempty" example:"new@test.com"`
	Password *string  `json:"password,omitempty"`
	Balance  *float64 `json:"balance,omitempty" example:"150"`
	Role     *string  `json:"role,omitempty" example:"admin"`
}
