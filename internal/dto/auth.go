package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginRequestDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type PrincipalDTO struct {
	ID    int    `json:"id" example:"1"`
	Email string `json:"email" example:"test@test.com"`
	Role  string `json:"role" example:"user"`
}

type AuthResponseDTO struct {
	User PrincipalDTO `json:"user"`
}

type MeResponseDTO struct {
	ID      int     `json:"id" example:"1"`
	Email   string  `json:"email" example:"test@test.com"`
	Role    string  `json:"role" example:"user"`
	Balance float64 `json:"balance" example:"100"`
}
