package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Balance      float64   `db:"balance"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserStats is the administrative view of a user together with the number of
// deposits and orders they own.
type UserStats struct {
	User
	DepositCount int `db:"deposit_count"`
	OrderCount   int `db:"order_count"`
}

type Deposit struct {
	ID         int       `db:"id"`
	UserID     int       `db:"user_id"`
	Amount     float64   `db:"amount"`
	Method     string    `db:"method"`
	Screenshot string    `db:"screenshot"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`

	// UserEmail is populated only for admin listings.
	UserEmail string `db:"-"`
}

type Order struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Quantity  int       `db:"quantity"`
	Country   string    `db:"country"`
	Device    string    `db:"device"`
	Cost      float64   `db:"cost"`
	Status    string    `db:"status"`
	Progress  int       `db:"progress"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// UserEmail is populated only for admin listings.
	UserEmail string `db:"-"`
}
