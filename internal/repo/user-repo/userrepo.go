package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/traffpanel/traffpanel/internal/domain"
	"github.com/traffpanel/traffpanel/internal/pg"
)

var ErrEmailExists = errors.New("email already exists")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, email, password_hash, balance, role, created_at
		FROM users
		WHERE email = $1
	`
	err := repo.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Balance, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, email, password_hash, balance, role, created_at
		FROM users
		WHERE id = $1
	`
	err := repo.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Balance, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, balance, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.Balance, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrEmailExists
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) ListWithStats(ctx context.Context) ([]domain.UserStats, error) {
	query := `
		SELECT u.id, u.email, u.balance, u.role, u.created_at,
		       (SELECT count(*) FROM deposits d WHERE d.user_id = u.id) AS deposit_count,
		       (SELECT count(*) FROM orders o WHERE o.user_id = u.id) AS order_count
		FROM users u
		ORDER BY u.created_at DESC
	`
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.UserStats
	for rows.Next() {
		var u domain.UserStats
		err := rows.Scan(&u.ID, &u.Email, &u.Balance, &u.Role, &u.CreatedAt, &u.DepositCount, &u.OrderCount)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (repo *Repository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		UPDATE users
		SET email = $1, password_hash = $2, balance = $3, role = $4
		WHERE id = $5
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.PasswordHash, user.Balance, user.Role, user.ID).
		Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrEmailExists
		}
		zap.L().Error("can't update user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Delete removes the user row; deposits and orders follow via ON DELETE CASCADE.
func (repo *Repository) Delete(ctx context.Context, id int) error {
	_, err := repo.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) CreditBalance(ctx context.Context, userID int, amount float64) (float64, error) {
	var balance float64
	query := `
		UPDATE users
		SET balance = balance + $2
		WHERE id = $1
		RETURNING balance
	`
	err := repo.db.QueryRow(ctx, query, userID, amount).Scan(&balance)
	if err != nil {
		zap.L().Error("can't credit balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// DebitBalance atomically checks and debits the balance. The row stays locked
// until the surrounding transaction commits. ok is false when the balance is
// smaller than amount; nothing is written in that case.
func (repo *Repository) DebitBalance(ctx context.Context, userID int, amount float64) (float64, bool, error) {
	var balance float64
	query := `
		UPDATE users
		SET balance = balance - $2
		WHERE id = $1 AND balance >= $2
		RETURNING balance
	`
	err := repo.db.QueryRow(ctx, query, userID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		zap.L().Error("can't debit balance", zap.Error(err))
		return 0, false, err
	}
	return balance, true, nil
}
