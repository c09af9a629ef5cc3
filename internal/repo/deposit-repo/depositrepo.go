package depositrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/traffpanel/traffpanel/internal/domain"
	"github.com/traffpanel/traffpanel/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error) {
	query := `
        INSERT INTO deposits (user_id, amount, method, screenshot, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, deposit.UserID, deposit.Amount, deposit.Method, deposit.Screenshot, deposit.Status).
		Scan(&deposit.ID, &deposit.CreatedAt, &deposit.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

// FindByIDForUpdate locks the deposit row for the duration of the surrounding
// transaction so a concurrent review of the same deposit waits.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Deposit, error) {
	query := `
        SELECT id, user_id, amount, method, screenshot, status, created_at, updated_at
        FROM deposits
        WHERE id = $1
        FOR UPDATE
    `
	var deposit domain.Deposit
	err := r.db.QueryRow(ctx, query, id).
		Scan(&deposit.ID, &deposit.UserID, &deposit.Amount, &deposit.Method, &deposit.Screenshot,
			&deposit.Status, &deposit.CreatedAt, &deposit.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find deposit", zap.Error(err))
		return nil, err
	}
	return &deposit, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) (*domain.Deposit, error) {
	query := `
        UPDATE deposits
        SET status = $1, updated_at = now()
        WHERE id = $2
        RETURNING id, user_id, amount, method, screenshot, status, created_at, updated_at
    `
	var deposit domain.Deposit
	err := r.db.QueryRow(ctx, query, status, id).
		Scan(&deposit.ID, &deposit.UserID, &deposit.Amount, &deposit.Method, &deposit.Screenshot,
			&deposit.Status, &deposit.CreatedAt, &deposit.UpdatedAt)
	if err != nil {
		zap.L().Error("can't update deposit status", zap.Error(err))
		return nil, err
	}
	return &deposit, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Deposit, error) {
	query := `
        SELECT id, user_id, amount, method, screenshot, status, created_at, updated_at
        FROM deposits
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		var deposit domain.Deposit
		err := rows.Scan(&deposit.ID, &deposit.UserID, &deposit.Amount, &deposit.Method, &deposit.Screenshot,
			&deposit.Status, &deposit.CreatedAt, &deposit.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, deposit)
	}
	return deposits, rows.Err()
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Deposit, error) {
	query := `
        SELECT d.id, d.user_id, d.amount, d.method, d.screenshot, d.status, d.created_at, d.updated_at, u.email
        FROM deposits d
        JOIN users u ON u.id = d.user_id
        ORDER BY d.created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		var deposit domain.Deposit
		err := rows.Scan(&deposit.ID, &deposit.UserID, &deposit.Amount, &deposit.Method, &deposit.Screenshot,
			&deposit.Status, &deposit.CreatedAt, &deposit.UpdatedAt, &deposit.UserEmail)
		if err != nil {
			zap.L().Error("can't scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, deposit)
	}
	return deposits, rows.Err()
}
