package orderrepo

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

func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
        INSERT INTO orders (user_id, quantity, country, device, cost, status, progress)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, order.UserID, order.Quantity, order.Country, order.Device,
		order.Cost, order.Status, order.Progress).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT id, user_id, quantity, country, device, cost, status, progress, created_at, updated_at
        FROM orders
        WHERE id = $1
    `
	var order domain.Order
	err := r.db.QueryRow(ctx, query, id).
		Scan(&order.ID, &order.UserID, &order.Quantity, &order.Country, &order.Device,
			&order.Cost, &order.Status, &order.Progress, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

// Update writes only the fields that are non-nil; a nil status or progress
// keeps the stored value.
func (r *Repository) Update(ctx context.Context, id int, status *string, progress *int) (*domain.Order, error) {
	query := `
        UPDATE orders
        SET status = COALESCE($1, status), progress = COALESCE($2, progress), updated_at = now()
        WHERE id = $3
        RETURNING id, user_id, quantity, country, device, cost, status, progress, created_at, updated_at
    `
	var order domain.Order
	err := r.db.QueryRow(ctx, query, status, progress, id).
		Scan(&order.ID, &order.UserID, &order.Quantity, &order.Country, &order.Device,
			&order.Cost, &order.Status, &order.Progress, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
        SELECT id, user_id, quantity, country, device, cost, status, progress, created_at, updated_at
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.UserID, &order.Quantity, &order.Country, &order.Device,
			&order.Cost, &order.Status, &order.Progress, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `
        SELECT o.id, o.user_id, o.quantity, o.country, o.device, o.cost, o.status, o.progress, o.created_at, o.updated_at, u.email
        FROM orders o
        JOIN users u ON u.id = o.user_id
        ORDER BY o.created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.UserID, &order.Quantity, &order.Country, &order.Device,
			&order.Cost, &order.Status, &order.Progress, &order.CreatedAt, &order.UpdatedAt, &order.UserEmail)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
