package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traffpanel/traffpanel/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestCreate(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)
	now := time.Now()

	query := regexp.QuoteMeta("INSERT INTO orders (user_id, quantity, country, device, cost, status, progress)")

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(1, 1000, "US", "mobile", 50.0, "pending", 0).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(5, now, now))

		order, err := repo.Create(context.Background(), &domain.Order{
			UserID:   1,
			Quantity: 1000,
			Country:  "US",
			Device:   "mobile",
			Cost:     50.0,
			Status:   "pending",
			Progress: 0,
		})
		assert.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, 5, order.ID)
	})

	t.Run("Insert Error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(1, 1000, "US", "mobile", 50.0, "pending", 0).
			WillReturnError(errors.New("constraint violation"))

		order, err := repo.Create(context.Background(), &domain.Order{
			UserID:   1,
			Quantity: 1000,
			Country:  "US",
			Device:   "mobile",
			Cost:     50.0,
			Status:   "pending",
		})
		assert.Error(t, err)
		assert.Nil(t, order)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)
	now := time.Now()

	query := regexp.QuoteMeta("SET status = COALESCE($1, status), progress = COALESCE($2, progress), updated_at = now()")
	columns := []string{"id", "user_id", "quantity", "country", "device", "cost", "status", "progress", "created_at", "updated_at"}

	t.Run("Status Only", func(t *testing.T) {
		status := "running"
		mock.ExpectQuery(query).
			WithArgs(&status, (*int)(nil), 5).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(5, 1, 1000, "US", "mobile", 50.0, "running", 40, now, now))

		order, err := repo.Update(context.Background(), 5, &status, nil)
		assert.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, "running", order.Status)
		assert.Equal(t, 40, order.Progress)
	})

	t.Run("Progress Only", func(t *testing.T) {
		progress := 75
		mock.ExpectQuery(query).
			WithArgs((*string)(nil), &progress, 5).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(5, 1, 1000, "US", "mobile", 50.0, "running", 75, now, now))

		order, err := repo.Update(context.Background(), 5, nil, &progress)
		assert.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, 75, order.Progress)
	})

	t.Run("Not Found", func(t *testing.T) {
		status := "completed"
		mock.ExpectQuery(query).
			WithArgs(&status, (*int)(nil), 99).
			WillReturnError(pgx.ErrNoRows)

		order, err := repo.Update(context.Background(), 99, &status, nil)
		assert.NoError(t, err)
		assert.Nil(t, order)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUserID(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "quantity", "country", "device", "cost", "status", "progress", "created_at", "updated_at"}).
			AddRow(6, 1, 500, "DE", "desktop", 25.0, "pending", 0, now, now).
			AddRow(5, 1, 1000, "US", "mobile", 50.0, "completed", 100, now.Add(-time.Hour), now))

	orders, err := repo.FindByUserID(context.Background(), 1)
	assert.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 6, orders[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAll(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.id = o.user_id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "quantity", "country", "device", "cost", "status", "progress", "created_at", "updated_at", "email"}).
			AddRow(5, 1, 1000, "US", "mobile", 50.0, "running", 40, now, now, "user@example.com"))

	orders, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "user@example.com", orders[0].UserEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}
