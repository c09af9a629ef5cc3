package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgerrcode"
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

func TestFindByEmail(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)
	now := time.Now()

	query := regexp.QuoteMeta(`
		SELECT id, email, password_hash, balance, role, created_at
		FROM users
		WHERE email = $1
	`)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("user@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "balance", "role", "created_at"}).
				AddRow(1, "user@example.com", "hash", 100.0, "user", now))

		user, err := repo.FindByEmail(context.Background(), "user@example.com")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "user@example.com", user.Email)
		assert.Equal(t, 100.0, user.Balance)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("missing@example.com").
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.FindByEmail(context.Background(), "missing@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)
	now := time.Now()

	query := regexp.QuoteMeta(`
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, balance, created_at
	`)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("user@example.com", "hash", "user").
			WillReturnRows(pgxmock.NewRows([]string{"id", "balance", "created_at"}).
				AddRow(7, 0.0, now))

		user, err := repo.Create(context.Background(), &domain.User{
			Email:        "user@example.com",
			PasswordHash: "hash",
			Role:         domain.RoleUser,
		})
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, 7, user.ID)
		assert.Zero(t, user.Balance)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("user@example.com", "hash", "user").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		user, err := repo.Create(context.Background(), &domain.User{
			Email:        "user@example.com",
			PasswordHash: "hash",
			Role:         domain.RoleUser,
		})
		assert.ErrorIs(t, err, ErrEmailExists)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListWithStats(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users u")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "balance", "role", "created_at", "deposit_count", "order_count"}).
			AddRow(2, "second@example.com", 50.0, "user", now, 3, 1).
			AddRow(1, "first@example.com", 0.0, "user", now.Add(-time.Hour), 0, 0))

	users, err := repo.ListWithStats(context.Background())
	assert.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, 2, users[0].ID)
	assert.Equal(t, 3, users[0].DepositCount)
	assert.Equal(t, 1, users[0].OrderCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreditBalance(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $2")).
		WithArgs(1, 25.0).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(125.0))

	balance, err := repo.CreditBalance(context.Background(), 1, 25.0)
	assert.NoError(t, err)
	assert.Equal(t, 125.0, balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitBalance(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	query := regexp.QuoteMeta("SET balance = balance - $2")

	t.Run("Sufficient", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(1, 40.0).
			WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(60.0))

		balance, ok, err := repo.DebitBalance(context.Background(), 1, 40.0)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 60.0, balance)
	})

	t.Run("Insufficient", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(1, 500.0).
			WillReturnError(pgx.ErrNoRows)

		balance, ok, err := repo.DebitBalance(context.Background(), 1, 500.0)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, balance)
	})

	t.Run("Query Error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(1, 40.0).
			WillReturnError(errors.New("connection lost"))

		_, ok, err := repo.DebitBalance(context.Background(), 1, 40.0)
		assert.Error(t, err)
		assert.False(t, ok)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(3).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), 3)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
