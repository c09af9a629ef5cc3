package userservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/traffpanel/traffpanel/internal/domain"
	userrepo "github.com/traffpanel/traffpanel/internal/repo/user-repo"
	"github.com/traffpanel/traffpanel/pkg/auth"
)

func setup(t *testing.T) (*Service, *MockUserRepo, *auth.MockHashServiceInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := NewMockUserRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	svc := New(userRepo, hashService)
	return svc, userRepo, hashService
}

func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestList(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _ := setup(t)

	want := []domain.UserStats{{
		User:         domain.User{ID: 1, Email: "user@example.com", Balance: 50},
		DepositCount: 2,
		OrderCount:   1,
	}}
	userRepo.EXPECT().ListWithStats(ctx).Return(want, nil)

	users, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, want, users)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Partial Update", func(t *testing.T) {
		svc, userRepo, _ := setup(t)

		stored := &domain.User{ID: 1, Email: "old@example.com", PasswordHash: "hash", Balance: 10, Role: domain.RoleUser}
		userRepo.EXPECT().FindByID(ctx, 1).Return(stored, nil)
		userRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.Equal(t, "new@example.com", user.Email)
				assert.Equal(t, 100.0, user.Balance)
				// untouched fields keep their stored values
				assert.Equal(t, "hash", user.PasswordHash)
				assert.Equal(t, domain.RoleUser, user.Role)
				return user, nil
			})

		user, err := svc.Update(ctx, 1, UpdateParams{
			Email:   strPtr("new@example.com"),
			Balance: floatPtr(100),
		})
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "new@example.com", user.Email)
	})

	t.Run("Password Rehashed", func(t *testing.T) {
		svc, userRepo, hashService := setup(t)

		stored := &domain.User{ID: 1, Email: "user@example.com", PasswordHash: "old-hash", Role: domain.RoleUser}
		userRepo.EXPECT().FindByID(ctx, 1).Return(stored, nil)
		hashService.EXPECT().HashPassword("new-password").Return("new-hash", nil)
		userRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.Equal(t, "new-hash", user.PasswordHash)
				return user, nil
			})

		_, err := svc.Update(ctx, 1, UpdateParams{Password: strPtr("new-password")})
		assert.NoError(t, err)
	})

	t.Run("Invalid Role", func(t *testing.T) {
		svc, _, _ := setup(t)

		user, err := svc.Update(ctx, 1, UpdateParams{Role: strPtr("superadmin")})
		assert.ErrorIs(t, err, ErrInvalidRole)
		assert.Nil(t, user)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, userRepo, _ := setup(t)

		userRepo.EXPECT().FindByID(ctx, 99).Return(nil, nil)

		user, err := svc.Update(ctx, 99, UpdateParams{Email: strPtr("new@example.com")})
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("Email Taken", func(t *testing.T) {
		svc, userRepo, _ := setup(t)

		stored := &domain.User{ID: 1, Email: "old@example.com", Role: domain.RoleUser}
		userRepo.EXPECT().FindByID(ctx, 1).Return(stored, nil)
		userRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil, userrepo.ErrEmailExists)

		user, err := svc.Update(ctx, 1, UpdateParams{Email: strPtr("taken@example.com")})
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Nil(t, user)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, userRepo, _ := setup(t)

		userRepo.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1}, nil)
		userRepo.EXPECT().Delete(ctx, 1).Return(nil)

		err := svc.Delete(ctx, 1)
		assert.NoError(t, err)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, userRepo, _ := setup(t)

		userRepo.EXPECT().FindByID(ctx, 99).Return(nil, nil)

		err := svc.Delete(ctx, 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
