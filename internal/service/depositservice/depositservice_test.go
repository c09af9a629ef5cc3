package depositservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/traffpanel/traffpanel/internal/domain"
	"github.com/traffpanel/traffpanel/internal/pg"
)

func setup(t *testing.T) (*Service, *MockDepositRepo, *MockUserRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	depositRepo := NewMockDepositRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	svc := New(depositRepo, userRepo, txManager)
	return svc, depositRepo, userRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func TestCreateDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, depositRepo, _, _ := setup(t)

		depositRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, deposit *domain.Deposit) (*domain.Deposit, error) {
				assert.Equal(t, StatusPending, deposit.Status)
				assert.Equal(t, 1, deposit.UserID)
				deposit.ID = 10
				return deposit, nil
			})

		deposit, err := svc.CreateDeposit(ctx, 1, 50.0, "usdt", "proof.png")
		assert.NoError(t, err)
		require.NotNil(t, deposit)
		assert.Equal(t, 10, deposit.ID)
		assert.Equal(t, StatusPending, deposit.Status)
	})

	tests := []struct {
		name       string
		amount     float64
		method     string
		screenshot string
	}{
		{name: "Zero Amount", amount: 0, method: "usdt", screenshot: "proof.png"},
		{name: "Negative Amount", amount: -5, method: "usdt", screenshot: "proof.png"},
		{name: "Missing Method", amount: 50, method: "", screenshot: "proof.png"},
		{name: "Missing Screenshot", amount: 50, method: "usdt", screenshot: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := setup(t)

			deposit, err := svc.CreateDeposit(ctx, 1, tt.amount, tt.method, tt.screenshot)
			assert.ErrorIs(t, err, ErrInvalidDeposit)
			assert.Nil(t, deposit)
		})
	}
}

func TestReview(t *testing.T) {
	ctx := context.Background()

	t.Run("Verify Credits Once", func(t *testing.T) {
		svc, depositRepo, userRepo, txManager := setup(t)
		passthroughTx(txManager)

		pending := &domain.Deposit{ID: 10, UserID: 1, Amount: 50.0, Status: StatusPending}
		depositRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 10).Return(pending, nil)
		depositRepo.EXPECT().UpdateStatus(gomock.Any(), 10, StatusVerified).
			Return(&domain.Deposit{ID: 10, UserID: 1, Amount: 50.0, Status: StatusVerified}, nil)
		userRepo.EXPECT().CreditBalance(gomock.Any(), 1, 50.0).Return(50.0, nil).Times(1)

		deposit, err := svc.Review(ctx, 10, StatusVerified)
		assert.NoError(t, err)
		require.NotNil(t, deposit)
		assert.Equal(t, StatusVerified, deposit.Status)
	})

	t.Run("Reject Leaves Balance Alone", func(t *testing.T) {
		svc, depositRepo, _, txManager := setup(t)
		passthroughTx(txManager)

		pending := &domain.Deposit{ID: 10, UserID: 1, Amount: 50.0, Status: StatusPending}
		depositRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 10).Return(pending, nil)
		depositRepo.EXPECT().UpdateStatus(gomock.Any(), 10, StatusRejected).
			Return(&domain.Deposit{ID: 10, UserID: 1, Amount: 50.0, Status: StatusRejected}, nil)

		deposit, err := svc.Review(ctx, 10, StatusRejected)
		assert.NoError(t, err)
		require.NotNil(t, deposit)
		assert.Equal(t, StatusRejected, deposit.Status)
	})

	t.Run("Already Reviewed", func(t *testing.T) {
		svc, depositRepo, _, txManager := setup(t)
		passthroughTx(txManager)

		verified := &domain.Deposit{ID: 10, UserID: 1, Amount: 50.0, Status: StatusVerified}
		depositRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 10).Return(verified, nil)

		deposit, err := svc.Review(ctx, 10, StatusVerified)
		assert.ErrorIs(t, err, ErrAlreadyReviewed)
		assert.Nil(t, deposit)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, depositRepo, _, txManager := setup(t)
		passthroughTx(txManager)

		depositRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 99).Return(nil, nil)

		deposit, err := svc.Review(ctx, 99, StatusVerified)
		assert.ErrorIs(t, err, ErrDepositNotFound)
		assert.Nil(t, deposit)
	})

	t.Run("Invalid Decision", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		deposit, err := svc.Review(ctx, 10, "pending")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Nil(t, deposit)
	})

	t.Run("Credit Error Aborts", func(t *testing.T) {
		svc, depositRepo, userRepo, txManager := setup(t)
		passthroughTx(txManager)

		pending := &domain.Deposit{ID: 10, UserID: 1, Amount: 50.0, Status: StatusPending}
		depositRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 10).Return(pending, nil)
		depositRepo.EXPECT().UpdateStatus(gomock.Any(), 10, StatusVerified).
			Return(&domain.Deposit{ID: 10, UserID: 1, Amount: 50.0, Status: StatusVerified}, nil)
		userRepo.EXPECT().CreditBalance(gomock.Any(), 1, 50.0).Return(0.0, errors.New("connection lost"))

		deposit, err := svc.Review(ctx, 10, StatusVerified)
		assert.Error(t, err)
		assert.Nil(t, deposit)
	})
}

func TestGetByUser(t *testing.T) {
	ctx := context.Background()
	svc, depositRepo, _, _ := setup(t)

	want := []domain.Deposit{{ID: 10, UserID: 1, Amount: 50.0, Status: StatusPending}}
	depositRepo.EXPECT().FindByUserID(ctx, 1).Return(want, nil)

	deposits, err := svc.GetByUser(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, want, deposits)
}

func TestGetAll(t *testing.T) {
	ctx := context.Background()
	svc, depositRepo, _, _ := setup(t)

	want := []domain.Deposit{{ID: 10, UserID: 1, Amount: 50.0, Status: StatusVerified, UserEmail: "user@example.com"}}
	depositRepo.EXPECT().FindAll(ctx).Return(want, nil)

	deposits, err := svc.GetAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, want, deposits)
}
