package orderservice

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

func setup(t *testing.T) (*Service, *MockOrderRepo, *MockUserRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	orderRepo := NewMockOrderRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	svc := New(orderRepo, userRepo, txManager)
	return svc, orderRepo, userRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, orderRepo, userRepo, txManager := setup(t)
		passthroughTx(txManager)

		userRepo.EXPECT().DebitBalance(gomock.Any(), 1, 50.0).Return(10.0, true, nil)
		orderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, order *domain.Order) (*domain.Order, error) {
				assert.Equal(t, StatusPending, order.Status)
				assert.Zero(t, order.Progress)
				order.ID = 5
				return order, nil
			})

		order, err := svc.CreateOrder(ctx, 1, 1000, "US", "mobile", 50.0)
		assert.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, 5, order.ID)
		assert.Equal(t, StatusPending, order.Status)
	})

	t.Run("Insufficient Balance", func(t *testing.T) {
		svc, _, userRepo, txManager := setup(t)
		passthroughTx(txManager)

		userRepo.EXPECT().DebitBalance(gomock.Any(), 1, 500.0).Return(0.0, false, nil)

		order, err := svc.CreateOrder(ctx, 1, 1000, "US", "mobile", 500.0)
		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.Nil(t, order)
	})

	t.Run("Debit Error", func(t *testing.T) {
		svc, _, userRepo, txManager := setup(t)
		passthroughTx(txManager)

		userRepo.EXPECT().DebitBalance(gomock.Any(), 1, 50.0).Return(0.0, false, errors.New("connection lost"))

		order, err := svc.CreateOrder(ctx, 1, 1000, "US", "mobile", 50.0)
		assert.Error(t, err)
		assert.Nil(t, order)
	})

	tests := []struct {
		name     string
		quantity int
		country  string
		device   string
		cost     float64
		wantErr  error
	}{
		{name: "Zero Quantity", quantity: 0, country: "US", device: "mobile", cost: 50, wantErr: ErrInvalidOrder},
		{name: "Zero Cost", quantity: 1000, country: "US", device: "mobile", cost: 0, wantErr: ErrInvalidOrder},
		{name: "Missing Country", quantity: 1000, country: "", device: "mobile", cost: 50, wantErr: ErrInvalidOrder},
		{name: "Unknown Device", quantity: 1000, country: "US", device: "fridge", cost: 50, wantErr: ErrInvalidDevice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := setup(t)

			order, err := svc.CreateOrder(ctx, 1, tt.quantity, tt.country, tt.device, tt.cost)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, order)
		})
	}
}

func TestUpdateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Status Only", func(t *testing.T) {
		svc, orderRepo, _, _ := setup(t)

		status := StatusRunning
		orderRepo.EXPECT().Update(ctx, 5, &status, (*int)(nil)).
			Return(&domain.Order{ID: 5, Status: StatusRunning, Progress: 40}, nil)

		order, err := svc.UpdateOrder(ctx, 5, &status, nil)
		assert.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, StatusRunning, order.Status)
	})

	t.Run("Progress Only", func(t *testing.T) {
		svc, orderRepo, _, _ := setup(t)

		progress := 75
		orderRepo.EXPECT().Update(ctx, 5, (*string)(nil), &progress).
			Return(&domain.Order{ID: 5, Status: StatusRunning, Progress: 75}, nil)

		order, err := svc.UpdateOrder(ctx, 5, nil, &progress)
		assert.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, 75, order.Progress)
	})

	t.Run("Nothing To Update", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		order, err := svc.UpdateOrder(ctx, 5, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidOrder)
		assert.Nil(t, order)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		status := "paused"
		order, err := svc.UpdateOrder(ctx, 5, &status, nil)
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Nil(t, order)
	})

	t.Run("Progress Out Of Range", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		progress := 101
		order, err := svc.UpdateOrder(ctx, 5, nil, &progress)
		assert.ErrorIs(t, err, ErrInvalidProgress)
		assert.Nil(t, order)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, orderRepo, _, _ := setup(t)

		status := StatusCompleted
		orderRepo.EXPECT().Update(ctx, 99, &status, (*int)(nil)).Return(nil, nil)

		order, err := svc.UpdateOrder(ctx, 99, &status, nil)
		assert.ErrorIs(t, err, ErrOrderNotFound)
		assert.Nil(t, order)
	})
}

func TestGetByUser(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, _, _ := setup(t)

	want := []domain.Order{{ID: 5, UserID: 1, Status: StatusPending}}
	orderRepo.EXPECT().FindByUserID(ctx, 1).Return(want, nil)

	orders, err := svc.GetByUser(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, want, orders)
}

func TestGetAll(t *testing.T) {
	ctx := context.Background()
	svc, orderRepo, _, _ := setup(t)

	want := []domain.Order{{ID: 5, UserID: 1, Status: StatusRunning, UserEmail: "user@example.com"}}
	orderRepo.EXPECT().FindAll(ctx).Return(want, nil)

	orders, err := svc.GetAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, want, orders)
}
