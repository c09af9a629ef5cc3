package orderservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/traffpanel/traffpanel/internal/domain"
	"github.com/traffpanel/traffpanel/internal/pg"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusRunning    = "running"
	StatusCompleted  = "completed"
)

// validStatuses: transitions are admin-driven and deliberately unordered; the
// data layer only vets membership.
var validStatuses = map[string]struct{}{
	StatusPending:    {},
	StatusProcessing: {},
	StatusRunning:    {},
	StatusCompleted:  {},
}

var validDevices = map[string]struct{}{
	"mobile":  {},
	"tablet":  {},
	"desktop": {},
	"other":   {},
}

var (
	ErrInvalidOrder        = errors.New("invalid order")
	ErrInvalidDevice       = errors.New("invalid device")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrInvalidProgress     = errors.New("progress must be between 0 and 100")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type OrderRepo interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Update(ctx context.Context, id int, status *string, progress *int) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
}

type UserRepo interface {
	DebitBalance(ctx context.Context, userID int, amount float64) (float64, bool, error)
}

type Service struct {
	orderRepo OrderRepo
	userRepo  UserRepo
	txManager pg.TXManager
}

func New(orderRepo OrderRepo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		txManager: txManager,
	}
}

// CreateOrder debits the user's balance and inserts the order in one
// transaction. The balance check and the debit are a single statement, so two
// concurrent orders can never both spend the same funds.
func (s *Service) CreateOrder(ctx context.Context, userID, quantity int, country, device string, cost float64) (*domain.Order, error) {
	if quantity <= 0 || cost <= 0 || country == "" {
		return nil, ErrInvalidOrder
	}
	if _, ok := validDevices[device]; !ok {
		return nil, ErrInvalidDevice
	}

	order := &domain.Order{
		UserID:   userID,
		Quantity: quantity,
		Country:  country,
		Device:   device,
		Cost:     cost,
		Status:   StatusPending,
		Progress: 0,
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		_, ok, err := s.userRepo.DebitBalance(ctx, userID, cost)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientBalance
		}

		order, err = s.orderRepo.Create(ctx, order)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("can't create order", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("order created",
		zap.Int("order_id", order.ID),
		zap.Int("user_id", userID),
		zap.Float64("cost", cost))
	return order, nil
}

// UpdateOrder applies independent status and progress writes. Status and
// progress are not cross-validated: completed does not force progress 100.
func (s *Service) UpdateOrder(ctx context.Context, orderID int, status *string, progress *int) (*domain.Order, error) {
	if status == nil && progress == nil {
		return nil, ErrInvalidOrder
	}
	if status != nil {
		if _, ok := validStatuses[*status]; !ok {
			return nil, ErrInvalidStatus
		}
	}
	if progress != nil && (*progress < 0 || *progress > 100) {
		return nil, ErrInvalidProgress
	}

	order, err := s.orderRepo.Update(ctx, orderID, status, progress)
	if err != nil {
		zap.L().Error("can't update order", zap.Error(err))
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) GetByUser(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}
