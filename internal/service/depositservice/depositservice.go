package depositservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/traffpanel/traffpanel/internal/domain"
	"github.com/traffpanel/traffpanel/internal/pg"
)

const (
	// StatusPending is the only state a deposit can be reviewed from.
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

var (
	ErrInvalidDeposit  = errors.New("invalid deposit")
	ErrInvalidStatus   = errors.New("invalid deposit status")
	ErrDepositNotFound = errors.New("deposit not found")
	ErrAlreadyReviewed = errors.New("deposit already reviewed")
)

type DepositRepo interface {
	Create(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Deposit, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Deposit, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Deposit, error)
	FindAll(ctx context.Context) ([]domain.Deposit, error)
}

type UserRepo interface {
	CreditBalance(ctx context.Context, userID int, amount float64) (float64, error)
}

type Service struct {
	depositRepo DepositRepo
	userRepo    UserRepo
	txManager   pg.TXManager
}

func New(depositRepo DepositRepo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		depositRepo: depositRepo,
		userRepo:    userRepo,
		txManager:   txManager,
	}
}

// CreateDeposit records a pending deposit. The balance is untouched until an
// administrator verifies it.
func (s *Service) CreateDeposit(ctx context.Context, userID int, amount float64, method, screenshot string) (*domain.Deposit, error) {
	if amount <= 0 || method == "" || screenshot == "" {
		return nil, ErrInvalidDeposit
	}

	deposit := &domain.Deposit{
		UserID:     userID,
		Amount:     amount,
		Method:     method,
		Screenshot: screenshot,
		Status:     StatusPending,
	}
	deposit, err := s.depositRepo.Create(ctx, deposit)
	if err != nil {
		zap.L().Error("can't create deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

// Review moves a pending deposit to verified or rejected. Both states are
// terminal: reviewing again is refused, which keeps the credit one-time. The
// status write and the balance credit commit or roll back together.
func (s *Service) Review(ctx context.Context, depositID int, decision string) (*domain.Deposit, error) {
	if decision != StatusVerified && decision != StatusRejected {
		return nil, ErrInvalidStatus
	}

	var reviewed *domain.Deposit
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		deposit, err := s.depositRepo.FindByIDForUpdate(ctx, depositID)
		if err != nil {
			return err
		}
		if deposit == nil {
			return ErrDepositNotFound
		}
		if deposit.Status != StatusPending {
			return ErrAlreadyReviewed
		}

		reviewed, err = s.depositRepo.UpdateStatus(ctx, depositID, decision)
		if err != nil {
			return err
		}

		if decision == StatusVerified {
			if _, err := s.userRepo.CreditBalance(ctx, deposit.UserID, deposit.Amount); err != nil {
				return err
			}
			zap.L().Info("deposit verified",
				zap.Int("deposit_id", depositID),
				zap.Int("user_id", deposit.UserID),
				zap.Float64("amount", deposit.Amount))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviewed, nil
}

func (s *Service) GetByUser(ctx context.Context, userID int) ([]domain.Deposit, error) {
	deposits, err := s.depositRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Deposit, error) {
	deposits, err := s.depositRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}
