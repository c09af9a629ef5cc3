package userservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/traffpanel/traffpanel/internal/domain"
	userrepo "github.com/traffpanel/traffpanel/internal/repo/user-repo"
	"github.com/traffpanel/traffpanel/pkg/auth"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")
	ErrEmailTaken   = errors.New("email already taken")
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	ListWithStats(ctx context.Context) ([]domain.UserStats, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int) error
}

// UpdateParams carries partial administrative edits; nil fields stay unchanged.
type UpdateParams struct {
	Email    *string
	Password *string
	Balance  *float64
	Role     *string
}

type Service struct {
	userRepo    UserRepo
	hashService auth.HashServiceInterface
}

func New(repo UserRepo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.UserStats, error) {
	users, err := s.userRepo.ListWithStats(ctx)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) Update(ctx context.Context, userID int, params UpdateParams) (*domain.User, error) {
	if params.Role != nil && *params.Role != domain.RoleUser && *params.Role != domain.RoleAdmin {
		return nil, ErrInvalidRole
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.Password != nil {
		hashed, err := s.hashService.HashPassword(*params.Password)
		if err != nil {
			zap.L().Error("can't hash password", zap.Error(err))
			return nil, err
		}
		user.PasswordHash = hashed
	}
	if params.Balance != nil {
		user.Balance = *params.Balance
	}
	if params.Role != nil {
		user.Role = *params.Role
	}

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, userrepo.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		zap.L().Error("can't update user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user updated", zap.Int("user_id", userID))
	return updated, nil
}

// Delete removes the user; their deposits and orders go with them.
func (s *Service) Delete(ctx context.Context, userID int) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return err
	}

	zap.L().Info("user deleted", zap.Int("user_id", userID))
	return nil
}
