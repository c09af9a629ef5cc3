package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/traffpanel/traffpanel/internal/domain"
	userrepo "github.com/traffpanel/traffpanel/internal/repo/user-repo"
	"github.com/traffpanel/traffpanel/pkg/auth"
)

// AdminEmail is the synthetic identity of the fixed-credential administrator.
// It never exists in the users table.
const AdminEmail = "admin@system.com"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already taken")
	ErrUserNotFound       = errors.New("user not found")
)

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    UserRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface

	adminUsername string
	adminPassword string
}

func New(repo UserRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, adminUsername, adminPassword string) *Service {
	return &Service{
		userRepo:      repo,
		hashService:   hashService,
		jwtService:    jwtService,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

func (s *Service) Register(ctx context.Context, email, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         domain.RoleUser,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userrepo.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

// Authenticate checks store-backed credentials. The failure is uniform for an
// unknown email and a wrong password so accounts cannot be enumerated.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

// AuthenticateAdmin is the out-of-band bootstrap login. It never touches the
// user store, and an empty configured password disables it outright.
func (s *Service) AuthenticateAdmin(username, password string) (*domain.User, error) {
	if s.adminPassword == "" || username != s.adminUsername || password != s.adminPassword {
		zap.L().Info("invalid admin credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("administrator authenticated")
	return &domain.User{
		ID:    0,
		Email: AdminEmail,
		Role:  domain.RoleAdmin,
	}, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(auth.TokenTTL)

	token, err := s.jwtService.GenerateJWT(user.ID, user.Email, user.Role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// GetPrincipal resolves session claims back to a current user. The synthetic
// administrator is answered without a store lookup.
func (s *Service) GetPrincipal(ctx context.Context, claims *auth.Claims) (*domain.User, error) {
	if claims.UserID == 0 && claims.Role == domain.RoleAdmin {
		return &domain.User{ID: 0, Email: claims.Email, Role: domain.RoleAdmin}, nil
	}
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
