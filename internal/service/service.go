package service

import (
	authhandlers "github.com/traffpanel/traffpanel/internal/handlers/auth"
	deposithandlers "github.com/traffpanel/traffpanel/internal/handlers/deposits"
	ordershandlers "github.com/traffpanel/traffpanel/internal/handlers/orders"
	userhandlers "github.com/traffpanel/traffpanel/internal/handlers/users"

	"github.com/traffpanel/traffpanel/internal/config"
	"github.com/traffpanel/traffpanel/internal/pg"
	"github.com/traffpanel/traffpanel/internal/repo"
	"github.com/traffpanel/traffpanel/internal/service/authservice"
	"github.com/traffpanel/traffpanel/internal/service/depositservice"
	"github.com/traffpanel/traffpanel/internal/service/orderservice"
	"github.com/traffpanel/traffpanel/internal/service/userservice"
	pkgauth "github.com/traffpanel/traffpanel/pkg/auth"
)

type Services struct {
	AuthService    authhandlers.Service
	DepositService deposithandlers.Service
	OrderService   ordershandlers.Service
	UserService    userhandlers.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	hashService := &pkgauth.HashService{}
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	authService := authservice.New(repo.UserRepo, hashService, jwtService, cfg.AdminUsername, cfg.AdminPassword)
	depositService := depositservice.New(repo.DepositRepo, repo.UserRepo, txManager)
	orderService := orderservice.New(repo.OrderRepo, repo.UserRepo, txManager)
	userService := userservice.New(repo.UserRepo, hashService)

	return &Services{
		AuthService:    authService,
		DepositService: depositService,
		OrderService:   orderService,
		UserService:    userService,
	}
}
