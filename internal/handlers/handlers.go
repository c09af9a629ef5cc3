package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/traffpanel/traffpanel/docs"
	authhandlers "github.com/traffpanel/traffpanel/internal/handlers/auth"
	deposithandlers "github.com/traffpanel/traffpanel/internal/handlers/deposits"
	healthhandlers "github.com/traffpanel/traffpanel/internal/handlers/health"
	ordershandlers "github.com/traffpanel/traffpanel/internal/handlers/orders"
	userhandlers "github.com/traffpanel/traffpanel/internal/handlers/users"
	"github.com/traffpanel/traffpanel/internal/middleware"
	"github.com/traffpanel/traffpanel/internal/pg"
	"github.com/traffpanel/traffpanel/internal/service"
	"github.com/traffpanel/traffpanel/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	AdminLogin(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	AddDeposit(w http.ResponseWriter, r *http.Request)
	GetDeposits(w http.ResponseWriter, r *http.Request)
	ReviewDeposit(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	AddOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	UpdateOrder(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	GetUsers(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	DepositHandler DepositHandler
	OrderHandler   OrderHandler
	UserHandler    UserHandler
	HealthHandler  HealthHandler
}

func New(s *service.Services, db pg.Database) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		DepositHandler: deposithandlers.New(s.DepositService),
		OrderHandler:   ordershandlers.New(s.OrderService),
		UserHandler:    userhandlers.New(s.UserService),
		HealthHandler:  healthhandlers.New(db),
	}
}

func (h *Handlers) InitRoutes(r chi.Router, m *auth.Middleware) chi.Router {
	r.Use(
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		chimiddleware.Logger,
		middleware.RequestID,
		middleware.Metrics,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HealthHandler.Check)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/admin-login", h.AuthHandler.AdminLogin)
			r.With(m.Authenticate).Get("/me", h.AuthHandler.Me)
		})

		r.Group(func(r chi.Router) {
			r.Use(m.Authenticate)

			r.Route("/deposits", func(r chi.Router) {
				r.Post("/", h.DepositHandler.AddDeposit)
				r.Get("/", h.DepositHandler.GetDeposits)
				r.With(m.RequireAdmin).Put("/{id}", h.DepositHandler.ReviewDeposit)
			})
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.AddOrder)
				r.Get("/", h.OrderHandler.GetOrders)
				r.With(m.RequireAdmin).Put("/{id}", h.OrderHandler.UpdateOrder)
			})
			r.Route("/users", func(r chi.Router) {
				r.Use(m.RequireAdmin)
				r.Get("/", h.UserHandler.GetUsers)
				r.Put("/{id}", h.UserHandler.UpdateUser)
				r.Delete("/{id}", h.UserHandler.DeleteUser)
			})
		})
	})

	return r
}
