package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/traffpanel/traffpanel/internal/domain"
	"github.com/traffpanel/traffpanel/internal/dto"
	"github.com/traffpanel/traffpanel/internal/service/authservice"
	pkgauth "github.com/traffpanel/traffpanel/pkg/auth"
	"github.com/traffpanel/traffpanel/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	AuthenticateAdmin(username, password string) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
	GetPrincipal(ctx context.Context, claims *pkgauth.Claims) (*domain.User, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) issueSession(w http.ResponseWriter, user *domain.User) bool {
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return false
	}
	pkgauth.SetSessionCookie(w, token)
	return true
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a user account and start a session
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	user, err := h.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register")
		return
	}
	if !h.issueSession(w, user) {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		User: dto.PrincipalDTO{ID: user.ID, Email: user.Email, Role: user.Role},
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password; the session token is set as an HTTP-only cookie
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid email or password"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if !h.issueSession(w, user) {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		User: dto.PrincipalDTO{ID: user.ID, Email: user.Email, Role: user.Role},
	})
}

// AdminLogin godoc
//
//	@Summary		Authenticate administrator
//	@Description	Log in with the configured fixed credentials; never consults the user store
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdminLoginRequestDTO	true	"Admin login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid admin credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/admin-login [post]
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminLoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	admin, err := h.authService.AuthenticateAdmin(req.Username, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid admin credentials")
		return
	}
	if !h.issueSession(w, admin) {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		User: dto.PrincipalDTO{ID: admin.ID, Email: admin.Email, Role: admin.Role},
	})
}

// Me godoc
//
//	@Summary		Current principal
//	@Description	Return the authenticated user with a fresh balance
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.MeResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authenticated"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := pkgauth.ClaimsFromContext(r.Context())
	if claims == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.authService.GetPrincipal(r.Context(), claims)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MeResponseDTO{
		ID:      user.ID,
		Email:   user.Email,
		Role:    user.Role,
		Balance: user.Balance,
	})
}
