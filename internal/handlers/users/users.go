package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/traffpanel/traffpanel/internal/domain"
	"github.com/traffpanel/traffpanel/internal/dto"
	"github.com/traffpanel/traffpanel/internal/service/userservice"
	"github.com/traffpanel/traffpanel/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.UserStats, error)
	Update(ctx context.Context, userID int, params userservice.UpdateParams) (*domain.User, error)
	Delete(ctx context.Context, userID int) error
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetUsers godoc
//
//	@Summary		List users
//	@Description	Administrative listing with per-user deposit and order counts, newest first
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users [get]
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get users")
		return
	}

	response := make([]dto.UserResponseDTO, 0, len(users))
	for _, u := range users {
		response = append(response, dto.UserResponseDTO{
			ID:           u.ID,
			Email:        u.Email,
			Balance:      u.Balance,
			Role:         u.Role,
			CreatedAt:    u.CreatedAt,
			DepositCount: u.DepositCount,
			OrderCount:   u.OrderCount,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateUser godoc
//
//	@Summary		Update a user
//	@Description	Partial administrative edit of email, password, balance or role
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"User ID"
//	@Param			request	body		dto.UpdateUserRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		409		{object}	utils.Response	"Email already taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req dto.UpdateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.Update(r.Context(), userID, userservice.UpdateParams{
		Email:    req.Email,
		Password: req.Password,
		Balance:  req.Balance,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrInvalidRole):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, userservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, userservice.ErrEmailTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserResponseDTO{
		ID:        user.ID,
		Email:     user.Email,
		Balance:   user.Balance,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	})
}

// DeleteUser godoc
//
//	@Summary		Delete a user
//	@Description	Remove a user together with their deposits and orders
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid user ID"
//	@Failure		401	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	err = h.userService.Delete(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User successfully deleted"})
}
