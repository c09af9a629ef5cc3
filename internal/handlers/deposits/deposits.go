package deposits

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/traffpanel/traffpanel/internal/domain"
	"github.com/traffpanel/traffpanel/internal/dto"
	"github.com/traffpanel/traffpanel/internal/service/depositservice"
	"github.com/traffpanel/traffpanel/pkg/auth"
	"github.com/traffpanel/traffpanel/pkg/utils"
)

const maxScreenshotSize = 10 << 20

type Service interface {
	CreateDeposit(ctx context.Context, userID int, amount float64, method, screenshot string) (*domain.Deposit, error)
	Review(ctx context.Context, depositID int, decision string) (*domain.Deposit, error)
	GetByUser(ctx context.Context, userID int) ([]domain.Deposit, error)
	GetAll(ctx context.Context) ([]domain.Deposit, error)
}

type DepositHandler struct {
	depositService Service
}

func New(depositService Service) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
	}
}

func toDTO(d domain.Deposit) dto.DepositResponseDTO {
	return dto.DepositResponseDTO{
		ID:         d.ID,
		Amount:     d.Amount,
		Method:     d.Method,
		Screenshot: d.Screenshot,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
		UserID:     d.UserID,
		UserEmail:  d.UserEmail,
	}
}

// AddDeposit godoc
//
//	@Summary		Submit a deposit
//	@Description	Record a pending deposit with amount, payment method and a proof screenshot
//	@Tags			Deposits
//	@Accept			mpfd
//	@Produce		json
//	@Param			amount		formData	number	true	"Deposit amount"
//	@Param			method		formData	string	true	"Payment method"
//	@Param			screenshot	formData	file	true	"Payment proof"
//	@Success		201	{object}	dto.DepositResponseDTO
//	@Failure		400	{object}	utils.Response	"Amount, method, and screenshot are required"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/deposits [post]
func (h *DepositHandler) AddDeposit(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	if err := r.ParseMultipartForm(maxScreenshotSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	amount, err := strconv.ParseFloat(r.FormValue("amount"), 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount, method, and screenshot are required")
		return
	}
	method := r.FormValue("method")

	file, header, err := r.FormFile("screenshot")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount, method, and screenshot are required")
		return
	}
	file.Close()

	// The file itself is not persisted; the generated name is the opaque
	// proof reference an operator resolves out of band.
	screenshot := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), header.Filename)

	deposit, err := h.depositService.CreateDeposit(r.Context(), claims.UserID, amount, method, screenshot)
	if err != nil {
		if errors.Is(err, depositservice.ErrInvalidDeposit) {
			utils.RespondWithError(w, http.StatusBadRequest, "Amount, method, and screenshot are required")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create deposit")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(*deposit))
}

// GetDeposits godoc
//
//	@Summary		List deposits
//	@Description	Administrators see every deposit with the owner's email; users see their own. Newest first.
//	@Tags			Deposits
//	@Produce		json
//	@Success		200	{array}		dto.DepositResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/deposits [get]
func (h *DepositHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	var (
		deposits []domain.Deposit
		err      error
	)
	if claims.Role == domain.RoleAdmin {
		deposits, err = h.depositService.GetAll(r.Context())
	} else {
		deposits, err = h.depositService.GetByUser(r.Context(), claims.UserID)
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get deposits")
		return
	}

	response := make([]dto.DepositResponseDTO, 0, len(deposits))
	for _, deposit := range deposits {
		response = append(response, toDTO(deposit))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ReviewDeposit godoc
//
//	@Summary		Review a deposit
//	@Description	Verify or reject a pending deposit; verification credits the owner's balance exactly once
//	@Tags			Deposits
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Deposit ID"
//	@Param			request	body		dto.ReviewDepositRequestDTO	true	"Review decision"
//	@Success		200		{object}	dto.DepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid status"
//	@Failure		401		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Deposit not found"
//	@Failure		409		{object}	utils.Response	"Deposit already reviewed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/deposits/{id} [put]
func (h *DepositHandler) ReviewDeposit(w http.ResponseWriter, r *http.Request) {
	depositID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deposit ID")
		return
	}

	var req dto.ReviewDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Status is required")
		return
	}

	deposit, err := h.depositService.Review(r.Context(), depositID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, depositservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, depositservice.ErrDepositNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, depositservice.ErrAlreadyReviewed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*deposit))
}
