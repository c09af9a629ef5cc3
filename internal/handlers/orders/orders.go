package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/traffpanel/traffpanel/internal/domain"
	"github.com/traffpanel/traffpanel/internal/dto"
	"github.com/traffpanel/traffpanel/internal/service/orderservice"
	"github.com/traffpanel/traffpanel/pkg/auth"
	"github.com/traffpanel/traffpanel/pkg/utils"
)

type Service interface {
	CreateOrder(ctx context.Context, userID, quantity int, country, device string, cost float64) (*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID int, status *string, progress *int) (*domain.Order, error)
	GetByUser(ctx context.Context, userID int) ([]domain.Order, error)
	GetAll(ctx context.Context) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func toDTO(o domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		ID:        o.ID,
		Quantity:  o.Quantity,
		Country:   o.Country,
		Device:    o.Device,
		Cost:      o.Cost,
		Status:    o.Status,
		Progress:  o.Progress,
		CreatedAt: o.CreatedAt,
		UserID:    o.UserID,
		UserEmail: o.UserEmail,
	}
}

// AddOrder godoc
//
//	@Summary		Place a traffic order
//	@Description	Create an order; the cost is debited from the balance atomically with the insert
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Order details"
//	@Success		201		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"All order details are required"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) AddOrder(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), claims.UserID, req.Quantity, req.Country, req.Device, req.Cost)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidOrder), errors.Is(err, orderservice.ErrInvalidDevice):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, orderservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(*order))
}

// GetOrders godoc
//
//	@Summary		List orders
//	@Description	Administrators see every order with the owner's email; users see their own. Newest first.
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	var (
		orders []domain.Order
		err    error
	)
	if claims.Role == domain.RoleAdmin {
		orders, err = h.orderService.GetAll(r.Context())
	} else {
		orders, err = h.orderService.GetByUser(r.Context(), claims.UserID)
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get orders")
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for _, order := range orders {
		response = append(response, toDTO(order))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateOrder godoc
//
//	@Summary		Update order status or progress
//	@Description	Administrative field writes; status and progress are independent
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Order ID"
//	@Param			request	body		dto.UpdateOrderRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid status or progress"
//	@Failure		401		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id} [put]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req dto.UpdateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateOrder(r.Context(), orderID, req.Status, req.Progress)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidOrder),
			errors.Is(err, orderservice.ErrInvalidStatus),
			errors.Is(err, orderservice.ErrInvalidProgress):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*order))
}
