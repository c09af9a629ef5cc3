package deposits

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/traffpanel/traffpanel/internal/domain"
	"github.com/traffpanel/traffpanel/internal/dto"
	"github.com/traffpanel/traffpanel/internal/service/depositservice"
	"github.com/traffpanel/traffpanel/pkg/auth"
)

func setup(t *testing.T) (*DepositHandler, *MockService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := NewMockService(ctrl)
	return New(svc), svc
}

func withClaims(req *http.Request, claims *auth.Claims) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), auth.ClaimsKey, claims))
}

func depositForm(t *testing.T, amount, method, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if amount != "" {
		require.NoError(t, writer.WriteField("amount", amount))
	}
	if method != "" {
		require.NoError(t, writer.WriteField("method", method))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("screenshot", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestAddDeposit(t *testing.T) {
	userClaims := &auth.Claims{UserID: 1, Email: "user@example.com", Role: "user"}

	t.Run("Success", func(t *testing.T) {
		h, svc := setup(t)

		svc.EXPECT().CreateDeposit(gomock.Any(), 1, 50.0, "usdt", gomock.Any()).DoAndReturn(
			func(_ context.Context, userID int, amount float64, method, screenshot string) (*domain.Deposit, error) {
				assert.True(t, strings.HasSuffix(screenshot, "-proof.png"))
				return &domain.Deposit{
					ID:         10,
					UserID:     userID,
					Amount:     amount,
					Method:     method,
					Screenshot: screenshot,
					Status:     depositservice.StatusPending,
					CreatedAt:  time.Now(),
				}, nil
			})

		body, contentType := depositForm(t, "50", "usdt", "proof.png")
		req := httptest.NewRequest(http.MethodPost, "/api/deposits", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		h.AddDeposit(rr, withClaims(req, userClaims))

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp dto.DepositResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 10, resp.ID)
		assert.Equal(t, depositservice.StatusPending, resp.Status)
	})

	t.Run("Missing Amount", func(t *testing.T) {
		h, _ := setup(t)

		body, contentType := depositForm(t, "", "usdt", "proof.png")
		req := httptest.NewRequest(http.MethodPost, "/api/deposits", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		h.AddDeposit(rr, withClaims(req, userClaims))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Missing Screenshot", func(t *testing.T) {
		h, _ := setup(t)

		body, contentType := depositForm(t, "50", "usdt", "")
		req := httptest.NewRequest(http.MethodPost, "/api/deposits", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		h.AddDeposit(rr, withClaims(req, userClaims))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Invalid Amount Rejected By Service", func(t *testing.T) {
		h, svc := setup(t)

		svc.EXPECT().CreateDeposit(gomock.Any(), 1, -5.0, "usdt", gomock.Any()).
			Return(nil, depositservice.ErrInvalidDeposit)

		body, contentType := depositForm(t, "-5", "usdt", "proof.png")
		req := httptest.NewRequest(http.MethodPost, "/api/deposits", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		h.AddDeposit(rr, withClaims(req, userClaims))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetDeposits(t *testing.T) {
	t.Run("User Sees Own", func(t *testing.T) {
		h, svc := setup(t)

		svc.EXPECT().GetByUser(gomock.Any(), 1).
			Return([]domain.Deposit{{ID: 10, UserID: 1, Amount: 50, Status: "pending"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/deposits", nil)
		rr := httptest.NewRecorder()
		h.GetDeposits(rr, withClaims(req, &auth.Claims{UserID: 1, Role: "user"}))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []dto.DepositResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp, 1)
		assert.Equal(t, 10, resp[0].ID)
	})

	t.Run("Admin Sees All", func(t *testing.T) {
		h, svc := setup(t)

		svc.EXPECT().GetAll(gomock.Any()).
			Return([]domain.Deposit{
				{ID: 11, UserID: 2, Amount: 20, Status: "pending", UserEmail: "second@example.com"},
				{ID: 10, UserID: 1, Amount: 50, Status: "verified", UserEmail: "first@example.com"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/deposits", nil)
		rr := httptest.NewRecorder()
		h.GetDeposits(rr, withClaims(req, &auth.Claims{UserID: 0, Role: "admin"}))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []dto.DepositResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "second@example.com", resp[0].UserEmail)
	})

	t.Run("Empty List Is An Array", func(t *testing.T) {
		h, svc := setup(t)

		svc.EXPECT().GetByUser(gomock.Any(), 1).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/deposits", nil)
		rr := httptest.NewRecorder()
		h.GetDeposits(rr, withClaims(req, &auth.Claims{UserID: 1, Role: "user"}))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]\n", rr.Body.String())
	})
}

func TestReviewDeposit(t *testing.T) {
	reviewRequest := func(t *testing.T, id, status string) *http.Request {
		t.Helper()
		body, _ := json.Marshal(dto.ReviewDepositRequestDTO{Status: status})
		req := httptest.NewRequest(http.MethodPut, "/api/deposits/"+id, bytes.NewReader(body))

		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("Verified", func(t *testing.T) {
		h, svc := setup(t)

		svc.EXPECT().Review(gomock.Any(), 10, "verified").
			Return(&domain.Deposit{ID: 10, UserID: 1, Amount: 50, Status: "verified"}, nil)

		rr := httptest.NewRecorder()
		h.ReviewDeposit(rr, reviewRequest(t, "10", "verified"))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.DepositResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "verified", resp.Status)
	})

	t.Run("Already Reviewed", func(t *testing.T) {
		h, svc := setup(t)

		svc.EXPECT().Review(gomock.Any(), 10, "verified").
			Return(nil, depositservice.ErrAlreadyReviewed)

		rr := httptest.NewRecorder()
		h.ReviewDeposit(rr, reviewRequest(t, "10", "verified"))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		h, svc := setup(t)

		svc.EXPECT().Review(gomock.Any(), 99, "rejected").
			Return(nil, depositservice.ErrDepositNotFound)

		rr := httptest.NewRecorder()
		h.ReviewDeposit(rr, reviewRequest(t, "99", "rejected"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Invalid Status", func(t *testing.T) {
		h, svc := setup(t)

		svc.EXPECT().Review(gomock.Any(), 10, "pending").
			Return(nil, depositservice.ErrInvalidStatus)

		rr := httptest.NewRecorder()
		h.ReviewDeposit(rr, reviewRequest(t, "10", "pending"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Bad ID", func(t *testing.T) {
		h, _ := setup(t)

		rr := httptest.NewRecorder()
		h.ReviewDeposit(rr, reviewRequest(t, "abc", "verified"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
