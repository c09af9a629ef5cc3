package health

import (
	"net/http"
	"time"

	"github.com/traffpanel/traffpanel/internal/pg"
	"github.com/traffpanel/traffpanel/pkg/utils"
)

type HealthHandler struct {
	db pg.Database
}

func New(db pg.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

type statusResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// Check godoc
//
//	@Summary	Service health
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	statusResponse
//	@Failure	500	{object}	statusResponse
//	@Router		/api/health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	var one int
	err := h.db.QueryRow(r.Context(), "SELECT 1").Scan(&one)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, statusResponse{
			Status:    "error",
			Database:  "disconnected",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, statusResponse{
		Status:    "ok",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
