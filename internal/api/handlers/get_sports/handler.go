package get_sports

import (
	"net/http"

	"github.com/playgrid/SlotBookingService/internal/api/handlers"
	"github.com/playgrid/SlotBookingService/internal/service/catalog/models"
)

const msgInternal = "Failed to fetch sports"

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// SportsResponse HTTP response model
type SportsResponse struct {
	Success bool                   `json:"success"`
	Data    []models.SportResponse `json:"data"`
}

// Handle GET /api/sports
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sports, err := h.catalog.GetSports(r.Context())
	if err != nil {
		h.logger.Error("GET /sports - Failed to fetch sports: %v", err)
		handlers.RespondInternalError(w, msgInternal)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SportsResponse{Success: true, Data: sports})
}
