package get_dates

import (
	"net/http"

	"github.com/playgrid/SlotBookingService/internal/api/handlers"
	"github.com/playgrid/SlotBookingService/internal/service/catalog/models"
)

const msgInternal = "Failed to fetch dates"

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

// DatesResponse HTTP response model
type DatesResponse struct {
	Success bool                  `json:"success"`
	Data    []models.DateResponse `json:"data"`
}

// Handle GET /api/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dates, err := h.catalog.GetDates(r.Context())
	if err != nil {
		h.logger.Error("GET /dates - Failed to fetch dates: %v", err)
		handlers.RespondInternalError(w, msgInternal)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DatesResponse{Success: true, Data: dates})
}
