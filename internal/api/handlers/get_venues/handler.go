package get_venues

import (
	"net/http"

	"github.com/playgrid/SlotBookingService/internal/api/handlers"
	"github.com/playgrid/SlotBookingService/internal/service/catalog/models"
)

const msgInternal = "Failed to fetch venues"

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

// VenuesResponse HTTP response model
type VenuesResponse struct {
	Success bool                   `json:"success"`
	Data    []models.VenueResponse `json:"data"`
}

// Handle GET /api/getVenues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venues, err := h.catalog.GetVenues(r.Context())
	if err != nil {
		h.logger.Error("GET /getVenues - Failed to fetch venues: %v", err)
		handlers.RespondInternalError(w, msgInternal)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, VenuesResponse{Success: true, Data: venues})
}
