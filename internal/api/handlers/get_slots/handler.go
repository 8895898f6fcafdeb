package get_slots

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/playgrid/SlotBookingService/internal/api/handlers"
	listSlots "github.com/playgrid/SlotBookingService/internal/usecase/list_slots"
)

const (
	errMissingParams = "Missing required parameters"
	errInvalidDate   = "Invalid date format"
	errVenueNotFound = "Venue not found"

	msgMissingParams = "Both 'venue' and 'date' query parameters are required"
	msgInvalidDate   = "Date must be in YYYY-MM-DD format"
	msgVenueNotFound = "The specified venue does not exist"
	msgInternal      = "Failed to fetch slots"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Handler struct {
	useCase ListSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ListSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/slots?venue=<id>&date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := r.URL.Query().Get("venue")
	dateStr := r.URL.Query().Get("date")

	if venueID == "" || dateStr == "" {
		h.logger.Warn("GET /slots - Missing required parameters")
		handlers.RespondBadRequest(w, errMissingParams, msgMissingParams)
		return
	}

	// Проверяем и шаблон, и календарную корректность
	// ("2025-02-30" проходит regex, но не парсится)
	if !dateRegex.MatchString(dateStr) {
		h.logger.Warn("GET /slots - Invalid date format: date=%s", dateStr)
		handlers.RespondBadRequest(w, errInvalidDate, msgInvalidDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(venueID, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date: date=%s: %v", dateStr, err)
		handlers.RespondBadRequest(w, errInvalidDate, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, listSlots.ErrVenueNotFound):
			h.logger.Warn("GET /slots - Venue not found: venue=%s", venueID)
			handlers.RespondNotFound(w, errVenueNotFound, msgVenueNotFound)

		case errors.Is(err, listSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: venue=%s, date=%s: %v", venueID, dateStr, err)
			handlers.RespondBadRequest(w, errMissingParams, msgMissingParams)

		default:
			h.logger.Error("GET /slots - Failed to fetch slots: venue=%s, date=%s, error=%v",
				venueID, dateStr, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved successfully: venue=%s, date=%s, slots_count=%d",
		venueID, dateStr, result.TotalSlots)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
