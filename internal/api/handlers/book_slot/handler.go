package book_slot

import (
	"errors"
	"net/http"
	"strings"

	"github.com/playgrid/SlotBookingService/internal/api/handlers"
	bookSlot "github.com/playgrid/SlotBookingService/internal/usecase/book_slot"
)

const (
	errInvalidBody   = "Invalid request body"
	errMissingFields = "Missing required fields"
	errInvalidInput  = "Invalid input"
	errSlotNotFound  = "Slot not found"
	errSlotBooked    = "Slot already booked"

	msgInvalidBody   = "Request body must be valid JSON"
	msgMissingFields = "user_name, sport, and slot_id are required"
	msgInvalidInput  = "user_name must be at most 100 characters and sport at most 50"
	msgSlotNotFound  = "The specified slot does not exist"
	msgSlotBooked    = "This slot has already been booked by someone else"
	msgInternal      = "Failed to create booking"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, errInvalidBody, msgInvalidBody)
		return
	}

	// Отсутствующие поля отсекаем до вызова use case,
	// чтобы отдать каноничное сообщение об ошибке
	if strings.TrimSpace(req.UserName) == "" ||
		strings.TrimSpace(req.Sport) == "" ||
		strings.TrimSpace(req.SlotID) == "" {
		h.logger.Warn("POST /book - Missing required fields")
		handlers.RespondBadRequest(w, errMissingFields, msgMissingFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		// отсутствующие поля уже отсечены выше, сюда доходят
		// только нарушения лимитов длины
		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /book - Invalid input: slot_id=%s: %v", req.SlotID, err)
			handlers.RespondBadRequest(w, errInvalidInput, msgInvalidInput)

		case errors.Is(err, bookSlot.ErrSlotNotFound):
			h.logger.Warn("POST /book - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, errSlotNotFound, msgSlotNotFound)

		case errors.Is(err, bookSlot.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /book - Slot already booked: slot_id=%s", req.SlotID)
			handlers.RespondConflict(w, errSlotBooked, msgSlotBooked)

		default:
			h.logger.Error("POST /book - Failed to create booking: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("POST /book - Booking created successfully: booking_id=%s, slot_id=%s",
		result.Booking.ID, result.Slot.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
