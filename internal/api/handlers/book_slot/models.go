package book_slot

import (
	"time"

	"github.com/playgrid/SlotBookingService/internal/domain"
	bookSlot "github.com/playgrid/SlotBookingService/internal/usecase/book_slot"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	UserName string `json:"user_name"`
	Sport    string `json:"sport"`
	SlotID   string `json:"slot_id"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSlotRequest) ToUseCaseRequest() *bookSlot.Request {
	return &bookSlot.Request{
		SlotID:   r.SlotID,
		UserName: r.UserName,
		Sport:    r.Sport,
	}
}

// BookSlotResponse HTTP response model
type BookSlotResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    BookSlotData `json:"data"`
}

// BookSlotData созданное бронирование и обновленный слот
type BookSlotData struct {
	Booking BookingResponse `json:"booking"`
	Slot    SlotResponse    `json:"slot"`
}

// BookingResponse бронирование в HTTP ответе
type BookingResponse struct {
	ID        string `json:"id"`
	UserName  string `json:"userName"`
	Sport     string `json:"sport"`
	SlotID    string `json:"slotId"`
	Timestamp string `json:"timestamp"`
}

// SlotResponse слот в HTTP ответе
type SlotResponse struct {
	ID     string        `json:"id"`
	Date   string        `json:"date"`
	Time   string        `json:"time"`
	Booked bool          `json:"booked"`
	Venue  VenueResponse `json:"venue"`
}

// VenueResponse площадка в HTTP ответе
type VenueResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *BookSlotResponse {
	return &BookSlotResponse{
		Success: true,
		Message: "Booking created successfully",
		Data: BookSlotData{
			Booking: BookingResponse{
				ID:        resp.Booking.ID,
				UserName:  resp.Booking.UserName,
				Sport:     resp.Booking.Sport,
				SlotID:    resp.Booking.SlotID,
				Timestamp: resp.Booking.CreatedAt.Format(time.RFC3339),
			},
			Slot: SlotResponse{
				ID:     resp.Slot.ID,
				Date:   resp.Slot.Date.Format(domain.DateFormat),
				Time:   resp.Slot.Time.String(),
				Booked: resp.Slot.Booked,
				Venue: VenueResponse{
					ID:   resp.Slot.VenueID,
					Name: resp.Slot.VenueName,
				},
			},
		},
	}
}
