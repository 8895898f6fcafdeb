package get_slots

import (
	"time"

	"github.com/playgrid/SlotBookingService/internal/domain"
	listSlots "github.com/playgrid/SlotBookingService/internal/usecase/list_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Success bool      `json:"success"`
	Data    SlotsData `json:"data"`
}

// SlotsData снимок слотов площадки на дату с агрегатами
type SlotsData struct {
	Venue          VenueResponse  `json:"venue"`
	Date           string         `json:"date"`
	Slots          []SlotSnapshot `json:"slots"`
	TotalSlots     int            `json:"totalSlots"`
	AvailableSlots int            `json:"availableSlots"`
	BookedSlots    int            `json:"bookedSlots"`
}

// VenueResponse площадка в HTTP ответе
type VenueResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SlotSnapshot слот в HTTP ответе
type SlotSnapshot struct {
	ID      string           `json:"id"`
	Time    string           `json:"time"`
	Booked  bool             `json:"booked"`
	Date    string           `json:"date"`
	Venue   VenueResponse    `json:"venue"`
	Booking *BookingResponse `json:"booking"` // null для свободных слотов
}

// BookingResponse денормализованное бронирование забронированного слота
type BookingResponse struct {
	ID        string `json:"id"`
	UserName  string `json:"userName"`
	Sport     string `json:"sport"`
	Timestamp string `json:"timestamp"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(venueID, dateStr string) (*listSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &listSlots.Request{
		VenueID: venueID,
		Date:    date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listSlots.Response) *SlotsResponse {
	venue := VenueResponse{ID: resp.Venue.ID, Name: resp.Venue.Name}

	slots := make([]SlotSnapshot, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		snapshot := SlotSnapshot{
			ID:     s.ID,
			Time:   s.Time.String(),
			Booked: s.Booked,
			Date:   s.Date.Format(domain.DateFormat),
			Venue:  VenueResponse{ID: s.Venue.ID, Name: s.Venue.Name},
		}

		if s.Booking != nil {
			snapshot.Booking = &BookingResponse{
				ID:        s.Booking.ID,
				UserName:  s.Booking.UserName,
				Sport:     s.Booking.Sport,
				Timestamp: s.Booking.CreatedAt.Format(time.RFC3339),
			}
		}

		slots = append(slots, snapshot)
	}

	return &SlotsResponse{
		Success: true,
		Data: SlotsData{
			Venue:          venue,
			Date:           resp.Date.Format(domain.DateFormat),
			Slots:          slots,
			TotalSlots:     resp.TotalSlots,
			AvailableSlots: resp.AvailableSlots,
			BookedSlots:    resp.BookedSlots,
		},
	}
}
