package list_slots

import (
	"time"

	"github.com/playgrid/SlotBookingService/pkg/types"
)

// Request модель запроса списка слотов площадки на дату
type Request struct {
	VenueID string
	Date    time.Time
}

// Response снимок состояния слотов площадки на дату.
// Счётчики вычисляются из того же списка, что и Slots, - между списком
// и агрегатами не бывает расхождения.
type Response struct {
	Venue          VenueData
	Date           time.Time
	Slots          []SlotSnapshot
	TotalSlots     int
	AvailableSlots int
	BookedSlots    int
}

// VenueData площадка, которой принадлежат слоты
type VenueData struct {
	ID   string
	Name string
}

// SlotSnapshot состояние одного слота на момент чтения
type SlotSnapshot struct {
	ID      string
	Time    types.TimeString
	Booked  bool
	Date    time.Time
	Venue   VenueData
	Booking *BookingData // nil для свободных слотов
}

// BookingData денормализованное бронирование забронированного слота
type BookingData struct {
	ID        string
	UserName  string
	Sport     string
	CreatedAt time.Time
}
