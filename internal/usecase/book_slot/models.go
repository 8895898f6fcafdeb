package book_slot

import (
	"time"

	"github.com/playgrid/SlotBookingService/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	SlotID   string // ID слота
	UserName string // Имя игрока (денормализуется в бронирование)
	Sport    string // Вид спорта
}

// Response модель ответа с созданным бронированием и обновленным слотом
type Response struct {
	Booking BookingData
	Slot    SlotData
}

// BookingData созданное бронирование
type BookingData struct {
	ID        string
	UserName  string
	Sport     string
	SlotID    string
	CreatedAt time.Time
}

// SlotData слот после бронирования, вместе с площадкой
type SlotData struct {
	ID        string
	VenueID   string
	VenueName string
	Date      time.Time
	Time      types.TimeString
	Booked    bool
}
