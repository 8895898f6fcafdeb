package list_slots

import (
	"context"
	"time"

	"github.com/playgrid/SlotBookingService/internal/domain"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListByVenueAndDate(ctx context.Context, venueID string, date time.Time) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
