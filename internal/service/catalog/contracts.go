package catalog

import (
	"context"

	"github.com/playgrid/SlotBookingService/internal/domain"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	ListAll(ctx context.Context) ([]*domain.Venue, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListDates(ctx context.Context) ([]domain.SlotDate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
