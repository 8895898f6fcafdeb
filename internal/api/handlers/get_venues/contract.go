package get_venues

import (
	"context"

	"github.com/playgrid/SlotBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetVenues(ctx context.Context) ([]models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
