package get_dates

import (
	"context"

	"github.com/playgrid/SlotBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetDates(ctx context.Context) ([]models.DateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
