package get_sports

import (
	"context"

	"github.com/playgrid/SlotBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetSports(ctx context.Context) ([]models.SportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
