package get_slots

import (
	"context"

	listSlots "github.com/playgrid/SlotBookingService/internal/usecase/list_slots"
)

type ListSlotsUseCase interface {
	Execute(ctx context.Context, req *listSlots.Request) (*listSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
