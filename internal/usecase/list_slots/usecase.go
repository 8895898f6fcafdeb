package list_slots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/playgrid/SlotBookingService/internal/domain"
	venueRepo "github.com/playgrid/SlotBookingService/internal/infra/storage/venue"
)

// UseCase use case получения слотов площадки на дату
type UseCase struct {
	venueRepo VenueRepository
	slotRepo  SlotRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(venueRepo VenueRepository, slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		venueRepo: venueRepo,
		slotRepo:  slotRepo,
		logger:    logger,
	}
}

// Execute возвращает снимок слотов площадки на дату.
// Чтение нетранзакционное: бронирования, зафиксированные после начала
// чтения, могут быть не видны, но каждый слот в ответе внутренне
// консистентен - забронированный слот всегда приходит со своим бронированием.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListSlots: venue=%s, date=%s", req.VenueID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ListSlots: validation failed: %v", err)
		return nil, err
	}

	// Площадка должна существовать
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("ListSlots: venue=%s not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("ListSlots: failed to get venue=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// Один запрос с LEFT JOIN бронирований, сортировка по времени
	slots, err := uc.slotRepo.ListByVenueAndDate(ctx, req.VenueID, req.Date)
	if err != nil {
		uc.logger.Error("ListSlots: failed to list slots for venue=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	resp := &Response{
		Venue: VenueData{ID: venue.ID, Name: venue.Name},
		Date:  req.Date,
		Slots: make([]SlotSnapshot, 0, len(slots)),
	}

	// Счётчики считаем по тому же списку, который отдаём
	for _, s := range slots {
		snapshot := SlotSnapshot{
			ID:     s.ID,
			Time:   s.Time,
			Booked: s.Booked,
			Date:   s.Date,
			Venue:  VenueData{ID: venue.ID, Name: venue.Name},
		}

		if s.Booked {
			if s.Booking != nil {
				snapshot.Booking = &BookingData{
					ID:        s.Booking.ID,
					UserName:  s.Booking.UserName,
					Sport:     s.Booking.Sport,
					CreatedAt: s.Booking.CreatedAt,
				}
			}
			resp.BookedSlots++
		} else {
			resp.AvailableSlots++
		}

		resp.Slots = append(resp.Slots, snapshot)
	}

	resp.TotalSlots = len(resp.Slots)

	uc.logger.Info("ListSlots: venue=%s, date=%s: %d slots (%d available, %d booked)",
		req.VenueID, req.Date.Format(domain.DateFormat), resp.TotalSlots, resp.AvailableSlots, resp.BookedSlots)

	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.VenueID) == "" {
		return fmt.Errorf("%w: venueID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
