package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/playgrid/SlotBookingService/internal/domain"
	slotRepo "github.com/playgrid/SlotBookingService/internal/infra/storage/slot"
)

// UseCase use case бронирования слота
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет бронирование слота.
//
// Проверка и захват слота выполняются в одной транзакции: состояние booked
// перечитывается внутри транзакции под блокировкой строки (не из более
// раннего чтения), переход booked=false -> true делается условным
// обновлением с проверкой числа затронутых строк, и запись бронирования
// вставляется в той же транзакции. Транзакция идёт на READ COMMITTED:
// проигравший конкурент, дождавшись блокировки, перечитывает строку с
// booked=true и получает штатный отказ. Из N конкурентных попыток на один
// слот зафиксируется ровно одна; остальные получат ErrSlotAlreadyBooked.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: slot=%s, user=%q, sport=%q", req.SlotID, req.UserName, req.Sport)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	var (
		bookedSlot     *domain.Slot
		createdBooking *domain.Booking
	)

	// 2. Проверка и захват слота в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Перечитываем слот внутри транзакции (с блокировкой строки)
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 2.2. Уже забронирован - откатываемся со штатным отказом
		if slot.Booked {
			return ErrSlotAlreadyBooked
		}

		// 2.3. Условный переход booked=false -> true
		if err := uc.slotRepo.MarkBooked(txCtx, slot.ID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotAlreadyBooked) {
				return ErrSlotAlreadyBooked
			}
			return fmt.Errorf("%w: failed to mark slot booked: %v", ErrInternal, err)
		}

		// 2.4. Вставляем бронирование в той же транзакции
		booking, err := uc.bookingRepo.Create(txCtx, domain.NewBooking(slot.ID, req.UserName, req.Sport))
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		slot.Booked = true
		bookedSlot = slot
		createdBooking = booking
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			uc.logger.Warn("BookSlot: slot=%s not found", req.SlotID)
		case errors.Is(err, ErrSlotAlreadyBooked):
			uc.logger.Warn("BookSlot: slot=%s already booked", req.SlotID)
		case errors.Is(err, ErrInternal):
			uc.logger.Error("BookSlot: slot=%s: %v", req.SlotID, err)
		default:
			// ошибка самого менеджера транзакций (begin/commit)
			uc.logger.Error("BookSlot: slot=%s: transaction failed: %v", req.SlotID, err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("BookSlot: successfully booked slot=%s, booking=%s", bookedSlot.ID, createdBooking.ID)

	return &Response{
		Booking: BookingData{
			ID:        createdBooking.ID,
			UserName:  createdBooking.UserName,
			Sport:     createdBooking.Sport,
			SlotID:    createdBooking.SlotID,
			CreatedAt: createdBooking.CreatedAt,
		},
		Slot: SlotData{
			ID:        bookedSlot.ID,
			VenueID:   bookedSlot.VenueID,
			VenueName: bookedSlot.Venue.Name,
			Date:      bookedSlot.Date,
			Time:      bookedSlot.Time,
			Booked:    bookedSlot.Booked,
		},
	}, nil
}
