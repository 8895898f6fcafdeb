package book_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не существует
	ErrSlotNotFound = errors.New("book_slot: slot not found")

	// ErrSlotAlreadyBooked возвращается, когда слот уже забронирован.
	// Это штатный бизнес-исход при конкуренции за слот, не ошибка системы;
	// повторная попытка не выполняется - выбор другого слота за вызывающим.
	ErrSlotAlreadyBooked = errors.New("book_slot: slot already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при инфраструктурных ошибках (БД недоступна,
	// сбой транзакции). Частичных эффектов при этом не остаётся.
	ErrInternal = errors.New("book_slot: internal error")
)
