package list_slots

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не существует
	ErrVenueNotFound = errors.New("list_slots: venue not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("list_slots: invalid input data")

	// ErrInternal возвращается при инфраструктурных ошибках
	ErrInternal = errors.New("list_slots: internal error")
)
