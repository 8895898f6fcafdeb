package book_slot

import (
	"fmt"
	"strings"

	"github.com/playgrid/SlotBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Имя и вид спорта проверяются после обрезки пробелов - строка из одних
// пробелов считается пустой.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.SlotID) == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}

	userName := strings.TrimSpace(req.UserName)
	if userName == "" {
		return fmt.Errorf("%w: userName is required", ErrInvalidInput)
	}
	if len(userName) > domain.MaxUserNameLength {
		return fmt.Errorf("%w: userName exceeds %d characters", ErrInvalidInput, domain.MaxUserNameLength)
	}

	sport := strings.TrimSpace(req.Sport)
	if sport == "" {
		return fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}
	if len(sport) > domain.MaxSportLength {
		return fmt.Errorf("%w: sport exceeds %d characters", ErrInvalidInput, domain.MaxSportLength)
	}

	return nil
}
