package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeFormat формат времени слота (24 часа)
const TimeFormat = "15:04"

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

// TimeString время в формате "HH:MM" (например, "09:00", "14:30").
// Хранится как текст: лексикографический порядок совпадает с хронологическим,
// поэтому ORDER BY по колонке с TimeString даёт корректную сортировку по времени.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// String возвращает строковое представление
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero возвращает true, если время не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет формат времени
func (ts TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, ts)
	}
	return nil
}

// AddMinutes возвращает время, увеличенное на m минут.
// Возвращает ошибку при выходе за пределы суток.
func (ts TimeString) AddMinutes(m int) (TimeString, error) {
	t, err := time.Parse(TimeFormat, string(ts))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, ts)
	}

	result := t.Add(time.Duration(m) * time.Minute)

	// time.Parse даёт дату 0000-01-01, переход на следующий день означает переполнение
	if result.Day() != t.Day() {
		return "", fmt.Errorf("types: time %q + %d minutes is out of day range", ts, m)
	}

	return NewTimeString(result), nil
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}
