package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeFormat формат времени слота (HH:MM)
const TimeFormat = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")
)

// TimeString время в формате "HH:MM" (минутная точность)
// Хранится как текст, чтобы совпадать с представлением в БД.
// Нулевая паддинг-форма ("08:05") сравнивается лексикографически корректно.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только час и минуту)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	// Нормализуем к каноничному виду ("8:05" -> парсинг не пройдет, "08:05" останется)
	return TimeString(t.Format(TimeFormat)), nil
}

// Validate проверяет, что значение является корректным временем "HH:MM"
func (ts TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// IsZero возвращает true, если значение пустое
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// String возвращает строковое представление времени
func (ts TimeString) String() string {
	return string(ts)
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}
