package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrUserNotFound возвращается, когда пользователь не зарегистрирован
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrGenderNotSet возвращается, когда у пользователя не указан пол.
	// Без пола бронирование невозможно: правило совместного размещения
	// не к чему применить.
	ErrGenderNotSet = errors.New("create_booking: user gender is not set")

	// ErrSlotInPast возвращается при попытке забронировать уже прошедшее время
	ErrSlotInPast = errors.New("create_booking: slot time has already passed")

	// ErrInsufficientCapacity возвращается, когда свободных кабин меньше,
	// чем запрошено (слот занят или гонка проиграна)
	ErrInsufficientCapacity = errors.New("create_booking: insufficient capacity")

	// ErrStorageUnavailable возвращается при недоступности хранилища
	ErrStorageUnavailable = errors.New("create_booking: storage unavailable")
)

// InsufficientCapacityError несет фактическое количество свободных кабин,
// чтобы вызывающий мог повторить запрос с меньшим количеством.
// Сопоставляется с ErrInsufficientCapacity через errors.Is.
type InsufficientCapacityError struct {
	Available int
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("create_booking: insufficient capacity, %d cabin(s) available", e.Available)
}

// Is позволяет errors.Is(err, ErrInsufficientCapacity)
func (e *InsufficientCapacityError) Is(target error) bool {
	return target == ErrInsufficientCapacity
}
