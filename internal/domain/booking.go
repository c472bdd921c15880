package domain

import (
	"time"

	"github.com/damn-devil/bath.book/pkg/types"
)

// Booking бронирование одной душевой кабины на временной слот текущего дня.
// Пол владельца денормализован в строку бронирования: проверке доступности
// слота не нужно ходить за пользователями.
type Booking struct {
	ID          int64
	UserID      int64
	Gender      Gender
	TimeSlot    types.TimeString
	CabinNumber int
	CreatedAt   time.Time
}

// ScheduleEntry строка общего расписания на день
type ScheduleEntry struct {
	TimeSlot    types.TimeString
	CabinNumber int
	Gender      Gender
	DisplayName string
}
