package get_schedule

import (
	"context"

	"github.com/damn-devil/bath.book/internal/domain"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	ListSchedule(ctx context.Context) ([]*domain.ScheduleEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
