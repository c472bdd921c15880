package bookings

import (
	"context"

	"github.com/damn-devil/bath.book/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error)
	ListSchedule(ctx context.Context) ([]*domain.ScheduleEntry, error)
	DeleteByID(ctx context.Context, id int64) error
}

// DayClock интерфейс политики операционного дня.
// Refresh обязателен перед каждым чтением: результаты должны отражать
// только действующие на текущий момент бронирования.
type DayClock interface {
	Refresh(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
