package dayclock

import (
	"context"
	"time"

	"github.com/damn-devil/bath.book/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	DeleteAll(ctx context.Context) error
	DeleteExpired(ctx context.Context, now types.TimeString) (int64, error)
}

// DayRepository интерфейс репозитория операционного дня
type DayRepository interface {
	Get(ctx context.Context) (time.Time, error)
	Advance(ctx context.Context, day time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
