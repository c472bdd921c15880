package dialog

import (
	"context"
	"time"

	"github.com/damn-devil/bath.book/internal/domain"
	createBooking "github.com/damn-devil/bath.book/internal/usecase/create_booking"
	getAvailability "github.com/damn-devil/bath.book/internal/usecase/get_availability"
)

// AvailabilityUseCase интерфейс use case проверки доступности
type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

// CreateBookingUseCase интерфейс use case создания бронирования
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	Cancel(ctx context.Context, bookingID int64, requestingUserID int64) error
	ListUserBookings(ctx context.Context, userID int64) ([]*domain.Booking, error)
	ListSchedule(ctx context.Context) ([]*domain.ScheduleEntry, error)
}

// UserProvider интерфейс получения пользователя (для пола в проверке доступности)
type UserProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
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
