package get_user_bookings

import (
	"context"

	"github.com/damn-devil/bath.book/internal/domain"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	ListUserBookings(ctx context.Context, userID int64) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
