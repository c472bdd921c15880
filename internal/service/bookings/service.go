package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/damn-devil/bath.book/internal/domain"
	bookingRepo "github.com/damn-devil/bath.book/internal/infra/storage/booking"
	"github.com/damn-devil/bath.book/pkg/metrics"
)

// Service сервис для работы с бронированиями: отмена и листинги
type Service struct {
	bookingRepo BookingRepository
	dayClock    DayClock
	metrics     *metrics.Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	dayClock DayClock,
	m *metrics.Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		dayClock:    dayClock,
		metrics:     m,
		logger:      logger,
	}
}

// Cancel отменяет бронирование по ID.
// Проверка владельца выполняется здесь, на стороне сервера: состоянию
// презентационного слоя (кнопкам, callback-данным) доверять нельзя.
func (s *Service) Cancel(ctx context.Context, bookingID int64, requestingUserID int64) error {
	s.logger.Info("Cancel: booking=%d requested by user=%d", bookingID, requestingUserID)

	if err := s.dayClock.Refresh(ctx); err != nil {
		return fmt.Errorf("%w: Cancel - refresh day: %v", ErrStorageUnavailable, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - get booking: %v", ErrStorageUnavailable, err)
	}

	if booking.UserID != requestingUserID {
		s.logger.Warn("Cancel: user=%d is not the owner of booking=%d", requestingUserID, bookingID)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.DeleteByID(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Успели удалить параллельно (истечение или повторная отмена)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: delete failed for booking=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - delete booking: %v", ErrStorageUnavailable, err)
	}

	s.metrics.RecordBookingCancelled()
	s.logger.Info("Cancel: booking=%d cancelled by user=%d", bookingID, requestingUserID)
	return nil
}

// ListUserBookings возвращает бронирования пользователя на сегодня,
// по возрастанию времени слота
func (s *Service) ListUserBookings(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	if err := s.dayClock.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("%w: ListUserBookings - refresh day: %v", ErrStorageUnavailable, err)
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("ListUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListUserBookings - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("ListUserBookings: %d booking(s) for user=%d", len(bookings), userID)
	return bookings, nil
}

// ListSchedule возвращает общее расписание на сегодня: все бронирования
// с полом и именем владельца, по возрастанию времени слота
func (s *Service) ListSchedule(ctx context.Context) ([]*domain.ScheduleEntry, error) {
	if err := s.dayClock.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("%w: ListSchedule - refresh day: %v", ErrStorageUnavailable, err)
	}

	entries, err := s.bookingRepo.ListSchedule(ctx)
	if err != nil {
		s.logger.Error("ListSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSchedule - repository error: %v", ErrStorageUnavailable, err)
	}

	return entries, nil
}
