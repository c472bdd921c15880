package dayclock

import (
	"context"
	"fmt"
	"time"

	"github.com/damn-devil/bath.book/internal/domain"
	"github.com/damn-devil/bath.book/pkg/metrics"
	"github.com/damn-devil/bath.book/pkg/types"
)

// Service следит за сменой операционного дня и истечением прошедших слотов.
// Все бронирования живут внутри одного дня: при наступлении новой даты
// таблица бронирований очищается целиком, это жесткий сброс, а не окно.
type Service struct {
	bookingRepo  BookingRepository
	dayRepo      DayRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	metrics      *metrics.Metrics
	logger       Logger
}

// NewService создает новый экземпляр сервиса операционного дня
func NewService(
	bookingRepo BookingRepository,
	dayRepo DayRepository,
	txManager TransactionManager,
	m *metrics.Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		dayRepo:      dayRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		metrics:      m,
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (используется в тестах)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// EnsureCurrentDay сравнивает сохраненную дату операционного дня с сегодняшней.
// Если дата устарела, атомарно удаляет все бронирования и сдвигает дату:
// снаружи никогда не видно наполовину сброшенного состояния.
// Повторный вызов в тот же день — no-op.
func (s *Service) EnsureCurrentDay(ctx context.Context) error {
	now := s.timeProvider.Now()

	stored, err := s.dayRepo.Get(ctx)
	if err != nil {
		s.logger.Error("EnsureCurrentDay: failed to read operating day: %v", err)
		return fmt.Errorf("%w: EnsureCurrentDay - read day: %v", ErrStorageUnavailable, err)
	}

	if isSameDay(stored, now) {
		return nil
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Перечитываем под блокировкой: другой обработчик мог успеть сбросить день
		stored, err := s.dayRepo.Get(txCtx)
		if err != nil {
			return err
		}
		if isSameDay(stored, now) {
			return nil
		}

		if err := s.bookingRepo.DeleteAll(txCtx); err != nil {
			return err
		}

		return s.dayRepo.Advance(txCtx, truncateToDay(now))
	})

	if err != nil {
		s.logger.Error("EnsureCurrentDay: day reset failed: %v", err)
		return fmt.Errorf("%w: EnsureCurrentDay - reset day: %v", ErrStorageUnavailable, err)
	}

	s.metrics.RecordDayReset()
	s.logger.Info("EnsureCurrentDay: bookings cleared, operating day advanced to %s",
		now.Format(domain.DateFormat))

	return nil
}

// ExpirePassedBookings удаляет бронирования, слот которых строго раньше
// текущего времени суток. Возвращает количество удаленных строк.
// Количество логируется, наверх как ошибка не поднимается.
func (s *Service) ExpirePassedBookings(ctx context.Context) (int64, error) {
	now := types.NewTimeString(s.timeProvider.Now())

	removed, err := s.bookingRepo.DeleteExpired(ctx, now)
	if err != nil {
		s.logger.Error("ExpirePassedBookings: failed to delete expired bookings: %v", err)
		return 0, fmt.Errorf("%w: ExpirePassedBookings - delete expired: %v", ErrStorageUnavailable, err)
	}

	if removed > 0 {
		s.metrics.RecordBookingsExpired(removed)
		s.logger.Info("ExpirePassedBookings: removed %d passed booking(s) before %s", removed, now)
	}

	return removed, nil
}

// Refresh приводит состояние дня к актуальному: сброс устаревшего дня,
// затем удаление прошедших слотов. Обязателен перед каждой проверкой
// доступности и каждым листингом.
func (s *Service) Refresh(ctx context.Context) error {
	if err := s.EnsureCurrentDay(ctx); err != nil {
		return err
	}
	_, err := s.ExpirePassedBookings(ctx)
	return err
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
