package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/damn-devil/bath.book/internal/domain"
	bookingRepo "github.com/damn-devil/bath.book/internal/infra/storage/booking"
	userRepo "github.com/damn-devil/bath.book/internal/infra/storage/user"
	"github.com/damn-devil/bath.book/pkg/metrics"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	dayClock     DayClock
	txManager    TransactionManager
	timeProvider TimeProvider
	metrics      *metrics.Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	dayClock DayClock,
	txManager TransactionManager,
	m *metrics.Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		dayClock:     dayClock,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		metrics:      m,
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (используется в тестах)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и запись выполняются в одной сериализуемой транзакции
// с блокировкой строк слота: два параллельных запроса на один слот не могут
// оба увидеть "одна кабина свободна" и оба записаться.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, slot=%s, cabins=%d", req.UserID, req.Slot, req.Cabins)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateSlotNotPassed(req.Slot, now); err != nil {
		uc.logger.Warn("CreateBooking: slot %s already passed", req.Slot)
		return nil, err
	}

	// 2. Приводим день к актуальному состоянию (сброс даты, снятие истекших)
	if err := uc.dayClock.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("%w: refresh day: %v", ErrStorageUnavailable, err)
	}

	// 3. Пол должен быть указан до обращения к проверке доступности:
	// сама функция доступности остается чистым предикатом без этой заботы
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user=%d not registered", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: get user: %v", ErrStorageUnavailable, err)
	}
	if !user.HasGender() {
		uc.logger.Warn("CreateBooking: user=%d has no gender set", req.UserID)
		return nil, ErrGenderNotSet
	}
	gender := *user.Gender

	var created []CreatedBooking
	var assigned []int

	// 4. Повторная проверка доступности в момент записи (re-check-then-act)
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		occupants, err := uc.bookingRepo.GetBySlot(txCtx, req.Slot)
		if err != nil {
			return fmt.Errorf("%w: get slot occupants: %w", ErrStorageUnavailable, err)
		}

		available := domain.AvailableCabins(occupants, gender)
		if available < req.Cabins {
			uc.logger.Warn("CreateBooking: slot %s has %d cabin(s) available, %d requested",
				req.Slot, available, req.Cabins)
			return &InsufficientCapacityError{Available: available}
		}

		cabins := domain.FreeCabinNumbers(occupants, req.Cabins)

		created = created[:0]
		assigned = assigned[:0]
		for _, cabin := range cabins {
			b := &domain.Booking{
				UserID:      req.UserID,
				Gender:      gender,
				TimeSlot:    req.Slot,
				CabinNumber: cabin,
			}

			if _, err := uc.bookingRepo.Create(txCtx, b); err != nil {
				return err
			}

			created = append(created, CreatedBooking{ID: b.ID, CabinNumber: b.CabinNumber})
			assigned = append(assigned, b.CabinNumber)
		}

		return nil
	})

	if err != nil {
		// Уникальный ключ (slot, cabin) — последний рубеж: проигранная гонка
		// возвращается как нехватка мест с фактическим остатком, не теряется
		if errors.Is(err, bookingRepo.ErrCabinTaken) {
			return nil, uc.lostRaceError(ctx, req, gender)
		}
		var capErr *InsufficientCapacityError
		if errors.As(err, &capErr) {
			return nil, capErr
		}
		if errors.Is(err, ErrStorageUnavailable) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction: %v", ErrStorageUnavailable, err)
	}

	uc.metrics.RecordBookingCreated()
	uc.logger.Info("CreateBooking: user=%d booked slot=%s, cabins=%v", req.UserID, req.Slot, assigned)

	return &Response{
		Slot:           req.Slot,
		AssignedCabins: assigned,
		Bookings:       created,
	}, nil
}

// lostRaceError формирует InsufficientCapacityError с фактическим остатком
// после проигранной гонки за пару (слот, кабина)
func (uc *UseCase) lostRaceError(ctx context.Context, req *Request, gender domain.Gender) error {
	available := 0
	if occupants, err := uc.bookingRepo.GetBySlot(ctx, req.Slot); err == nil {
		available = domain.AvailableCabins(occupants, gender)
	}

	uc.logger.Warn("CreateBooking: lost race for slot=%s, %d cabin(s) now available", req.Slot, available)
	return &InsufficientCapacityError{Available: available}
}
