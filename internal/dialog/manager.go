package dialog

import (
	"context"
	"errors"
	"fmt"

	"github.com/damn-devil/bath.book/internal/domain"
	"github.com/damn-devil/bath.book/internal/service/users"
	createBooking "github.com/damn-devil/bath.book/internal/usecase/create_booking"
	getAvailability "github.com/damn-devil/bath.book/internal/usecase/get_availability"
)

// Reply результат обработки действия диалога
type Reply struct {
	State           State
	AvailableCabins int                     // заполнено после SubmitSlot
	AssignedCabins  []int                   // заполнено после ConfirmCabins
	UserBookings    []*domain.Booking       // заполнено после RefreshList(mine)
	Schedule        []*domain.ScheduleEntry // заполнено после RefreshList(all)
}

// Manager конечный автомат диалога бронирования, ключ — userID.
// Idle -> AwaitingSlot -> AwaitingCabinCount -> Idle (committed/cancelled).
// Состояние диалога живет в SessionStore и не смешивается с данными бронирований.
type Manager struct {
	store        *SessionStore
	availability AvailabilityUseCase
	creator      CreateBookingUseCase
	bookings     BookingService
	userProvider UserProvider
	logger       Logger
}

// NewManager создает новый менеджер диалогов
func NewManager(
	store *SessionStore,
	availability AvailabilityUseCase,
	creator CreateBookingUseCase,
	bookings BookingService,
	userProvider UserProvider,
	logger Logger,
) *Manager {
	return &Manager{
		store:        store,
		availability: availability,
		creator:      creator,
		bookings:     bookings,
		userProvider: userProvider,
		logger:       logger,
	}
}

// Handle обрабатывает действие пользователя.
// Команды меню (CancelBooking, RefreshList), пришедшие посреди диалога,
// прерывают его и возвращают пользователя в Idle.
func (m *Manager) Handle(ctx context.Context, userID int64, action Action) (*Reply, error) {
	sess := m.store.Get(userID)

	switch a := action.(type) {
	case StartBooking:
		return m.handleStart(ctx, sess)

	case SubmitSlot:
		return m.handleSlot(ctx, sess, a)

	case ConfirmCabins:
		return m.handleConfirm(ctx, sess, a)

	case CancelBooking:
		m.store.Reset(userID)
		if err := m.bookings.Cancel(ctx, a.BookingID, userID); err != nil {
			return nil, err
		}
		return &Reply{State: StateIdle}, nil

	case RefreshList:
		m.store.Reset(userID)
		return m.handleList(ctx, userID, a)

	case Back:
		m.store.Reset(userID)
		m.logger.Info("Dialog: user=%d aborted dialogue", userID)
		return &Reply{State: StateIdle}, nil

	default:
		return nil, fmt.Errorf("%w: unknown action %T", ErrUnexpectedAction, action)
	}
}

func (m *Manager) handleStart(ctx context.Context, sess *Session) (*Reply, error) {
	user, err := m.userProvider.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.HasGender() {
		m.logger.Warn("Dialog: user=%d started booking without gender", sess.UserID)
		return nil, ErrGenderNotSet
	}

	sess.State = StateAwaitingSlot
	sess.Slot = ""
	sess.Available = 0
	m.store.Put(sess)

	return &Reply{State: StateAwaitingSlot}, nil
}

func (m *Manager) handleSlot(ctx context.Context, sess *Session, a SubmitSlot) (*Reply, error) {
	if sess.State != StateAwaitingSlot {
		return nil, fmt.Errorf("%w: SubmitSlot in state %s", ErrUnexpectedAction, sess.State)
	}

	user, err := m.userProvider.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if !user.HasGender() {
		return nil, ErrGenderNotSet
	}

	resp, err := m.availability.Execute(ctx, &getAvailability.Request{
		Slot:   a.Slot,
		Gender: *user.Gender,
	})
	if err != nil {
		return nil, err
	}

	// Переход дальше только при ненулевой доступности; иначе пользователь
	// остается на выборе времени
	if resp.AvailableCabins == 0 {
		m.logger.Info("Dialog: user=%d slot=%s unavailable", sess.UserID, a.Slot)
		return nil, ErrSlotUnavailable
	}

	sess.State = StateAwaitingCabinCount
	sess.Slot = a.Slot
	sess.Available = resp.AvailableCabins
	m.store.Put(sess)

	return &Reply{State: StateAwaitingCabinCount, AvailableCabins: resp.AvailableCabins}, nil
}

func (m *Manager) handleConfirm(ctx context.Context, sess *Session, a ConfirmCabins) (*Reply, error) {
	if sess.State != StateAwaitingCabinCount {
		return nil, fmt.Errorf("%w: ConfirmCabins in state %s", ErrUnexpectedAction, sess.State)
	}

	resp, err := m.creator.Execute(ctx, &createBooking.Request{
		UserID: sess.UserID,
		Slot:   sess.Slot,
		Cabins: a.Count,
	})
	if err != nil {
		// Некорректное количество и проигранная гонка восстанавливаются локально:
		// диалог остается на подтверждении, вызывающий повторяет с другим количеством
		if errors.Is(err, createBooking.ErrInsufficientCapacity) ||
			errors.Is(err, createBooking.ErrInvalidInput) {
			return nil, err
		}
		m.store.Reset(sess.UserID)
		return nil, err
	}

	m.store.Reset(sess.UserID)
	m.logger.Info("Dialog: user=%d committed slot=%s cabins=%v", sess.UserID, resp.Slot, resp.AssignedCabins)

	return &Reply{State: StateIdle, AssignedCabins: resp.AssignedCabins}, nil
}

func (m *Manager) handleList(ctx context.Context, userID int64, a RefreshList) (*Reply, error) {
	switch a.Kind {
	case ListKindMine:
		bookings, err := m.bookings.ListUserBookings(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &Reply{State: StateIdle, UserBookings: bookings}, nil

	case ListKindAll:
		entries, err := m.bookings.ListSchedule(ctx)
		if err != nil {
			return nil, err
		}
		return &Reply{State: StateIdle, Schedule: entries}, nil

	default:
		return nil, fmt.Errorf("%w: unknown list kind %q", ErrUnexpectedAction, a.Kind)
	}
}
