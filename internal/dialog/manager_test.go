package dialog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damn-devil/bath.book/internal/domain"
	"github.com/damn-devil/bath.book/internal/service/users"
	createBooking "github.com/damn-devil/bath.book/internal/usecase/create_booking"
	getAvailability "github.com/damn-devil/bath.book/internal/usecase/get_availability"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeAvailability struct {
	available int
	err       error
}

func (f *fakeAvailability) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &getAvailability.Response{
		Slot:            req.Slot,
		AvailableCabins: f.available,
		TotalCabins:     domain.TotalCabins,
	}, nil
}

type fakeCreator struct {
	err     error
	lastReq *createBooking.Request
}

func (f *fakeCreator) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &createBooking.Response{
		Slot:           req.Slot,
		AssignedCabins: []int{1},
		Bookings:       []createBooking.CreatedBooking{{ID: 1, CabinNumber: 1}},
	}, nil
}

type fakeBookings struct {
	cancelErr  error
	cancelled  []int64
	myBookings []*domain.Booking
	schedule   []*domain.ScheduleEntry
}

func (f *fakeBookings) Cancel(_ context.Context, bookingID int64, _ int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, bookingID)
	return nil
}

func (f *fakeBookings) ListUserBookings(_ context.Context, _ int64) ([]*domain.Booking, error) {
	return f.myBookings, nil
}

func (f *fakeBookings) ListSchedule(_ context.Context) ([]*domain.ScheduleEntry, error) {
	return f.schedule, nil
}

type fakeUserProvider struct {
	users map[int64]*domain.User
}

func (f *fakeUserProvider) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return u, nil
}

func genderPtr(g domain.Gender) *domain.Gender {
	return &g
}

type testEnv struct {
	store        *SessionStore
	availability *fakeAvailability
	creator      *fakeCreator
	bookings     *fakeBookings
	manager      *Manager
}

func newTestEnv() *testEnv {
	env := &testEnv{
		store:        NewSessionStore(15 * time.Minute),
		availability: &fakeAvailability{available: 2},
		creator:      &fakeCreator{},
		bookings:     &fakeBookings{},
	}
	provider := &fakeUserProvider{users: map[int64]*domain.User{
		1: {ID: 1, DisplayName: "Иван", Gender: genderPtr(domain.GenderMale)},
		4: {ID: 4, DisplayName: "Новичок", Gender: nil},
	}}
	env.manager = NewManager(env.store, env.availability, env.creator, env.bookings, provider, nopLogger{})
	return env
}

func TestHandle_FullBookingFlow(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	// Idle -> AwaitingSlot
	reply, err := env.manager.Handle(ctx, 1, StartBooking{})
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingSlot, reply.State)

	// AwaitingSlot -> AwaitingCabinCount
	reply, err = env.manager.Handle(ctx, 1, SubmitSlot{Slot: "14:30"})
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingCabinCount, reply.State)
	assert.Equal(t, 2, reply.AvailableCabins)

	// AwaitingCabinCount -> Idle (committed)
	reply, err = env.manager.Handle(ctx, 1, ConfirmCabins{Count: 1})
	require.NoError(t, err)
	assert.Equal(t, StateIdle, reply.State)
	assert.Equal(t, []int{1}, reply.AssignedCabins)

	require.NotNil(t, env.creator.lastReq)
	assert.Equal(t, int64(1), env.creator.lastReq.UserID)
	assert.Equal(t, "14:30", env.creator.lastReq.Slot.String(), "slot is taken from the session, not the request")

	// Диалог завершен: повторное подтверждение уже вне контекста
	_, err = env.manager.Handle(ctx, 1, ConfirmCabins{Count: 1})
	assert.ErrorIs(t, err, ErrUnexpectedAction)
}

func TestHandle_StartWithoutGender(t *testing.T) {
	env := newTestEnv()

	_, err := env.manager.Handle(context.Background(), 4, StartBooking{})
	assert.ErrorIs(t, err, ErrGenderNotSet)

	sess := env.store.Get(4)
	assert.Equal(t, StateIdle, sess.State, "dialogue is not started")
}

func TestHandle_StartUnknownUser(t *testing.T) {
	env := newTestEnv()

	_, err := env.manager.Handle(context.Background(), 99, StartBooking{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestHandle_SlotOutOfOrder(t *testing.T) {
	env := newTestEnv()

	_, err := env.manager.Handle(context.Background(), 1, SubmitSlot{Slot: "14:30"})
	assert.ErrorIs(t, err, ErrUnexpectedAction)
}

func TestHandle_SlotUnavailable(t *testing.T) {
	env := newTestEnv()
	env.availability.available = 0
	ctx := context.Background()

	_, err := env.manager.Handle(ctx, 1, StartBooking{})
	require.NoError(t, err)

	_, err = env.manager.Handle(ctx, 1, SubmitSlot{Slot: "14:30"})
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// Пользователь остается на выборе времени и может прислать другой слот
	env.availability.available = 1
	reply, err := env.manager.Handle(ctx, 1, SubmitSlot{Slot: "15:00"})
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingCabinCount, reply.State)
	assert.Equal(t, 1, reply.AvailableCabins)
}

func TestHandle_ConfirmLostRace(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.manager.Handle(ctx, 1, StartBooking{})
	require.NoError(t, err)
	_, err = env.manager.Handle(ctx, 1, SubmitSlot{Slot: "14:30"})
	require.NoError(t, err)

	env.creator.err = &createBooking.InsufficientCapacityError{Available: 1}
	_, err = env.manager.Handle(ctx, 1, ConfirmCabins{Count: 2})
	assert.ErrorIs(t, err, createBooking.ErrInsufficientCapacity)

	// Сессия не сброшена: можно повторить с меньшим количеством
	env.creator.err = nil
	reply, err := env.manager.Handle(ctx, 1, ConfirmCabins{Count: 1})
	require.NoError(t, err)
	assert.Equal(t, StateIdle, reply.State)
}

func TestHandle_ConfirmInvalidCount(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.manager.Handle(ctx, 1, StartBooking{})
	require.NoError(t, err)
	_, err = env.manager.Handle(ctx, 1, SubmitSlot{Slot: "14:30"})
	require.NoError(t, err)

	env.creator.err = createBooking.ErrInvalidInput
	_, err = env.manager.Handle(ctx, 1, ConfirmCabins{Count: 3})
	assert.ErrorIs(t, err, createBooking.ErrInvalidInput)

	// Диалог пережил ошибку валидации: корректное количество проходит
	env.creator.err = nil
	reply, err := env.manager.Handle(ctx, 1, ConfirmCabins{Count: 1})
	require.NoError(t, err)
	assert.Equal(t, StateIdle, reply.State)
	assert.Equal(t, []int{1}, reply.AssignedCabins)
}

func TestHandle_MenuCommandAbortsDialogue(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.manager.Handle(ctx, 1, StartBooking{})
	require.NoError(t, err)
	_, err = env.manager.Handle(ctx, 1, SubmitSlot{Slot: "14:30"})
	require.NoError(t, err)

	// Команда меню посреди диалога прерывает его
	reply, err := env.manager.Handle(ctx, 1, CancelBooking{BookingID: 10})
	require.NoError(t, err)
	assert.Equal(t, StateIdle, reply.State)
	assert.Equal(t, []int64{10}, env.bookings.cancelled)

	_, err = env.manager.Handle(ctx, 1, ConfirmCabins{Count: 1})
	assert.ErrorIs(t, err, ErrUnexpectedAction, "the interrupted dialogue is gone")
}

func TestHandle_Back(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.manager.Handle(ctx, 1, StartBooking{})
	require.NoError(t, err)

	reply, err := env.manager.Handle(ctx, 1, Back{})
	require.NoError(t, err)
	assert.Equal(t, StateIdle, reply.State)
	assert.Equal(t, StateIdle, env.store.Get(1).State)
}

func TestHandle_RefreshList(t *testing.T) {
	env := newTestEnv()
	env.bookings.myBookings = []*domain.Booking{
		{ID: 10, UserID: 1, TimeSlot: "14:30", CabinNumber: 1},
	}
	env.bookings.schedule = []*domain.ScheduleEntry{
		{TimeSlot: "14:30", CabinNumber: 1, Gender: domain.GenderMale, DisplayName: "Иван"},
	}
	ctx := context.Background()

	reply, err := env.manager.Handle(ctx, 1, RefreshList{Kind: ListKindMine})
	require.NoError(t, err)
	assert.Len(t, reply.UserBookings, 1)

	reply, err = env.manager.Handle(ctx, 1, RefreshList{Kind: ListKindAll})
	require.NoError(t, err)
	assert.Len(t, reply.Schedule, 1)

	_, err = env.manager.Handle(ctx, 1, RefreshList{Kind: "bogus"})
	assert.ErrorIs(t, err, ErrUnexpectedAction)
}
