package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damn-devil/bath.book/internal/domain"
	bookingRepo "github.com/damn-devil/bath.book/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	schedule []*domain.ScheduleEntry
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) ListSchedule(_ context.Context) ([]*domain.ScheduleEntry, error) {
	return f.schedule, nil
}

func (f *fakeBookingRepo) DeleteByID(_ context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

type fakeDayClock struct {
	refreshed int
	err       error
}

func (f *fakeDayClock) Refresh(_ context.Context) error {
	f.refreshed++
	return f.err
}

func newTestService(repo *fakeBookingRepo, clock *fakeDayClock) *Service {
	return NewService(repo, clock, nil, nopLogger{})
}

func TestCancel_Success(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		10: {ID: 10, UserID: 1, Gender: domain.GenderMale, TimeSlot: "14:30", CabinNumber: 1},
	}}
	clock := &fakeDayClock{}
	svc := newTestService(repo, clock)

	require.NoError(t, svc.Cancel(context.Background(), 10, 1))
	assert.Empty(t, repo.bookings, "booking is removed")
	assert.Equal(t, 1, clock.refreshed, "day state is refreshed before the check")
}

func TestCancel_NotOwner(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		10: {ID: 10, UserID: 1, Gender: domain.GenderMale, TimeSlot: "14:30", CabinNumber: 1},
	}}
	svc := newTestService(repo, &fakeDayClock{})

	err := svc.Cancel(context.Background(), 10, 2)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Len(t, repo.bookings, 1, "foreign booking stays")
}

func TestCancel_NotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}}, &fakeDayClock{})

	err := svc.Cancel(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_RefreshFailure(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		10: {ID: 10, UserID: 1, Gender: domain.GenderMale, TimeSlot: "14:30", CabinNumber: 1},
	}}
	svc := newTestService(repo, &fakeDayClock{err: errors.New("db down")})

	err := svc.Cancel(context.Background(), 10, 1)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Len(t, repo.bookings, 1)
}

func TestListUserBookings(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		10: {ID: 10, UserID: 1, TimeSlot: "14:30", CabinNumber: 1},
		11: {ID: 11, UserID: 2, TimeSlot: "15:00", CabinNumber: 1},
	}}
	clock := &fakeDayClock{}
	svc := newTestService(repo, clock)

	list, err := svc.ListUserBookings(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(10), list[0].ID)
	assert.Equal(t, 1, clock.refreshed)
}

func TestListSchedule(t *testing.T) {
	repo := &fakeBookingRepo{schedule: []*domain.ScheduleEntry{
		{TimeSlot: "14:30", CabinNumber: 1, Gender: domain.GenderMale, DisplayName: "Иван"},
		{TimeSlot: "14:30", CabinNumber: 2, Gender: domain.GenderMale, DisplayName: "Пётр"},
	}}
	clock := &fakeDayClock{}
	svc := newTestService(repo, clock)

	entries, err := svc.ListSchedule(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 1, clock.refreshed)
}
