package get_availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damn-devil/bath.book/internal/domain"
	"github.com/damn-devil/bath.book/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	occupants []*domain.Booking
	err       error
}

func (f *fakeBookingRepo) GetBySlot(_ context.Context, _ types.TimeString) ([]*domain.Booking, error) {
	return f.occupants, f.err
}

type fakeDayClock struct {
	err error
}

func (f *fakeDayClock) Refresh(_ context.Context) error {
	return f.err
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name      string
		occupants []*domain.Booking
		gender    domain.Gender
		want      int
	}{
		{"empty slot", nil, domain.GenderMale, 2},
		{
			"same gender occupant",
			[]*domain.Booking{{Gender: domain.GenderMale, TimeSlot: "14:30", CabinNumber: 1}},
			domain.GenderMale,
			1,
		},
		{
			"other gender occupant",
			[]*domain.Booking{{Gender: domain.GenderMale, TimeSlot: "14:30", CabinNumber: 1}},
			domain.GenderFemale,
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeBookingRepo{occupants: tt.occupants}, &fakeDayClock{}, nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{Slot: "14:30", Gender: tt.gender})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.AvailableCabins)
			assert.Equal(t, domain.TotalCabins, resp.TotalCabins)
		})
	}
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeDayClock{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Slot: "bogus", Gender: domain.GenderMale})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Slot: "14:30", Gender: "unknown"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RefreshFailure(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeDayClock{err: errors.New("db down")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Slot: "14:30", Gender: domain.GenderMale})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
