package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func booking(cabin int, g Gender) *Booking {
	return &Booking{
		UserID:      1,
		Gender:      g,
		TimeSlot:    "14:30",
		CabinNumber: cabin,
	}
}

func TestAvailableCabins(t *testing.T) {
	tests := []struct {
		name      string
		occupants []*Booking
		gender    Gender
		want      int
	}{
		{
			name:      "empty slot - both cabins for male",
			occupants: nil,
			gender:    GenderMale,
			want:      2,
		},
		{
			name:      "empty slot - both cabins for female",
			occupants: []*Booking{},
			gender:    GenderFemale,
			want:      2,
		},
		{
			name:      "one male occupant - male gets second cabin",
			occupants: []*Booking{booking(1, GenderMale)},
			gender:    GenderMale,
			want:      1,
		},
		{
			name:      "one male occupant - female gets nothing",
			occupants: []*Booking{booking(1, GenderMale)},
			gender:    GenderFemale,
			want:      0,
		},
		{
			name:      "one female occupant - male gets nothing",
			occupants: []*Booking{booking(2, GenderFemale)},
			gender:    GenderMale,
			want:      0,
		},
		{
			name:      "full slot - same gender gets nothing",
			occupants: []*Booking{booking(1, GenderMale), booking(2, GenderMale)},
			gender:    GenderMale,
			want:      0,
		},
		{
			name:      "full slot - other gender gets nothing",
			occupants: []*Booking{booking(1, GenderFemale), booking(2, GenderFemale)},
			gender:    GenderMale,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableCabins(tt.occupants, tt.gender)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFreeCabinNumbers(t *testing.T) {
	tests := []struct {
		name      string
		occupants []*Booking
		count     int
		want      []int
	}{
		{
			name:      "empty slot - one cabin - lowest number first",
			occupants: nil,
			count:     1,
			want:      []int{1},
		},
		{
			name:      "empty slot - two cabins - ascending order",
			occupants: nil,
			count:     2,
			want:      []int{1, 2},
		},
		{
			name:      "cabin 1 taken - cabin 2 assigned",
			occupants: []*Booking{booking(1, GenderMale)},
			count:     1,
			want:      []int{2},
		},
		{
			name:      "cabin 2 taken - cabin 1 assigned",
			occupants: []*Booking{booking(2, GenderMale)},
			count:     1,
			want:      []int{1},
		},
		{
			name:      "not enough free cabins - returns what is free",
			occupants: []*Booking{booking(1, GenderMale)},
			count:     2,
			want:      []int{2},
		},
		{
			name:      "full slot - nothing free",
			occupants: []*Booking{booking(1, GenderMale), booking(2, GenderMale)},
			count:     1,
			want:      []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreeCabinNumbers(tt.occupants, tt.count)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGender(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		g, err := ParseGender("male")
		assert.NoError(t, err)
		assert.Equal(t, GenderMale, g)

		g, err = ParseGender("female")
		assert.NoError(t, err)
		assert.Equal(t, GenderFemale, g)
	})

	t.Run("unknown value", func(t *testing.T) {
		_, err := ParseGender("other")
		assert.ErrorIs(t, err, ErrInvalidGender)
	})

	t.Run("empty value", func(t *testing.T) {
		_, err := ParseGender("")
		assert.ErrorIs(t, err, ErrInvalidGender)
	})
}
