package create_booking

import (
	"fmt"
	"time"

	"github.com/damn-devil/bath.book/internal/domain"
	"github.com/damn-devil/bath.book/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Slot.IsZero() {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}

	if err := req.Slot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid slot format: %v", ErrInvalidInput, err)
	}

	if req.Cabins < domain.MinCabinsPerBooking || req.Cabins > domain.MaxCabinsPerBooking {
		return fmt.Errorf("%w: cabins must be between %d and %d",
			ErrInvalidInput, domain.MinCabinsPerBooking, domain.MaxCabinsPerBooking)
	}

	return nil
}

// validateSlotNotPassed проверяет, что слот еще не прошел.
// Прошедший слот был бы немедленно снят уборкой истекших бронирований,
// поэтому его создание отклоняется сразу.
func validateSlotNotPassed(slot types.TimeString, now time.Time) error {
	if slot.IsBefore(types.NewTimeString(now)) {
		return ErrSlotInPast
	}
	return nil
}
