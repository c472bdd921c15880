package get_availability

import (
	"context"
	"fmt"

	"github.com/damn-devil/bath.book/internal/domain"
	"github.com/damn-devil/bath.book/pkg/types"
)

// Request модель запроса проверки доступности слота
type Request struct {
	Slot   types.TimeString
	Gender domain.Gender
}

// Response модель ответа: сколько кабин может быть выдано (0..2)
type Response struct {
	Slot            types.TimeString
	AvailableCabins int
	TotalCabins     int
}

// UseCase use case проверки доступности слота.
// Само правило доступности — чистая функция domain.AvailableCabins;
// здесь только актуализация дня и чтение занятости.
type UseCase struct {
	bookingRepo BookingRepository
	dayClock    DayClock
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, dayClock DayClock, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		dayClock:    dayClock,
		logger:      logger,
	}
}

// Execute возвращает количество кабин, доступных на слоте для указанного пола
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := req.Slot.Validate(); err != nil {
		uc.logger.Warn("GetAvailability: invalid slot %q", req.Slot)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := domain.ParseGender(string(req.Gender)); err != nil {
		uc.logger.Warn("GetAvailability: invalid gender %q", req.Gender)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := uc.dayClock.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("%w: refresh day: %v", ErrStorageUnavailable, err)
	}

	occupants, err := uc.bookingRepo.GetBySlot(ctx, req.Slot)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get occupants of slot=%s: %v", req.Slot, err)
		return nil, fmt.Errorf("%w: get slot occupants: %v", ErrStorageUnavailable, err)
	}

	available := domain.AvailableCabins(occupants, req.Gender)
	uc.logger.Info("GetAvailability: slot=%s gender=%s -> %d cabin(s)", req.Slot, req.Gender, available)

	return &Response{
		Slot:            req.Slot,
		AvailableCabins: available,
		TotalCabins:     domain.TotalCabins,
	}, nil
}
