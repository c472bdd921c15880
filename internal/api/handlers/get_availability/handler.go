package get_availability

import (
	"errors"
	"net/http"

	"github.com/damn-devil/bath.book/internal/api/handlers"
	"github.com/damn-devil/bath.book/internal/domain"
	getAvailability "github.com/damn-devil/bath.book/internal/usecase/get_availability"
	"github.com/damn-devil/bath.book/pkg/types"
)

const (
	msgInvalidSlot   = "некорректный формат времени, ожидается HH:MM"
	msgInvalidGender = "некорректное значение пола, ожидается male или female"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Slot            string `json:"slot"`
	AvailableCabins int    `json:"availableCabins"`
	TotalCabins     int    `json:"totalCabins"`
}

// Handle GET /api/v1/availability?slot=14:30&gender=male
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slot, err := types.NewTimeStringFromString(r.URL.Query().Get("slot"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid slot: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	gender, err := domain.ParseGender(r.URL.Query().Get("gender"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid gender: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGender)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		Slot:   slot,
		Gender: gender,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, getAvailability.ErrStorageUnavailable):
			h.logger.Error("GET /availability - Storage unavailable: %v", err)
			handlers.RespondStorageUnavailable(w)

		default:
			h.logger.Error("GET /availability - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &AvailabilityResponse{
		Slot:            result.Slot.String(),
		AvailableCabins: result.AvailableCabins,
		TotalCabins:     result.TotalCabins,
	})
}
