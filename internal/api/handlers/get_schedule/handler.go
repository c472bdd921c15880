package get_schedule

import (
	"errors"
	"net/http"

	"github.com/damn-devil/bath.book/internal/api/handlers"
	"github.com/damn-devil/bath.book/internal/domain"
	"github.com/damn-devil/bath.book/internal/service/bookings"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ScheduleEntryResponse одна строка расписания на день
type ScheduleEntryResponse struct {
	Slot        string `json:"slot"`
	CabinNumber int    `json:"cabinNumber"`
	Gender      string `json:"gender"`
	DisplayName string `json:"displayName"`
}

// Handle GET /api/v1/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListSchedule(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrStorageUnavailable):
			h.logger.Error("GET /schedule - Storage unavailable: %v", err)
			handlers.RespondStorageUnavailable(w)

		default:
			h.logger.Error("GET /schedule - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomainSchedule(result))
}

func fromDomainSchedule(entries []*domain.ScheduleEntry) []ScheduleEntryResponse {
	result := make([]ScheduleEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, ScheduleEntryResponse{
			Slot:        e.TimeSlot.String(),
			CabinNumber: e.CabinNumber,
			Gender:      string(e.Gender),
			DisplayName: e.DisplayName,
		})
	}
	return result
}
