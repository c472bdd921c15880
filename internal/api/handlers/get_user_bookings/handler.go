package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/damn-devil/bath.book/internal/api/handlers"
	"github.com/damn-devil/bath.book/internal/api/middleware"
	"github.com/damn-devil/bath.book/internal/domain"
	"github.com/damn-devil/bath.book/internal/service/bookings"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgForbidden     = "доступ запрещен"
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

// UserBookingResponse одна строка списка бронирований пользователя
type UserBookingResponse struct {
	ID          int64  `json:"id"`
	Slot        string `json:"slot"`
	CabinNumber int    `json:"cabinNumber"`
	CreatedAt   string `json:"createdAt"`
}

// Handle GET /api/v1/users/{userId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestingUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует идентификатор пользователя")
		return
	}

	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/bookings - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Пользователь видит только собственные бронирования
	if userID != requestingUserID {
		h.logger.Warn("GET /users/{id}/bookings - Access denied: user_id=%d requested by user_id=%d",
			userID, requestingUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.ListUserBookings(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrStorageUnavailable):
			h.logger.Error("GET /users/{id}/bookings - Storage unavailable: user_id=%d, error=%v", userID, err)
			handlers.RespondStorageUnavailable(w)

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomainBookings(result))
}

func fromDomainBookings(list []*domain.Booking) []UserBookingResponse {
	result := make([]UserBookingResponse, 0, len(list))
	for _, b := range list {
		result = append(result, UserBookingResponse{
			ID:          b.ID,
			Slot:        b.TimeSlot.String(),
			CabinNumber: b.CabinNumber,
			CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}
