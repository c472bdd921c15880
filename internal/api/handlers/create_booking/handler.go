package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/damn-devil/bath.book/internal/api/handlers"
	"github.com/damn-devil/bath.book/internal/api/middleware"
	createBooking "github.com/damn-devil/bath.book/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlot        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные бронирования"
	msgUserNotFound       = "пользователь не зарегистрирован"
	msgGenderNotSet       = "сначала укажите пол в профиле"
	msgSlotInPast         = "это время уже прошло"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// insufficientCapacityResponse тело ответа 409 с фактическим остатком кабин
type insufficientCapacityResponse struct {
	Error           string `json:"error"`
	AvailableCabins int    `json:"availableCabins"`
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует идентификатор пользователя")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse slot: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var capErr *createBooking.InsufficientCapacityError

		switch {
		case errors.As(err, &capErr):
			h.logger.Warn("POST /bookings - Insufficient capacity: user_id=%d, slot=%s, available=%d",
				userID, req.Slot, capErr.Available)
			handlers.RespondJSON(w, http.StatusConflict, &insufficientCapacityResponse{
				Error:           fmt.Sprintf("недостаточно свободных кабин: доступно %d", capErr.Available),
				AvailableCabins: capErr.Available,
			})

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot in past: user_id=%d, slot=%s", userID, req.Slot)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrGenderNotSet):
			h.logger.Warn("POST /bookings - Gender not set: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgGenderNotSet)

		case errors.Is(err, createBooking.ErrStorageUnavailable):
			h.logger.Error("POST /bookings - Storage unavailable: user_id=%d, error=%v", userID, err)
			handlers.RespondStorageUnavailable(w)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: user_id=%d, slot=%s, cabins=%v",
		userID, result.Slot, result.AssignedCabins)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
