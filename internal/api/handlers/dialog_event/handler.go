package dialog_event

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/damn-devil/bath.book/internal/api/handlers"
	"github.com/damn-devil/bath.book/internal/api/middleware"
	"github.com/damn-devil/bath.book/internal/dialog"
	"github.com/damn-devil/bath.book/internal/service/bookings"
	createBooking "github.com/damn-devil/bath.book/internal/usecase/create_booking"
	getAvailability "github.com/damn-devil/bath.book/internal/usecase/get_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnexpectedAction   = "действие не соответствует текущему шагу диалога"
	msgGenderNotSet       = "сначала укажите пол в профиле"
	msgUserNotFound       = "пользователь не зарегистрирован"
	msgSlotUnavailable    = "на это время нет свободных кабин, выберите другое"
	msgBookingNotFound    = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	manager DialogManager
	logger  Logger
}

func NewHandler(manager DialogManager, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// Handle POST /api/v1/dialog/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует идентификатор пользователя")
		return
	}

	var req DialogEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /dialog/events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	action, err := req.ToAction()
	if err != nil {
		h.logger.Warn("POST /dialog/events - Failed to decode action: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reply, err := h.manager.Handle(r.Context(), userID, action)
	if err != nil {
		var capErr *createBooking.InsufficientCapacityError

		switch {
		case errors.Is(err, dialog.ErrUnexpectedAction):
			h.logger.Warn("POST /dialog/events - Unexpected action: user_id=%d, type=%s", userID, req.Type)
			handlers.RespondError(w, http.StatusConflict, msgUnexpectedAction)

		case errors.Is(err, dialog.ErrGenderNotSet), errors.Is(err, createBooking.ErrGenderNotSet):
			handlers.RespondBadRequest(w, msgGenderNotSet)

		case errors.Is(err, dialog.ErrUserNotFound), errors.Is(err, createBooking.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, dialog.ErrSlotUnavailable):
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.As(err, &capErr):
			handlers.RespondError(w, http.StatusConflict,
				fmt.Sprintf("недостаточно свободных кабин: доступно %d", capErr.Available))

		case errors.Is(err, createBooking.ErrInvalidInput), errors.Is(err, getAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrSlotInPast):
			handlers.RespondBadRequest(w, "это время уже прошло")

		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrStorageUnavailable),
			errors.Is(err, createBooking.ErrStorageUnavailable),
			errors.Is(err, getAvailability.ErrStorageUnavailable):
			h.logger.Error("POST /dialog/events - Storage unavailable: user_id=%d, error=%v", userID, err)
			handlers.RespondStorageUnavailable(w)

		default:
			h.logger.Error("POST /dialog/events - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /dialog/events - user_id=%d, type=%s -> state=%s", userID, req.Type, reply.State)
	handlers.RespondJSON(w, http.StatusOK, FromDialogReply(reply))
}
