package dialog_event

import (
	"errors"
	"fmt"
	"time"

	"github.com/damn-devil/bath.book/internal/dialog"
	"github.com/damn-devil/bath.book/internal/domain"
	"github.com/damn-devil/bath.book/pkg/types"
)

// ErrUnknownEventType возвращается при неизвестном типе события
var ErrUnknownEventType = errors.New("dialog_event: unknown event type")

// DialogEventRequest HTTP request model.
// Type определяет вариант действия; остальные поля заполняются по типу.
// Декодирование в tagged-вариант происходит здесь, на границе транспорта,
// ровно один раз — внутрь движка строки типов не проходят.
type DialogEventRequest struct {
	Type      string `json:"type"` // start | slot | confirm | cancel_booking | refresh_list | back
	Slot      string `json:"slot,omitempty"`
	Count     int    `json:"count,omitempty"`
	BookingID int64  `json:"bookingId,omitempty"`
	Kind      string `json:"kind,omitempty"` // mine | all
}

// ToAction декодирует запрос в действие диалога
func (r *DialogEventRequest) ToAction() (dialog.Action, error) {
	switch r.Type {
	case "start":
		return dialog.StartBooking{}, nil

	case "slot":
		slot, err := types.NewTimeStringFromString(r.Slot)
		if err != nil {
			return nil, err
		}
		return dialog.SubmitSlot{Slot: slot}, nil

	case "confirm":
		return dialog.ConfirmCabins{Count: r.Count}, nil

	case "cancel_booking":
		if r.BookingID <= 0 {
			return nil, fmt.Errorf("%w: bookingId is required", ErrUnknownEventType)
		}
		return dialog.CancelBooking{BookingID: r.BookingID}, nil

	case "refresh_list":
		kind := dialog.ListKind(r.Kind)
		if kind != dialog.ListKindMine && kind != dialog.ListKindAll {
			return nil, fmt.Errorf("%w: unknown list kind %q", ErrUnknownEventType, r.Kind)
		}
		return dialog.RefreshList{Kind: kind}, nil

	case "back":
		return dialog.Back{}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, r.Type)
	}
}

// DialogReplyResponse HTTP response model
type DialogReplyResponse struct {
	State           string                  `json:"state"`
	AvailableCabins *int                    `json:"availableCabins,omitempty"`
	AssignedCabins  []int                   `json:"assignedCabins,omitempty"`
	UserBookings    []UserBookingResponse   `json:"userBookings,omitempty"`
	Schedule        []ScheduleEntryResponse `json:"schedule,omitempty"`
}

// UserBookingResponse одна строка списка бронирований пользователя
type UserBookingResponse struct {
	ID          int64  `json:"id"`
	Slot        string `json:"slot"`
	CabinNumber int    `json:"cabinNumber"`
	CreatedAt   string `json:"createdAt"`
}

// ScheduleEntryResponse одна строка расписания
type ScheduleEntryResponse struct {
	Slot        string `json:"slot"`
	CabinNumber int    `json:"cabinNumber"`
	Gender      string `json:"gender"`
	DisplayName string `json:"displayName"`
}

// FromDialogReply конвертирует ответ менеджера диалогов в HTTP response
func FromDialogReply(reply *dialog.Reply) *DialogReplyResponse {
	resp := &DialogReplyResponse{
		State:          string(reply.State),
		AssignedCabins: reply.AssignedCabins,
	}

	if reply.State == dialog.StateAwaitingCabinCount {
		available := reply.AvailableCabins
		resp.AvailableCabins = &available
	}

	if reply.UserBookings != nil {
		resp.UserBookings = fromDomainBookings(reply.UserBookings)
	}
	if reply.Schedule != nil {
		resp.Schedule = fromDomainSchedule(reply.Schedule)
	}

	return resp
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
