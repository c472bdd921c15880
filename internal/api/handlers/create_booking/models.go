package create_booking

import (
	createBooking "github.com/damn-devil/bath.book/internal/usecase/create_booking"
	"github.com/damn-devil/bath.book/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Slot   string `json:"slot"`   // "14:30"
	Cabins int    `json:"cabins"` // 1 или 2
}

// BookingResponse созданное бронирование одной кабины
type BookingResponse struct {
	ID          int64 `json:"id"`
	CabinNumber int   `json:"cabinNumber"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Slot           string            `json:"slot"`
	AssignedCabins []int             `json:"assignedCabins"`
	Bookings       []BookingResponse `json:"bookings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	slot, err := types.NewTimeStringFromString(r.Slot)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID: userID,
		Slot:   slot,
		Cabins: r.Cabins,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	bookings := make([]BookingResponse, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		bookings = append(bookings, BookingResponse{ID: b.ID, CabinNumber: b.CabinNumber})
	}

	return &CreateBookingResponse{
		Slot:           resp.Slot.String(),
		AssignedCabins: resp.AssignedCabins,
		Bookings:       bookings,
	}
}
