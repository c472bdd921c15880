package create_booking

import (
	"github.com/damn-devil/bath.book/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID int64            // ID пользователя
	Slot   types.TimeString // Время слота (например, "14:30")
	Cabins int              // Запрошенное количество кабин (1 или 2)
}

// CreatedBooking созданное бронирование одной кабины
type CreatedBooking struct {
	ID          int64
	CabinNumber int
}

// Response модель ответа с созданными бронированиями.
// AssignedCabins — номера выданных кабин по возрастанию.
type Response struct {
	Slot           types.TimeString
	AssignedCabins []int
	Bookings       []CreatedBooking
}
