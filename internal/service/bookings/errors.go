package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено.
	// Уже истекшее или отмененное бронирование неотличимо от никогда
	// не существовавшего.
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAccessDenied возвращается при попытке отменить чужое бронирование
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrStorageUnavailable возвращается при недоступности хранилища
	ErrStorageUnavailable = errors.New("bookings: storage unavailable")
)
