package dialog

import "errors"

var (
	// ErrUnexpectedAction возвращается, когда действие не соответствует
	// текущему состоянию диалога (например, подтверждение без выбора слота)
	ErrUnexpectedAction = errors.New("dialog: unexpected action for current state")

	// ErrGenderNotSet возвращается, когда диалог бронирования начат
	// пользователем без указанного пола
	ErrGenderNotSet = errors.New("dialog: user gender is not set")

	// ErrUserNotFound возвращается, когда пользователь не зарегистрирован
	ErrUserNotFound = errors.New("dialog: user not found")

	// ErrSlotUnavailable возвращается, когда на выбранный слот нет свободных кабин
	ErrSlotUnavailable = errors.New("dialog: slot has no available cabins")
)
