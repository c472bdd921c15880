package users

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("users: invalid input data")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("users: user not found")

	// ErrStorageUnavailable возвращается при недоступности хранилища
	ErrStorageUnavailable = errors.New("users: storage unavailable")
)
