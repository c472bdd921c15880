package domain

import (
	"errors"
	"fmt"
)

// Gender пол пользователя
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ErrInvalidGender возвращается при неизвестном значении пола
var ErrInvalidGender = errors.New("domain: invalid gender")

// ParseGender парсит строковое значение пола
func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGender, s)
	}
}

// User пользователь сервиса.
// Создается при первом обращении; пол обязателен для бронирования,
// но может быть не заполнен до завершения онбординга.
type User struct {
	ID          int64
	DisplayName string
	Gender      *Gender
}

// HasGender возвращает true, если пол пользователя уже указан
func (u *User) HasGender() bool {
	return u.Gender != nil
}
