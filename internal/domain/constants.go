package domain

// Конфигурация кабин.
// Кабины — фиксированный упорядоченный набор, нумерация стабильна:
// пользователю всегда показывается один и тот же "ключ N".
const (
	TotalCabins = 2

	MinCabinsPerBooking = 1
	MaxCabinsPerBooking = 2
)

// CabinNumbers номера кабин по возрастанию
var CabinNumbers = [TotalCabins]int{1, 2}

// DateFormat формат даты операционного дня
const DateFormat = "2006-01-02"

// Ограничения на данные пользователя
const (
	MaxDisplayNameLength = 100
)
