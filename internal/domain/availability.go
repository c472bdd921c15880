package domain

// AvailableCabins вычисляет, сколько кабин (0..TotalCabins) может быть выдано
// на слот пользователю с полом g при текущем наборе занятых бронирований слота.
//
// Правило закрытой формы (не интервальная арифметика: слоты фиксированной длины,
// одна кабина на (слот, номер) гарантируется уникальным ключом в БД):
//   - слот пуст → свободны обе кабины, любой пол;
//   - занята одна кабина → вторая выдается только тому же полу;
//   - заняты обе → слот полон независимо от пола.
func AvailableCabins(occupants []*Booking, g Gender) int {
	switch len(occupants) {
	case 0:
		return TotalCabins
	case 1:
		if occupants[0].Gender == g {
			return TotalCabins - 1
		}
		return 0
	default:
		return 0
	}
}

// FreeCabinNumbers возвращает count свободных номеров кабин на слоте
// в порядке возрастания. Детерминированность выбора (всегда наименьшие
// свободные номера) важна для тестируемости и стабильной идентичности
// "ключа N" для пользователя.
//
// Если свободных кабин меньше count, возвращает все свободные.
func FreeCabinNumbers(occupants []*Booking, count int) []int {
	occupied := make(map[int]bool, len(occupants))
	for _, b := range occupants {
		occupied[b.CabinNumber] = true
	}

	free := make([]int, 0, count)
	for _, n := range CabinNumbers {
		if len(free) == count {
			break
		}
		if !occupied[n] {
			free = append(free, n)
		}
	}

	return free
}
