package dialog

import "github.com/damn-devil/bath.book/pkg/types"

// ListKind вид запрашиваемого списка бронирований
type ListKind string

const (
	ListKindMine ListKind = "mine"
	ListKindAll  ListKind = "all"
)

// Action действие пользователя в диалоге бронирования.
// Транспортный слой декодирует свое представление (callback-строки, JSON)
// в один из вариантов ровно один раз; внутрь движка строки не проникают.
type Action interface {
	isAction()
}

// StartBooking начинает диалог бронирования
type StartBooking struct{}

// SubmitSlot передает выбранное время слота
type SubmitSlot struct {
	Slot types.TimeString
}

// ConfirmCabins подтверждает бронирование с указанным количеством кабин
type ConfirmCabins struct {
	Count int
}

// CancelBooking отменяет существующее бронирование (команда меню)
type CancelBooking struct {
	BookingID int64
}

// RefreshList запрашивает актуальный список бронирований (команда меню)
type RefreshList struct {
	Kind ListKind
}

// Back прерывает текущий диалог
type Back struct{}

func (StartBooking) isAction()  {}
func (SubmitSlot) isAction()    {}
func (ConfirmCabins) isAction() {}
func (CancelBooking) isAction() {}
func (RefreshList) isAction()   {}
func (Back) isAction()          {}
