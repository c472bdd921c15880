package dayclock

import "errors"

var (
	// ErrStorageUnavailable возвращается, когда состояние дня не удалось
	// привести к актуальному из-за недоступности хранилища.
	// Вызывающая операция обязана завершиться этой ошибкой, а не работать
	// с частичными или пустыми данными.
	ErrStorageUnavailable = errors.New("dayclock: storage unavailable")
)
