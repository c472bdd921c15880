package dialog_event

import (
	"context"

	"github.com/damn-devil/bath.book/internal/dialog"
)

// DialogManager интерфейс менеджера диалогов бронирования
type DialogManager interface {
	Handle(ctx context.Context, userID int64, action dialog.Action) (*dialog.Reply, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
