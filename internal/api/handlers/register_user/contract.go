package register_user

import (
	"context"

	"github.com/damn-devil/bath.book/internal/service/users"
)

// UserService интерфейс сервиса пользователей
type UserService interface {
	RegisterOrUpdate(ctx context.Context, req *users.RegisterOrUpdateRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
