package users

import (
	"context"

	"github.com/damn-devil/bath.book/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Upsert(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
