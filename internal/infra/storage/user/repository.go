package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/damn-devil/bath.book/internal/domain"
	"github.com/damn-devil/bath.book/pkg/psqlbuilder"
	"github.com/damn-devil/bath.book/pkg/txmanager"
)

// DBExecutor интерфейс выполнения запросов, общий для *sql.DB и *sql.Tx
type DBExecutor = txmanager.Executor

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает пользователя или обновляет имя и пол существующего.
// Идемпотентен: повторный вызов с теми же данными ничего не меняет.
// Перезапись пола при повторном онбординге разрешена намеренно.
func (r *Repository) Upsert(ctx context.Context, u *domain.User) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("user_id", "display_name", "gender").
		Values(u.ID, u.DisplayName, u.Gender).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET display_name = EXCLUDED.display_name, gender = COALESCE(EXCLUDED.gender, users.gender)").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"user_id",
		"display_name",
		"gender",
	).
		From("users").
		Where(squirrel.Eq{"user_id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	var gender sql.NullString

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.DisplayName,
		&gender,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan user: %w", ErrScanRow, err)
	}

	if gender.Valid {
		g := domain.Gender(gender.String)
		u.Gender = &g
	}

	return &u, nil
}
