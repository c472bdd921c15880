package operday

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/damn-devil/bath.book/pkg/psqlbuilder"
	"github.com/damn-devil/bath.book/pkg/txmanager"
)

// Таблица operating_day — синглтон: ровно одна строка с id = 1
const singletonID = 1

// DBExecutor интерфейс выполнения запросов, общий для *sql.DB и *sql.Tx
type DBExecutor = txmanager.Executor

// Repository репозиторий для работы с операционным днем
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория операционного дня
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает дату текущего операционного дня.
// Внутри активной транзакции строка блокируется (FOR UPDATE), чтобы
// параллельные сбросы дня не пересеклись.
func (r *Repository) Get(ctx context.Context) (time.Time, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("day_date").
		From("operating_day").
		Where(squirrel.Eq{"id": singletonID})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var day time.Time
	err = executor.QueryRowContext(ctx, query, args...).Scan(&day)

	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrDayNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: Get - scan day: %w", ErrScanRow, err)
	}

	return day, nil
}

// Advance устанавливает новую дату операционного дня
func (r *Repository) Advance(ctx context.Context, day time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("operating_day").
		Set("day_date", day).
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Advance - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Advance - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Advance - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDayNotFound
	}

	return nil
}
