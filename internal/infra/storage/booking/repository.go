package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/damn-devil/bath.book/internal/domain"
	"github.com/damn-devil/bath.book/pkg/psqlbuilder"
	"github.com/damn-devil/bath.book/pkg/txmanager"
	"github.com/damn-devil/bath.book/pkg/types"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Уникальный ключ (slot_time, cabin_number) — последняя линия защиты от гонки
// двух параллельных созданий: нарушение уникальности возвращается как
// ErrCabinTaken, а не как общая ошибка выполнения запроса.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"gender",
			"slot_time",
			"cabin_number",
		).
		Values(
			b.UserID,
			b.Gender,
			b.TimeSlot,
			b.CabinNumber,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCabinTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"gender",
		"slot_time",
		"cabin_number",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.UserID,
		&b.Gender,
		&b.TimeSlot,
		&b.CabinNumber,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time

	return &b, nil
}

// GetBySlot получает все бронирования на указанный слот, по возрастанию номера кабины.
// Внутри активной транзакции строки блокируются (FOR UPDATE): это окно
// read-check-write при создании бронирования.
func (r *Repository) GetBySlot(ctx context.Context, slot types.TimeString) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"user_id",
		"gender",
		"slot_time",
		"cabin_number",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"slot_time": slot}).
		OrderBy("cabin_number ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlot - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByUserID получает бронирования пользователя, по возрастанию времени слота
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"gender",
		"slot_time",
		"cabin_number",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("slot_time ASC, cabin_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListSchedule получает расписание на день целиком: все бронирования
// с именами владельцев, по возрастанию времени слота
func (r *Repository) ListSchedule(ctx context.Context) ([]*domain.ScheduleEntry, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.slot_time",
		"b.cabin_number",
		"b.gender",
		"u.display_name",
	).
		From("bookings b").
		Join("users u ON u.user_id = b.user_id").
		OrderBy("b.slot_time ASC, b.cabin_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSchedule - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.ScheduleEntry, 0)
	for rows.Next() {
		var e domain.ScheduleEntry
		if err := rows.Scan(&e.TimeSlot, &e.CabinNumber, &e.Gender, &e.DisplayName); err != nil {
			return nil, fmt.Errorf("%w: ListSchedule - scan row: %w", ErrScanRow, err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSchedule - rows error: %w", ErrScanRow, err)
	}

	return entries, nil
}

// DeleteByID удаляет бронирование по ID
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeleteAll удаляет все бронирования (полный сброс дня)
func (r *Repository) DeleteAll(ctx context.Context) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteAll - execute delete: %w", ErrExecQuery, err)
	}

	return nil
}

// DeleteExpired удаляет бронирования, слот которых строго раньше now.
// Возвращает количество удаленных строк.
func (r *Repository) DeleteExpired(ctx context.Context, now types.TimeString) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Lt{"slot_time": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - get rows affected: %w", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.Gender,
			&b.TimeSlot,
			&b.CabinNumber,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// isUniqueViolation проверяет, что ошибка — нарушение уникального ключа PostgreSQL
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
