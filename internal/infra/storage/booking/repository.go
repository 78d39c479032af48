package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachingCalendar/internal/domain"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachingCalendar/pkg/psqlbuilder"
)

const table = "bookings"

var columns = []string{
	"id",
	"client_id",
	"client_name",
	"client_phone",
	"call_type",
	"booking_date",
	"start_time",
	"end_time",
	"is_recurring",
	"recurring_start_date",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование, ID генерируется здесь (UUID v4)
// Если в контексте передана транзакция, запрос выполняется в ней
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	isRecurring, anchorDate := recurrenceColumns(booking)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"client_id",
			"client_name",
			"client_phone",
			"call_type",
			"booking_date",
			"start_time",
			"end_time",
			"is_recurring",
			"recurring_start_date",
		).
		Values(
			booking.ID,
			booking.Client.ID,
			booking.Client.Name,
			booking.Client.Phone,
			string(booking.CallKind),
			booking.Date.Format(domain.DateFormat),
			booking.StartTime,
			booking.EndTime,
			isRecurring,
			anchorDate,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetAll получает полный набор хранимых бронирований (без вычисленных повторов)
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("booking_date ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetForDay получает бронирования, которые могут действовать в указанный день:
// - бронирования, назначенные на эту дату;
// - повторяющиеся бронирования с тем же днём недели, начавшиеся не позже этой даты.
//
// Результат является надмножеством бронирований дня, итоговый набор
// строит scheduling.MaterializeDay. Внутри транзакции строки блокируются (FOR UPDATE).
func (r *Repository) GetForDay(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := forDayQuery(date, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Update перезаписывает изменяемые поля бронирования
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	isRecurring, anchorDate := recurrenceColumns(booking)

	query, args, err := psqlbuilder.Update(table).
		Set("client_id", booking.Client.ID).
		Set("client_name", booking.Client.Name).
		Set("client_phone", booking.Client.Phone).
		Set("call_type", string(booking.CallKind)).
		Set("booking_date", booking.Date.Format(domain.DateFormat)).
		Set("start_time", booking.StartTime).
		Set("end_time", booking.EndTime).
		Set("is_recurring", isRecurring).
		Set("recurring_start_date", anchorDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// Delete удаляет бронирование вместе со всеми его будущими повторами
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func forDayQuery(date time.Time, lock bool) squirrel.SelectBuilder {
	day := domain.DateOnly(date)
	dayStr := day.Format(domain.DateFormat)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Or{
			squirrel.Eq{"booking_date": dayStr},
			squirrel.And{
				squirrel.Eq{"is_recurring": true},
				squirrel.LtOrEq{"recurring_start_date": dayStr},
				squirrel.Expr("EXTRACT(DOW FROM recurring_start_date) = ?", int(day.Weekday())),
			},
		}).
		OrderBy("start_time ASC")

	if lock {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}
	return selectBuilder
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking     domain.Booking
		callType    string
		isRecurring bool
		anchorDate  sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.Client.ID,
		&booking.Client.Name,
		&booking.Client.Phone,
		&callType,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&isRecurring,
		&anchorDate,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CallKind = domain.CallKind(callType)
	booking.Date = domain.DateOnly(booking.Date)
	if isRecurring && anchorDate.Valid {
		booking.Recurrence = &domain.Recurrence{AnchorDate: domain.DateOnly(anchorDate.Time)}
	}

	return &booking, nil
}

func recurrenceColumns(booking *domain.Booking) (bool, *string) {
	if booking.Recurrence == nil {
		return false, nil
	}
	anchor := booking.Recurrence.AnchorDate.Format(domain.DateFormat)
	return true, &anchor
}
