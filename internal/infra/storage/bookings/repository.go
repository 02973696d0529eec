package bookings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
	"github.com/aidosbay/HBP-RatesService/pkg/dbmetrics"
	"github.com/aidosbay/HBP-RatesService/pkg/sqlbuilder"
)

const bookingColumns = "id, user_id, hotel_id, room_type_id, rate_id, check_in, check_out, " +
	"guests, total, currency, status, cancellation_reason, cancelled_at, created_at, updated_at"

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование и возвращает его с присвоенным id.
// Повторная вставка с тем же ключом идемпотентности упирается в
// UNIQUE-ограничение и возвращает ErrDuplicateBooking.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Insert("bookings").
		Columns(
			"user_id", "hotel_id", "room_type_id", "rate_id",
			"check_in", "check_out", "guests", "total", "currency",
			"status", "created_at", "updated_at",
		).
		Values(
			booking.UserID, booking.HotelID, booking.RoomTypeID, booking.RateID,
			booking.CheckIn, booking.CheckOut, booking.Guests, booking.Total, booking.Currency,
			booking.Status, booking.CreatedAt, booking.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateBooking
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - last insert id: %v", ErrExecQuery, err)
	}

	created := *booking
	created.ID = id
	return &created, nil
}

// GetByID возвращает бронирование по id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}
	return booking, nil
}

// FindByKey ищет бронирование по ключу идемпотентности. Используется,
// чтобы вернуть уже существующую запись при повторном запросе.
func (r *Repository) FindByKey(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{
			"user_id":   booking.UserID,
			"hotel_id":  booking.HotelID,
			"check_in":  booking.CheckIn,
			"check_out": booking.CheckOut,
			"guests":    booking.Guests,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByKey - build select query: %v", ErrBuildQuery, err)
	}

	found, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByKey - scan booking: %v", ErrScanRow, err)
	}
	return found, nil
}

// ListByUser возвращает бронирования пользователя, новые первыми
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan booking: %v", ErrScanRow, err)
		}
		result = append(result, *booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows: %v", ErrExecQuery, err)
	}
	return result, nil
}

// Cancel переводит бронирование в статус cancelled
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string, now time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b           domain.Booking
		status      string
		reason      sql.NullString
		cancelledAt sql.NullTime
	)
	err := row.Scan(
		&b.ID, &b.UserID, &b.HotelID, &b.RoomTypeID, &b.RateID,
		&b.CheckIn, &b.CheckOut, &b.Guests, &b.Total, &b.Currency,
		&status, &reason, &cancelledAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Status = domain.BookingStatus(status)
	if reason.Valid {
		b.CancellationReason = &reason.String
	}
	if cancelledAt.Valid {
		b.CancelledAt = &cancelledAt.Time
	}
	return &b, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
