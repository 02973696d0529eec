package prices

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
	"github.com/aidosbay/HBP-RatesService/pkg/dbmetrics"
	"github.com/aidosbay/HBP-RatesService/pkg/sqlbuilder"
)

// Repository репозиторий цен тарифов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория цен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var columns = []string{"id", "rate_id", "date", "amount", "currency"}

// ListByRateWindow возвращает цены тарифа в полуинтервале дат [from, to),
// ISO-строки "YYYY-MM-DD". Лексикографический порядок ISO-дат совпадает с
// хронологическим, поэтому сравнение строковое.
func (r *Repository) ListByRateWindow(ctx context.Context, rateID int64, fromISO, toISO string) ([]domain.Price, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(columns...).
		From("prices").
		Where(squirrel.Eq{"rate_id": rateID}).
		Where(squirrel.GtOrEq{"date": fromISO}).
		Where(squirrel.Lt{"date": toISO}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRateWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRateWindow - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []domain.Price
	for rows.Next() {
		var p domain.Price
		if err := rows.Scan(&p.ID, &p.RateID, &p.Date, &p.Amount, &p.Currency); err != nil {
			return nil, fmt.Errorf("%w: ListByRateWindow - scan price: %v", ErrScanRow, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRateWindow - rows: %v", ErrExecQuery, err)
	}
	return result, nil
}

// ListByHotelWindow возвращает цены всех тарифов отеля в окне [from, to).
// Используется сканером предложений, чтобы не ходить в БД по одному тарифу.
func (r *Repository) ListByHotelWindow(ctx context.Context, hotelID int64, fromISO, toISO string) ([]domain.Price, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(
		"p.id", "p.rate_id", "p.date", "p.amount", "p.currency",
	).
		From("prices p").
		Join("rate_plans rp ON rp.id = p.rate_id").
		Where(squirrel.Eq{"rp.hotel_id": hotelID}).
		Where(squirrel.GtOrEq{"p.date": fromISO}).
		Where(squirrel.Lt{"p.date": toISO}).
		OrderBy("p.date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHotelWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHotelWindow - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []domain.Price
	for rows.Next() {
		var p domain.Price
		if err := rows.Scan(&p.ID, &p.RateID, &p.Date, &p.Amount, &p.Currency); err != nil {
			return nil, fmt.Errorf("%w: ListByHotelWindow - scan price: %v", ErrScanRow, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByHotelWindow - rows: %v", ErrExecQuery, err)
	}
	return result, nil
}

// ListWindow возвращает все цены в окне [from, to) по всем отелям
func (r *Repository) ListWindow(ctx context.Context, fromISO, toISO string) ([]domain.Price, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(columns...).
		From("prices").
		Where(squirrel.GtOrEq{"date": fromISO}).
		Where(squirrel.Lt{"date": toISO}).
		OrderBy("rate_id ASC, date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWindow - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []domain.Price
	for rows.Next() {
		var p domain.Price
		if err := rows.Scan(&p.ID, &p.RateID, &p.Date, &p.Amount, &p.Currency); err != nil {
			return nil, fmt.Errorf("%w: ListWindow - scan price: %v", ErrScanRow, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWindow - rows: %v", ErrExecQuery, err)
	}
	return result, nil
}
