package availability

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
	"github.com/aidosbay/HBP-RatesService/pkg/dbmetrics"
	"github.com/aidosbay/HBP-RatesService/pkg/sqlbuilder"
)

// Repository репозиторий остатков номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория остатков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) list(ctx context.Context, op string, where []squirrel.Sqlizer) ([]domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := sqlbuilder.Select("id", "room_type_id", "date", "available").
		From("availability").
		OrderBy("date ASC")
	for _, w := range where {
		builder = builder.Where(w)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	var result []domain.Availability
	for rows.Next() {
		var a domain.Availability
		if err := rows.Scan(&a.ID, &a.RoomTypeID, &a.Date, &a.Available); err != nil {
			return nil, fmt.Errorf("%w: %s - scan availability: %v", ErrScanRow, op, err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows: %v", ErrExecQuery, op, err)
	}
	return result, nil
}

// ListByRoomTypeWindow возвращает остатки типа номера в окне [from, to)
func (r *Repository) ListByRoomTypeWindow(ctx context.Context, roomTypeID int64, fromISO, toISO string) ([]domain.Availability, error) {
	return r.list(ctx, "ListByRoomTypeWindow", []squirrel.Sqlizer{
		squirrel.Eq{"room_type_id": roomTypeID},
		squirrel.GtOrEq{"date": fromISO},
		squirrel.Lt{"date": toISO},
	})
}

// ListWindow возвращает все остатки в окне [from, to)
func (r *Repository) ListWindow(ctx context.Context, fromISO, toISO string) ([]domain.Availability, error) {
	return r.list(ctx, "ListWindow", []squirrel.Sqlizer{
		squirrel.GtOrEq{"date": fromISO},
		squirrel.Lt{"date": toISO},
	})
}
