package rules

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
	"github.com/aidosbay/HBP-RatesService/pkg/dbmetrics"
	"github.com/aidosbay/HBP-RatesService/pkg/sqlbuilder"
)

// Repository репозиторий правил ограничений бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListForScope возвращает правила, применимые к паре (тип номера, тариф):
// точные совпадения и wildcard-строки с NULL. Дата не фильтруется — даты
// проверяет движок правил по каждому дню отдельно.
func (r *Repository) ListForScope(ctx context.Context, roomTypeID, rateID int64) ([]domain.Rule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select("id", "kind", "room_type_id", "rate_id", "date", "value").
		From("rules").
		Where(squirrel.Or{
			squirrel.Eq{"room_type_id": nil},
			squirrel.Eq{"room_type_id": roomTypeID},
		}).
		Where(squirrel.Or{
			squirrel.Eq{"rate_id": nil},
			squirrel.Eq{"rate_id": rateID},
		}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForScope - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForScope - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []domain.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForScope - rows: %v", ErrExecQuery, err)
	}
	return result, nil
}

func scanRule(rows *sql.Rows) (domain.Rule, error) {
	var (
		rule       domain.Rule
		kind       string
		roomTypeID sql.NullInt64
		rateID     sql.NullInt64
		date       sql.NullString
		value      sql.NullString
	)
	if err := rows.Scan(&rule.ID, &kind, &roomTypeID, &rateID, &date, &value); err != nil {
		return domain.Rule{}, fmt.Errorf("%w: scan rule: %v", ErrScanRow, err)
	}

	rule.Kind = domain.RuleKind(kind)
	if roomTypeID.Valid {
		rule.Payload.RoomTypeID = &roomTypeID.Int64
	}
	if rateID.Valid {
		rule.Payload.RateID = &rateID.Int64
	}
	if date.Valid {
		rule.Payload.Date = &date.String
	}
	rule.Payload.Value = decodeValue(value)
	return rule, nil
}

// decodeValue декодирует JSON-значение правила. Некорректный JSON не
// фатален: значение отдаётся сырой строкой, а движок правил сам решает,
// пригодно ли оно (непригодные молча пропускаются).
func decodeValue(value sql.NullString) any {
	if !value.Valid || value.String == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(value.String), &v); err != nil {
		return value.String
	}
	return v
}
