package catalog

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

// Repository репозиторий каталога: отели, типы номеров, тарифы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// decodeFeatures разбирает JSON-массив признаков; пустая или битая
// строка даёт nil — признаки не критичны для выдачи
func decodeFeatures(raw string) []string {
	if raw == "" {
		return nil
	}
	var features []string
	if err := json.Unmarshal([]byte(raw), &features); err != nil {
		return nil
	}
	return features
}

// GetHotel возвращает отель по id
func (r *Repository) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select("id", "name", "stars", "city", "features").
		From("hotels").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetHotel - build select query: %v", ErrBuildQuery, err)
	}

	var (
		h        domain.Hotel
		features string
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &h.Name, &h.Stars, &h.City, &features)
	if err == sql.ErrNoRows {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHotel - scan hotel: %v", ErrScanRow, err)
	}
	h.Features = decodeFeatures(features)
	return &h, nil
}

// ListHotels возвращает все отели
func (r *Repository) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select("id", "name", "stars", "city", "features").
		From("hotels").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListHotels - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHotels - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []domain.Hotel
	for rows.Next() {
		var (
			h        domain.Hotel
			features string
		)
		if err := rows.Scan(&h.ID, &h.Name, &h.Stars, &h.City, &features); err != nil {
			return nil, fmt.Errorf("%w: ListHotels - scan hotel: %v", ErrScanRow, err)
		}
		h.Features = decodeFeatures(features)
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHotels - rows: %v", ErrExecQuery, err)
	}
	return result, nil
}

// ListRoomTypes возвращает все типы номеров
func (r *Repository) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return r.listRoomTypes(ctx, "ListRoomTypes", nil)
}

// ListRoomTypesByHotel возвращает типы номеров отеля
func (r *Repository) ListRoomTypesByHotel(ctx context.Context, hotelID int64) ([]domain.RoomType, error) {
	return r.listRoomTypes(ctx, "ListRoomTypesByHotel", squirrel.Eq{"hotel_id": hotelID})
}

func (r *Repository) listRoomTypes(ctx context.Context, op string, where squirrel.Sqlizer) ([]domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := sqlbuilder.Select("id", "hotel_id", "name", "capacity", "beds", "features").
		From("room_types").
		OrderBy("id ASC")
	if where != nil {
		builder = builder.Where(where)
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

	var result []domain.RoomType
	for rows.Next() {
		var (
			rt       domain.RoomType
			features string
		)
		if err := rows.Scan(&rt.ID, &rt.HotelID, &rt.Name, &rt.Capacity, &rt.Beds, &features); err != nil {
			return nil, fmt.Errorf("%w: %s - scan room type: %v", ErrScanRow, op, err)
		}
		rt.Features = decodeFeatures(features)
		result = append(result, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows: %v", ErrExecQuery, op, err)
	}
	return result, nil
}

// GetRatePlan возвращает тариф по id
func (r *Repository) GetRatePlan(ctx context.Context, id int64) (*domain.RatePlan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(
		"id", "hotel_id", "room_type_id", "title", "meal", "refundable", "cancel_before_days",
	).
		From("rate_plans").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRatePlan - build select query: %v", ErrBuildQuery, err)
	}

	var rp domain.RatePlan
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rp.ID, &rp.HotelID, &rp.RoomTypeID, &rp.Title, &rp.Meal, &rp.Refundable, &rp.CancelBeforeDays,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRatePlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRatePlan - scan rate plan: %v", ErrScanRow, err)
	}
	return &rp, nil
}

// ListRatePlans возвращает все тарифы
func (r *Repository) ListRatePlans(ctx context.Context) ([]domain.RatePlan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(
		"id", "hotel_id", "room_type_id", "title", "meal", "refundable", "cancel_before_days",
	).
		From("rate_plans").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRatePlans - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRatePlans - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []domain.RatePlan
	for rows.Next() {
		var rp domain.RatePlan
		if err := rows.Scan(
			&rp.ID, &rp.HotelID, &rp.RoomTypeID, &rp.Title, &rp.Meal, &rp.Refundable, &rp.CancelBeforeDays,
		); err != nil {
			return nil, fmt.Errorf("%w: ListRatePlans - scan rate plan: %v", ErrScanRow, err)
		}
		result = append(result, rp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRatePlans - rows: %v", ErrExecQuery, err)
	}
	return result, nil
}
