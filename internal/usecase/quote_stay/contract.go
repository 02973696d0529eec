package quote_stay

import (
	"context"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetRatePlan(ctx context.Context, id int64) (*domain.RatePlan, error)
}

// PriceRepository интерфейс репозитория цен
type PriceRepository interface {
	ListByRateWindow(ctx context.Context, rateID int64, fromISO, toISO string) ([]domain.Price, error)
}

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	ListByRoomTypeWindow(ctx context.Context, roomTypeID int64, fromISO, toISO string) ([]domain.Availability, error)
}

// RuleRepository интерфейс репозитория правил
type RuleRepository interface {
	ListForScope(ctx context.Context, roomTypeID, rateID int64) ([]domain.Rule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
