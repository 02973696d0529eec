package search_offers

import (
	"context"
	"time"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListHotels(ctx context.Context) ([]domain.Hotel, error)
	ListRoomTypes(ctx context.Context) ([]domain.RoomType, error)
	ListRatePlans(ctx context.Context) ([]domain.RatePlan, error)
}

// PriceRepository интерфейс репозитория цен
type PriceRepository interface {
	ListWindow(ctx context.Context, fromISO, toISO string) ([]domain.Price, error)
}

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	ListWindow(ctx context.Context, fromISO, toISO string) ([]domain.Availability, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
