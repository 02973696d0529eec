package hotels

import (
	"context"
	"time"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
)

// CatalogRepository интерфейс каталога отелей
type CatalogRepository interface {
	GetHotel(ctx context.Context, id int64) (*domain.Hotel, error)
	ListRoomTypesByHotel(ctx context.Context, hotelID int64) ([]domain.RoomType, error)
	ListRatePlans(ctx context.Context) ([]domain.RatePlan, error)
}

// PriceRepository интерфейс репозитория цен
type PriceRepository interface {
	ListByHotelWindow(ctx context.Context, hotelID int64, fromISO, toISO string) ([]domain.Price, error)
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
