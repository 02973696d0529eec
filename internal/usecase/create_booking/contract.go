package create_booking

import (
	"context"
	"time"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByKey(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

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

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
