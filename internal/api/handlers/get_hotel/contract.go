package get_hotel

import (
	"context"

	"github.com/aidosbay/HBP-RatesService/internal/service/hotels/models"
)

// HotelService интерфейс сервиса карточки отеля
type HotelService interface {
	GetHotelCard(ctx context.Context, hotelID int64) (*models.HotelResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
