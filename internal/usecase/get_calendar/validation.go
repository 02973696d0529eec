package get_calendar

import (
	"fmt"
	"time"
)

// monthFormat формат параметра месяца
const monthFormat = "2006-01"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	if req.RoomTypeID <= 0 {
		return fmt.Errorf("%w: roomTypeID must be positive", ErrInvalidInput)
	}

	if req.RateID <= 0 {
		return fmt.Errorf("%w: rateID must be positive", ErrInvalidInput)
	}

	if req.Month != nil {
		if _, err := time.ParseInLocation(monthFormat, *req.Month, time.UTC); err != nil {
			return fmt.Errorf("%w: month must be in YYYY-MM format", ErrInvalidInput)
		}
	}

	return nil
}

// resolveMonth возвращает первое число запрошенного месяца; без параметра —
// месяц текущей даты now
func resolveMonth(req *Request, now time.Time) time.Time {
	if req.Month != nil {
		// Формат проверен в validateRequest
		m, _ := time.ParseInLocation(monthFormat, *req.Month, time.UTC)
		return m
	}
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
