package create_booking

import (
	"fmt"

	"github.com/aidosbay/HBP-RatesService/internal/core/dates"
	"github.com/aidosbay/HBP-RatesService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RateID <= 0 {
		return fmt.Errorf("%w: rateID must be positive", ErrInvalidInput)
	}

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: guests must be between %d and %d",
			ErrInvalidInput, domain.MinGuests, domain.MaxGuests)
	}

	checkin, err := dates.ToDate(req.CheckIn)
	if err != nil {
		return fmt.Errorf("%w: invalid checkIn: %v", ErrInvalidInput, err)
	}

	checkout, err := dates.ToDate(req.CheckOut)
	if err != nil {
		return fmt.Errorf("%w: invalid checkOut: %v", ErrInvalidInput, err)
	}

	if !checkout.After(checkin) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidInput)
	}

	return nil
}
