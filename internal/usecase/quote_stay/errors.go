package quote_stay

import "errors"

var (
	// ErrRatePlanNotFound возвращается, когда тариф не найден
	ErrRatePlanNotFound = errors.New("quote_stay: rate plan not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_stay: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_stay: internal error")
)
