package get_calendar

import "errors"

var (
	// ErrRatePlanNotFound возвращается, когда тариф не найден
	ErrRatePlanNotFound = errors.New("get_calendar: rate plan not found")

	// ErrScopeMismatch возвращается, когда тариф не относится к запрошенным отелю или типу номера
	ErrScopeMismatch = errors.New("get_calendar: rate plan does not belong to requested hotel or room type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
