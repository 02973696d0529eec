package create_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRatePlanNotFound возвращается, когда тариф не найден
	ErrRatePlanNotFound = errors.New("create_booking: rate plan not found")

	// ErrQuoteRejected возвращается, когда котировка проживания не прошла
	// хотя бы одну проверку; детали — в QuoteRejectedError.Problems
	ErrQuoteRejected = errors.New("create_booking: quote rejected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// QuoteRejectedError несёт полный список замечаний котировки.
// errors.Is(err, ErrQuoteRejected) выполняется для значений этого типа.
type QuoteRejectedError struct {
	Problems []string
}

func (e *QuoteRejectedError) Error() string {
	return fmt.Sprintf("%v: %s", ErrQuoteRejected, strings.Join(e.Problems, "; "))
}

// Is связывает типизированную ошибку с сентинелом ErrQuoteRejected
func (e *QuoteRejectedError) Is(target error) bool {
	return target == ErrQuoteRejected
}
