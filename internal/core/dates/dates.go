// Package dates содержит календарную арифметику ядра: разбор ISO-дат,
// ленивый полуинтервал дат и границы сетки месяца 6×7.
package dates

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
)

// ErrInvalidFormat возвращается при некорректной ISO-дате.
// Ошибка формата фатальна для вызвавшей операции и не заменяется дефолтом.
var ErrInvalidFormat = errors.New("dates: invalid ISO date")

// ToDate разбирает строку "YYYY-MM-DD" в дату (UTC, полночь)
func ToDate(iso string) (time.Time, error) {
	d, err := time.ParseInLocation(domain.DateFormat, iso, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, iso)
	}
	return d, nil
}

// ToISO форматирует дату в "YYYY-MM-DD"
func ToISO(d time.Time) string {
	return d.Format(domain.DateFormat)
}

// Range возвращает ленивый полуинтервал [d1, d2) с шагом в сутки.
// Пустой, если d1 >= d2. Каждый range по результату — независимый обход.
func Range(d1, d2 time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for cur := d1; cur.Before(d2); cur = cur.AddDate(0, 0, 1) {
			if !yield(cur) {
				return
			}
		}
	}
}

// Nights число ночей в полуинтервале [checkIn, checkOut); 0 если
// checkOut <= checkIn.
func Nights(checkIn, checkOut time.Time) int {
	n := int(checkOut.Sub(checkIn).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// FirstDayOfMonth первое число месяца даты d
func FirstDayOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
}

// MonthGridBounds возвращает (grid_start, grid_end_exclusive) для сетки
// в 6 полных недель: понедельник на или до первого числа месяца даты d
// и ровно 42 дня вперёд. Размер сетки не зависит от длины месяца.
func MonthGridBounds(d time.Time) (time.Time, time.Time) {
	first := FirstDayOfMonth(d)
	// time.Weekday: Sunday=0; сетка начинается с понедельника
	offset := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, domain.CalendarDays)
	return start, end
}
