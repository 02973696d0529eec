package dates

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDateToISORoundTrip(t *testing.T) {
	for _, iso := range []string{"2025-01-01", "2025-02-28", "2024-02-29", "2025-12-31", "2025-10-15"} {
		d, err := ToDate(iso)
		require.NoError(t, err)
		assert.Equal(t, iso, ToISO(d))
	}
}

func TestToDateInvalidFormat(t *testing.T) {
	for _, iso := range []string{"", "2025-13-01", "2025-02-30", "15.10.2025", "2025/10/15", "not-a-date"} {
		_, err := ToDate(iso)
		require.Error(t, err, "input %q", iso)
		assert.True(t, errors.Is(err, ErrInvalidFormat))
	}
}

func TestRangeLengthAndOrder(t *testing.T) {
	d1, _ := ToDate("2025-10-01")
	d2, _ := ToDate("2025-10-11")

	var got []time.Time
	for d := range Range(d1, d2) {
		got = append(got, d)
	}

	require.Len(t, got, 10)
	for i, d := range got {
		assert.Equal(t, d1.AddDate(0, 0, i), d)
	}
}

func TestRangeEmpty(t *testing.T) {
	d1, _ := ToDate("2025-10-11")
	d2, _ := ToDate("2025-10-01")

	count := 0
	for range Range(d1, d1) {
		count++
	}
	assert.Zero(t, count, "[d, d) must be empty")

	for range Range(d1, d2) {
		count++
	}
	assert.Zero(t, count, "reversed bounds must be empty")
}

func TestRangeRestartable(t *testing.T) {
	d1, _ := ToDate("2025-10-01")
	d2, _ := ToDate("2025-10-04")
	seq := Range(d1, d2)

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, first, second)
}

func TestNights(t *testing.T) {
	d1, _ := ToDate("2025-10-15")
	d2, _ := ToDate("2025-10-17")
	assert.Equal(t, 2, Nights(d1, d2))
	assert.Equal(t, 0, Nights(d1, d1))
	assert.Equal(t, 0, Nights(d2, d1))
}

func TestMonthGridBounds(t *testing.T) {
	// По одному месяцу на каждый день недели первого числа
	for _, iso := range []string{
		"2025-09-01", // понедельник
		"2025-07-01", // вторник
		"2025-10-14", // первое число — среда
		"2025-05-01", // четверг
		"2025-08-20", // первое число — пятница
		"2025-11-01", // суббота
		"2025-06-01", // воскресенье
	} {
		d, err := ToDate(iso)
		require.NoError(t, err)

		start, end := MonthGridBounds(d)
		assert.Equal(t, time.Monday, start.Weekday(), "month of %s", iso)
		assert.Equal(t, start.AddDate(0, 0, 42), end)

		first := FirstDayOfMonth(d)
		assert.False(t, start.After(first), "start must not be after the 1st")
		assert.True(t, first.Sub(start).Hours() <= 6*24, "1st within the first row")
	}
}
