package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidosbay/HBP-RatesService/internal/core/dates"
	"github.com/aidosbay/HBP-RatesService/internal/domain"
	"github.com/aidosbay/HBP-RatesService/pkg/ptr"
)

func mustDate(t *testing.T, iso string) time.Time {
	t.Helper()
	d, err := dates.ToDate(iso)
	require.NoError(t, err)
	return d
}

func TestBuildPriceCalendarShape(t *testing.T) {
	monthStart := mustDate(t, "2025-10-01")

	grid := BuildPriceCalendar(1, 1, monthStart, nil, nil, nil)

	require.Len(t, grid, domain.CalendarWeeks)
	start, _ := dates.MonthGridBounds(monthStart)
	i := 0
	for _, row := range grid {
		require.Len(t, row, domain.DaysPerWeek)
		for _, cell := range row {
			assert.Equal(t, dates.ToISO(start.AddDate(0, 0, i)), cell.Date)
			i++
		}
	}
	assert.Equal(t, domain.CalendarDays, i)
}

func TestBuildPriceCalendarCells(t *testing.T) {
	monthStart := mustDate(t, "2025-10-01")
	prices := []domain.Price{
		{ID: 1, RateID: 1, Date: "2025-10-15", Amount: 10000, Currency: "KZT"},
	}
	avails := []domain.Availability{
		{ID: 1, RoomTypeID: 1, Date: "2025-10-15", Available: 2},
		{ID: 2, RoomTypeID: 1, Date: "2025-10-16", Available: 0},
	}

	grid := BuildPriceCalendar(1, 1, monthStart, prices, avails, nil)

	cells := map[string]domain.DayCell{}
	for _, row := range grid {
		for _, c := range row {
			cells[c.Date] = c
		}
	}

	priced := cells["2025-10-15"]
	require.NotNil(t, priced.Amount)
	assert.Equal(t, int64(10000), *priced.Amount)
	assert.True(t, priced.Available)
	assert.Empty(t, priced.Flags)

	// остаток 0 — день продаётся как soldout, цены нет
	soldOut := cells["2025-10-16"]
	assert.Nil(t, soldOut.Amount)
	assert.False(t, soldOut.Available)
	assert.Equal(t, []string{domain.FlagSoldOut}, soldOut.Flags)

	// дата вовсе без записи о доступности — тоже soldout
	missing := cells["2025-10-17"]
	assert.False(t, missing.Available)
	assert.True(t, missing.HasFlag(domain.FlagSoldOut))
}

func TestBuildPriceCalendarFlagOrder(t *testing.T) {
	monthStart := mustDate(t, "2025-10-01")
	date := "2025-10-15"
	ruleSet := []domain.Rule{
		{ID: 1, Kind: domain.RuleCTA, Payload: domain.RulePayload{Date: ptr.Ptr(date)}},
		{ID: 2, Kind: domain.RuleCTD, Payload: domain.RulePayload{Date: ptr.Ptr(date)}},
	}

	grid := BuildPriceCalendar(1, 1, monthStart, nil, nil, ruleSet)

	for _, row := range grid {
		for _, c := range row {
			if c.Date == date {
				// порядок флагов фиксирован: cta, ctd, soldout
				assert.Equal(t, []string{domain.FlagCTA, domain.FlagCTD, domain.FlagSoldOut}, c.Flags)
				return
			}
		}
	}
	t.Fatalf("date %s not found in grid", date)
}

func TestCacheReturnsSameResult(t *testing.T) {
	monthStart := mustDate(t, "2025-10-01")
	prices := []domain.Price{{ID: 1, RateID: 1, Date: "2025-10-15", Amount: 10000}}
	avails := []domain.Availability{{ID: 1, RoomTypeID: 1, Date: "2025-10-15", Available: 1}}

	cache := NewCache(8)

	first := cache.Get(1, 1, monthStart, prices, avails, nil)
	second := cache.Get(1, 1, monthStart, prices, avails, nil)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())

	direct := BuildPriceCalendar(1, 1, monthStart, prices, avails, nil)
	assert.Equal(t, direct, first)
}

func TestCacheKeyedByValues(t *testing.T) {
	monthStart := mustDate(t, "2025-10-01")
	cache := NewCache(8)

	cache.Get(1, 1, monthStart, nil, nil, nil)
	cache.Get(1, 2, monthStart, nil, nil, nil)
	cache.Get(1, 1, monthStart, []domain.Price{{ID: 1, RateID: 1, Date: "2025-10-15", Amount: 100}}, nil, nil)

	assert.Equal(t, 3, cache.Len())
}

func TestCacheEvictsOldest(t *testing.T) {
	monthStart := mustDate(t, "2025-10-01")
	cache := NewCache(2)

	cache.Get(1, 1, monthStart, nil, nil, nil)
	cache.Get(1, 2, monthStart, nil, nil, nil)
	cache.Get(1, 3, monthStart, nil, nil, nil)

	assert.Equal(t, 2, cache.Len())
}

func TestCacheDisabled(t *testing.T) {
	monthStart := mustDate(t, "2025-10-01")
	cache := NewCache(0)

	grid := cache.Get(1, 1, monthStart, nil, nil, nil)
	require.Len(t, grid, domain.CalendarWeeks)
	assert.Zero(t, cache.Len())
}
