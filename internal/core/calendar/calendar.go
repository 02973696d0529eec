// Package calendar собирает календарь цен: сетку 6×7 ячеек с ценой,
// доступностью и флагами ограничений для выбранных типа номера и тарифа.
package calendar

import (
	"time"

	"github.com/aidosbay/HBP-RatesService/internal/core/dates"
	"github.com/aidosbay/HBP-RatesService/internal/core/index"
	"github.com/aidosbay/HBP-RatesService/internal/core/rules"
	"github.com/aidosbay/HBP-RatesService/internal/domain"
	"github.com/aidosbay/HBP-RatesService/pkg/ptr"
)

// BuildPriceCalendar строит сетку 6 строк по 7 ячеек, с понедельника,
// ровно на окно MonthGridBounds от месяца monthStart. Для каждого дня
// окна по порядку дат:
//  1. цена из индекса цен (нет записи — nil, день не продаётся);
//  2. остаток из индекса доступности (нет записи — 0);
//  3. available = остаток > 0;
//  4. флаги в фиксированном порядке: cta, ctd, soldout — порядок значим
//     для детерминированного отображения и тестов, не переставлять.
//
// Результат зависит только от шести аргументов, функция чистая и
// безопасна для мемоизации по полному кортежу параметров (см. Cache);
// инвалидация при изменении исходных коллекций — обязанность вызывающего.
func BuildPriceCalendar(
	roomTypeID int64,
	rateID int64,
	monthStart time.Time,
	prices []domain.Price,
	avails []domain.Availability,
	ruleSet []domain.Rule,
) [][]domain.DayCell {
	pIdx := index.PricesByRateDate(prices)
	aIdx := index.AvailabilityByRoomTypeDate(avails)

	start, end := dates.MonthGridBounds(monthStart)

	grid := make([][]domain.DayCell, 0, domain.CalendarWeeks)
	row := make([]domain.DayCell, 0, domain.DaysPerWeek)

	for d := range dates.Range(start, end) {
		iso := dates.ToISO(d)

		var amount *int64
		if v, ok := pIdx[index.RateDate{RateID: rateID, Date: iso}]; ok {
			amount = ptr.Ptr(v)
		}
		left := aIdx[index.RoomTypeDate{RoomTypeID: roomTypeID, Date: iso}]
		available := left > 0

		var flags []string
		if rules.IsCTADate(ruleSet, roomTypeID, rateID, iso) {
			flags = append(flags, domain.FlagCTA)
		}
		if rules.IsCTDDate(ruleSet, roomTypeID, rateID, iso) {
			flags = append(flags, domain.FlagCTD)
		}
		if !available {
			flags = append(flags, domain.FlagSoldOut)
		}

		row = append(row, domain.DayCell{
			Date:      iso,
			Amount:    amount,
			Available: available,
			Flags:     flags,
		})

		if len(row) == domain.DaysPerWeek {
			grid = append(grid, row)
			row = make([]domain.DayCell, 0, domain.DaysPerWeek)
		}
	}

	// Окно всегда кратно 7, но неполная строка всё равно не теряется
	if len(row) > 0 {
		grid = append(grid, row)
	}
	return grid
}
