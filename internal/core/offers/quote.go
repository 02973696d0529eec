package offers

import (
	"fmt"

	"github.com/aidosbay/HBP-RatesService/internal/core/dates"
	"github.com/aidosbay/HBP-RatesService/internal/core/index"
	"github.com/aidosbay/HBP-RatesService/internal/core/rules"
	"github.com/aidosbay/HBP-RatesService/internal/domain"
)

// Quote результат котировки проживания. Total может быть частичным и
// бессмысленным при OK=false: перед записью бронирования вызывающий
// обязан проверить OK. Problems отдаются пользователю дословно.
type Quote struct {
	Total    int64
	OK       bool
	Problems []string
}

// QuoteStay считает котировку точного проживания [checkin, checkout) по
// тарифу и типу номера. Ошибка возвращается только для некорректных
// ISO-дат; нарушения бизнес-правил никогда не прерывают расчёт — функция
// всегда доходит до конца и отдаёт полный список замечаний, чтобы UI мог
// показать пользователю сразу все причины отказа, а не первую.
//
// Проверки цены и доступности по дням независимы: день без цены даёт 0 в
// сумму и замечание, отсутствие остатка — отдельное замечание, и оба
// замечания могут сосуществовать для одной даты.
func QuoteStay(
	rateID int64,
	roomTypeID int64,
	checkinISO string,
	checkoutISO string,
	prices []domain.Price,
	avails []domain.Availability,
	ruleSet []domain.Rule,
) (*Quote, error) {
	checkin, err := dates.ToDate(checkinISO)
	if err != nil {
		return nil, err
	}
	checkout, err := dates.ToDate(checkoutISO)
	if err != nil {
		return nil, err
	}

	pIdx := index.PricesByRateDate(prices)
	aIdx := index.AvailabilityByRoomTypeDate(avails)

	nights := dates.Nights(checkin, checkout)

	var problems []string

	// Проверки длины проживания выполняются и при nights = 0
	minStay := rules.MinStay(ruleSet, roomTypeID, rateID)
	maxStay := rules.MaxStay(ruleSet, roomTypeID, rateID)
	if nights < minStay {
		problems = append(problems, fmt.Sprintf("min_stay %d", minStay))
	}
	if nights > maxStay {
		problems = append(problems, fmt.Sprintf("max_stay %d", maxStay))
	}

	if rules.IsCTADate(ruleSet, roomTypeID, rateID, checkinISO) {
		problems = append(problems, "CTA (запрет заезда)")
	}
	if rules.IsCTDDate(ruleSet, roomTypeID, rateID, checkoutISO) {
		problems = append(problems, "CTD (запрет выезда)")
	}

	var total int64
	for d := range dates.Range(checkin, checkout) {
		iso := dates.ToISO(d)

		amount, ok := pIdx[index.RateDate{RateID: rateID, Date: iso}]
		if !ok {
			problems = append(problems, fmt.Sprintf("Нет цены на %s", iso))
		} else {
			total += amount
		}

		if aIdx[index.RoomTypeDate{RoomTypeID: roomTypeID, Date: iso}] <= 0 {
			problems = append(problems, fmt.Sprintf("Нет доступности на %s", iso))
		}
	}

	return &Quote{
		Total:    total,
		OK:       len(problems) == 0,
		Problems: problems,
	}, nil
}
