// Package rules вычисляет ограничения бронирования по набору правил:
// минимальное/максимальное проживание, запрет заезда (CTA) и выезда (CTD).
//
// Сопоставление правила с запросом структурное: правило подходит, если ни
// одно поле, заданное и в payload правила, и в запросе, не расходится по
// значению. Отсутствующие поля payload — wildcard, пустой payload подходит
// ко всему. Это "не найдено расхождения", а не точное совпадение ключей.
package rules

import (
	"encoding/json"
	"strconv"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
)

// match проверяет структурное совпадение payload правила с запросом.
// nil-условие запроса и nil-поле payload пропускаются.
func match(p domain.RulePayload, roomTypeID, rateID *int64, date *string) bool {
	if roomTypeID != nil && p.RoomTypeID != nil && *p.RoomTypeID != *roomTypeID {
		return false
	}
	if rateID != nil && p.RateID != nil && *p.RateID != *rateID {
		return false
	}
	if date != nil && p.Date != nil && *p.Date != *date {
		return false
	}
	return true
}

// intValue приводит значение payload к int. Значения правил приходят из
// JSON-колонки, поэтому тип не гарантирован: принимаются int, int64,
// float64, json.Number и числовая строка.
func intValue(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// boolValue приводит значение payload к bool; отсутствующее значение (nil)
// трактуется как true — само наличие правила закрывает дату.
func boolValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return val
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case string:
		return val != "" && val != "0" && val != "false"
	default:
		return true
	}
}

// MinStay возвращает минимальное число ночей для (тип номера, тариф):
// максимум значений всех подходящих правил min_stay — побеждает самое
// строгое. Без правил — domain.DefaultMinStay. Неразбираемые значения
// молча пропускаются и никогда не фатальны.
func MinStay(ruleSet []domain.Rule, roomTypeID, rateID int64) int {
	best := domain.DefaultMinStay
	for _, r := range ruleSet {
		if r.Kind != domain.RuleMinStay || !match(r.Payload, &roomTypeID, &rateID, nil) {
			continue
		}
		if val, ok := intValue(r.Payload.Value); ok && val > best {
			best = val
		}
	}
	return best
}

// MaxStay возвращает максимальное число ночей: минимум значений всех
// подходящих правил max_stay. Без правил — domain.DefaultMaxStay.
func MaxStay(ruleSet []domain.Rule, roomTypeID, rateID int64) int {
	best := domain.DefaultMaxStay
	for _, r := range ruleSet {
		if r.Kind != domain.RuleMaxStay || !match(r.Payload, &roomTypeID, &rateID, nil) {
			continue
		}
		if val, ok := intValue(r.Payload.Value); ok && val < best {
			best = val
		}
	}
	return best
}

// IsCTADate true, если заезд в дату запрещён подходящим правилом cta.
// Побеждает первое структурное совпадение в порядке слайса: набор правил
// не должен содержать пересекающихся правил одного вида для одной даты и
// области — это предусловие для вызывающих, конфликт здесь не разрешается.
func IsCTADate(ruleSet []domain.Rule, roomTypeID, rateID int64, isoDate string) bool {
	for _, r := range ruleSet {
		if r.Kind == domain.RuleCTA && match(r.Payload, &roomTypeID, &rateID, &isoDate) {
			return boolValue(r.Payload.Value)
		}
	}
	return false
}

// IsCTDDate true, если выезд в дату запрещён подходящим правилом ctd.
// Семантика совпадения — как у IsCTADate.
func IsCTDDate(ruleSet []domain.Rule, roomTypeID, rateID int64, isoDate string) bool {
	for _, r := range ruleSet {
		if r.Kind == domain.RuleCTD && match(r.Payload, &roomTypeID, &rateID, &isoDate) {
			return boolValue(r.Payload.Value)
		}
	}
	return false
}
