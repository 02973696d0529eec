package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
	"github.com/aidosbay/HBP-RatesService/pkg/ptr"
)

func minStayRule(value any, roomTypeID, rateID *int64) domain.Rule {
	return domain.Rule{Kind: domain.RuleMinStay, Payload: domain.RulePayload{
		RoomTypeID: roomTypeID, RateID: rateID, Value: value,
	}}
}

func TestMinStayDefault(t *testing.T) {
	assert.Equal(t, 1, MinStay(nil, 1, 1))
	assert.Equal(t, 1, MinStay([]domain.Rule{
		minStayRule(5, ptr.Ptr(int64(99)), nil), // другой тип номера
	}, 1, 1))
}

func TestMinStayMostRestrictiveWins(t *testing.T) {
	rules := []domain.Rule{
		minStayRule(2, nil, nil),
		minStayRule(4, ptr.Ptr(int64(1)), nil),
		minStayRule(3, nil, ptr.Ptr(int64(1))),
	}
	assert.Equal(t, 4, MinStay(rules, 1, 1))
}

func TestMinStayWildcardEmptyPayloadMatchesAll(t *testing.T) {
	rules := []domain.Rule{minStayRule(3, nil, nil)}
	assert.Equal(t, 3, MinStay(rules, 7, 42))
}

func TestMinStayUnparsableValueSkipped(t *testing.T) {
	rules := []domain.Rule{
		minStayRule("not-a-number", nil, nil),
		minStayRule(nil, nil, nil),
		minStayRule(2, nil, nil),
	}
	assert.Equal(t, 2, MinStay(rules, 1, 1))
}

func TestMinStayValueFromJSONTypes(t *testing.T) {
	// JSON-декодер отдаёт числа как float64, иногда значения приходят строками
	rules := []domain.Rule{
		minStayRule(float64(3), nil, nil),
		minStayRule("5", nil, nil),
	}
	assert.Equal(t, 5, MinStay(rules, 1, 1))
}

func TestMaxStayDefaultAndMostRestrictive(t *testing.T) {
	assert.Equal(t, 365, MaxStay(nil, 1, 1))

	rules := []domain.Rule{
		{Kind: domain.RuleMaxStay, Payload: domain.RulePayload{Value: 30}},
		{Kind: domain.RuleMaxStay, Payload: domain.RulePayload{Value: 14, RateID: ptr.Ptr(int64(1))}},
	}
	assert.Equal(t, 14, MaxStay(rules, 1, 1))
}

func TestMinGreaterThanMaxNotReconciled(t *testing.T) {
	// Независимо заданные правила могут дать min_stay > max_stay;
	// ядро не согласует их, обе границы отдаются как есть
	rules := []domain.Rule{
		minStayRule(10, nil, nil),
		{Kind: domain.RuleMaxStay, Payload: domain.RulePayload{Value: 5}},
	}
	assert.Equal(t, 10, MinStay(rules, 1, 1))
	assert.Equal(t, 5, MaxStay(rules, 1, 1))
}

func TestIsCTADate(t *testing.T) {
	date := "2025-10-15"
	rules := []domain.Rule{
		{Kind: domain.RuleCTA, Payload: domain.RulePayload{Date: ptr.Ptr(date)}},
	}

	assert.True(t, IsCTADate(rules, 1, 1, date))
	assert.False(t, IsCTADate(rules, 1, 1, "2025-10-16"))
	assert.False(t, IsCTADate(nil, 1, 1, date))
}

func TestIsCTADateScopedToRate(t *testing.T) {
	date := "2025-10-15"
	rules := []domain.Rule{
		{Kind: domain.RuleCTA, Payload: domain.RulePayload{Date: ptr.Ptr(date), RateID: ptr.Ptr(int64(2))}},
	}

	assert.False(t, IsCTADate(rules, 1, 1, date))
	assert.True(t, IsCTADate(rules, 1, 2, date))
}

func TestIsCTADateAbsentValueIsTrue(t *testing.T) {
	date := "2025-10-15"
	rules := []domain.Rule{
		{Kind: domain.RuleCTA, Payload: domain.RulePayload{Date: ptr.Ptr(date), Value: nil}},
	}
	assert.True(t, IsCTADate(rules, 1, 1, date))
}

func TestIsCTADateFirstMatchWins(t *testing.T) {
	date := "2025-10-15"
	off := domain.Rule{Kind: domain.RuleCTA, Payload: domain.RulePayload{Date: ptr.Ptr(date), Value: false}}
	on := domain.Rule{Kind: domain.RuleCTA, Payload: domain.RulePayload{Date: ptr.Ptr(date), Value: true}}

	assert.False(t, IsCTADate([]domain.Rule{off, on}, 1, 1, date))
	assert.True(t, IsCTADate([]domain.Rule{on, off}, 1, 1, date))
}

func TestIsCTDDate(t *testing.T) {
	date := "2025-10-17"
	rules := []domain.Rule{
		{Kind: domain.RuleCTD, Payload: domain.RulePayload{Date: ptr.Ptr(date), Value: true}},
	}

	assert.True(t, IsCTDDate(rules, 1, 1, date))
	assert.False(t, IsCTDDate(rules, 1, 1, "2025-10-18"))
	// cta-правило не влияет на ctd-запрос
	assert.False(t, IsCTADate(rules, 1, 1, date))
}
