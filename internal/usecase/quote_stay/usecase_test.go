package quote_stay

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
	catalogRepo "github.com/aidosbay/HBP-RatesService/internal/infra/storage/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCatalog struct {
	ratePlan *domain.RatePlan
	err      error
}

func (f *fakeCatalog) GetRatePlan(context.Context, int64) (*domain.RatePlan, error) {
	return f.ratePlan, f.err
}

type fakePrices struct{ prices []domain.Price }

func (f *fakePrices) ListByRateWindow(context.Context, int64, string, string) ([]domain.Price, error) {
	return f.prices, nil
}

type fakeAvails struct{ avails []domain.Availability }

func (f *fakeAvails) ListByRoomTypeWindow(context.Context, int64, string, string) ([]domain.Availability, error) {
	return f.avails, nil
}

type fakeRules struct{ rules []domain.Rule }

func (f *fakeRules) ListForScope(context.Context, int64, int64) ([]domain.Rule, error) {
	return f.rules, nil
}

func stayFixture() (*fakeCatalog, *fakePrices, *fakeAvails) {
	cat := &fakeCatalog{ratePlan: &domain.RatePlan{ID: 10, HotelID: 1, RoomTypeID: 5}}
	pr := &fakePrices{prices: []domain.Price{
		{ID: 1, RateID: 10, Date: "2025-10-15", Amount: 12000, Currency: "KZT"},
		{ID: 2, RateID: 10, Date: "2025-10-16", Amount: 10000, Currency: "KZT"},
	}}
	av := &fakeAvails{avails: []domain.Availability{
		{ID: 1, RoomTypeID: 5, Date: "2025-10-15", Available: 2},
		{ID: 2, RoomTypeID: 5, Date: "2025-10-16", Available: 1},
	}}
	return cat, pr, av
}

func TestQuoteStayHappyPath(t *testing.T) {
	cat, pr, av := stayFixture()
	uc := NewUseCase(cat, pr, av, &fakeRules{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RateID: 10, CheckIn: "2025-10-15", CheckOut: "2025-10-17",
	})
	require.NoError(t, err)

	assert.True(t, resp.OK)
	assert.Equal(t, int64(22000), resp.Total)
	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, "KZT", resp.Currency)
	assert.Empty(t, resp.Problems)
}

func TestQuoteStayCollectsProblems(t *testing.T) {
	cat, pr, av := stayFixture()
	// 17-е: ни цены, ни остатка
	uc := NewUseCase(cat, pr, av, &fakeRules{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RateID: 10, CheckIn: "2025-10-15", CheckOut: "2025-10-18",
	})
	require.NoError(t, err)

	assert.False(t, resp.OK)
	assert.Contains(t, resp.Problems, "Нет цены на 2025-10-17")
	assert.Contains(t, resp.Problems, "Нет доступности на 2025-10-17")
	// Сумма считается по дням с ценой и остаётся в ответе
	assert.Equal(t, int64(22000), resp.Total)
}

func TestQuoteStayMinStayRuleApplied(t *testing.T) {
	cat, pr, av := stayFixture()
	rules := &fakeRules{rules: []domain.Rule{
		{Kind: domain.RuleMinStay, Payload: domain.RulePayload{Value: 3}},
	}}
	uc := NewUseCase(cat, pr, av, rules, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RateID: 10, CheckIn: "2025-10-15", CheckOut: "2025-10-17",
	})
	require.NoError(t, err)

	assert.False(t, resp.OK)
	assert.Contains(t, resp.Problems, "min_stay 3")
}

func TestQuoteStayRatePlanNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeCatalog{err: catalogRepo.ErrRatePlanNotFound},
		&fakePrices{}, &fakeAvails{}, &fakeRules{}, nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		RateID: 99, CheckIn: "2025-10-15", CheckOut: "2025-10-17",
	})
	assert.ErrorIs(t, err, ErrRatePlanNotFound)
}

func TestQuoteStayInvalidDates(t *testing.T) {
	cat, pr, av := stayFixture()
	uc := NewUseCase(cat, pr, av, &fakeRules{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		RateID: 10, CheckIn: "15.10.2025", CheckOut: "2025-10-17",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RateID: 10, CheckIn: "2025-10-15"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
