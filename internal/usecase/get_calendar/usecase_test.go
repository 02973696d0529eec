package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidosbay/HBP-RatesService/internal/core/calendar"
	"github.com/aidosbay/HBP-RatesService/internal/domain"
	catalogRepo "github.com/aidosbay/HBP-RatesService/internal/infra/storage/catalog"
	"github.com/aidosbay/HBP-RatesService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTime struct{ now time.Time }

func (f fakeTime) Now() time.Time { return f.now }

type fakeCatalog struct {
	ratePlan *domain.RatePlan
	err      error
}

func (f *fakeCatalog) GetRatePlan(_ context.Context, _ int64) (*domain.RatePlan, error) {
	return f.ratePlan, f.err
}

type fakePrices struct {
	prices   []domain.Price
	gotFrom  string
	gotTo    string
	gotRate  int64
	err      error
}

func (f *fakePrices) ListByRateWindow(_ context.Context, rateID int64, fromISO, toISO string) ([]domain.Price, error) {
	f.gotRate, f.gotFrom, f.gotTo = rateID, fromISO, toISO
	return f.prices, f.err
}

type fakeAvails struct {
	avails []domain.Availability
	err    error
}

func (f *fakeAvails) ListByRoomTypeWindow(_ context.Context, _ int64, _, _ string) ([]domain.Availability, error) {
	return f.avails, f.err
}

type fakeRules struct {
	rules []domain.Rule
	err   error
}

func (f *fakeRules) ListForScope(_ context.Context, _, _ int64) ([]domain.Rule, error) {
	return f.rules, f.err
}

func newTestUseCase(cat *fakeCatalog, pr *fakePrices, av *fakeAvails, ru *fakeRules, now time.Time) *UseCase {
	uc := NewUseCase(cat, pr, av, ru, calendar.NewCache(4), nopLogger{})
	uc.timeProvider = fakeTime{now: now}
	return uc
}

func octoberRatePlan() *domain.RatePlan {
	return &domain.RatePlan{ID: 10, HotelID: 1, RoomTypeID: 5, Title: "Standard BB"}
}

func TestGetCalendarBuildsSixWeekGrid(t *testing.T) {
	cat := &fakeCatalog{ratePlan: octoberRatePlan()}
	pr := &fakePrices{prices: []domain.Price{
		{ID: 1, RateID: 10, Date: "2025-10-15", Amount: 12000, Currency: "KZT"},
	}}
	av := &fakeAvails{avails: []domain.Availability{
		{ID: 1, RoomTypeID: 5, Date: "2025-10-15", Available: 3},
	}}
	uc := newTestUseCase(cat, pr, av, &fakeRules{}, time.Time{})

	resp, err := uc.Execute(context.Background(), &Request{
		HotelID: 1, RoomTypeID: 5, RateID: 10, Month: ptr.Ptr("2025-10"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-10-01", resp.MonthStart)
	require.Len(t, resp.Weeks, domain.CalendarWeeks)
	for _, week := range resp.Weeks {
		assert.Len(t, week, domain.DaysPerWeek)
	}

	// Сетка октября 2025 начинается с понедельника 29 сентября
	assert.Equal(t, "2025-09-29", resp.Weeks[0][0].Date)

	// Окно загрузки данных совпадает с границами сетки
	assert.Equal(t, "2025-09-29", pr.gotFrom)
	assert.Equal(t, "2025-11-10", pr.gotTo)
	assert.Equal(t, int64(10), pr.gotRate)
}

func TestGetCalendarDefaultsToCurrentMonth(t *testing.T) {
	cat := &fakeCatalog{ratePlan: octoberRatePlan()}
	now := time.Date(2025, 10, 17, 13, 45, 0, 0, time.UTC)
	uc := newTestUseCase(cat, &fakePrices{}, &fakeAvails{}, &fakeRules{}, now)

	resp, err := uc.Execute(context.Background(), &Request{HotelID: 1, RoomTypeID: 5, RateID: 10})
	require.NoError(t, err)
	assert.Equal(t, "2025-10-01", resp.MonthStart)
}

func TestGetCalendarRatePlanNotFound(t *testing.T) {
	cat := &fakeCatalog{err: catalogRepo.ErrRatePlanNotFound}
	uc := newTestUseCase(cat, &fakePrices{}, &fakeAvails{}, &fakeRules{}, time.Time{})

	_, err := uc.Execute(context.Background(), &Request{
		HotelID: 1, RoomTypeID: 5, RateID: 10, Month: ptr.Ptr("2025-10"),
	})
	assert.ErrorIs(t, err, ErrRatePlanNotFound)
}

func TestGetCalendarScopeMismatch(t *testing.T) {
	cat := &fakeCatalog{ratePlan: &domain.RatePlan{ID: 10, HotelID: 2, RoomTypeID: 5}}
	uc := newTestUseCase(cat, &fakePrices{}, &fakeAvails{}, &fakeRules{}, time.Time{})

	_, err := uc.Execute(context.Background(), &Request{
		HotelID: 1, RoomTypeID: 5, RateID: 10, Month: ptr.Ptr("2025-10"),
	})
	assert.ErrorIs(t, err, ErrScopeMismatch)
}

func TestGetCalendarValidation(t *testing.T) {
	uc := newTestUseCase(&fakeCatalog{}, &fakePrices{}, &fakeAvails{}, &fakeRules{}, time.Time{})

	_, err := uc.Execute(context.Background(), &Request{HotelID: 0, RoomTypeID: 5, RateID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		HotelID: 1, RoomTypeID: 5, RateID: 10, Month: ptr.Ptr("октябрь"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
