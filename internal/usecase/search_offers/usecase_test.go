package search_offers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
	"github.com/aidosbay/HBP-RatesService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTime struct{ now time.Time }

func (f fakeTime) Now() time.Time { return f.now }

type fakeCatalog struct {
	hotels    []domain.Hotel
	roomTypes []domain.RoomType
	rates     []domain.RatePlan
}

func (f *fakeCatalog) ListHotels(context.Context) ([]domain.Hotel, error)       { return f.hotels, nil }
func (f *fakeCatalog) ListRoomTypes(context.Context) ([]domain.RoomType, error) { return f.roomTypes, nil }
func (f *fakeCatalog) ListRatePlans(context.Context) ([]domain.RatePlan, error) { return f.rates, nil }

type fakePrices struct {
	prices  []domain.Price
	gotFrom string
	gotTo   string
}

func (f *fakePrices) ListWindow(_ context.Context, fromISO, toISO string) ([]domain.Price, error) {
	f.gotFrom, f.gotTo = fromISO, toISO
	return f.prices, nil
}

type fakeAvails struct {
	avails []domain.Availability
}

func (f *fakeAvails) ListWindow(context.Context, string, string) ([]domain.Availability, error) {
	return f.avails, nil
}

func fixtureCatalog() *fakeCatalog {
	return &fakeCatalog{
		hotels: []domain.Hotel{
			{ID: 1, Name: "Arman", Stars: 4, City: "Алматы"},
			{ID: 2, Name: "Jibek", Stars: 5, City: "Астана"},
		},
		roomTypes: []domain.RoomType{
			{ID: 5, HotelID: 1, Name: "Standard"},
			{ID: 6, HotelID: 2, Name: "Suite"},
		},
		rates: []domain.RatePlan{
			{ID: 10, HotelID: 1, RoomTypeID: 5, Title: "BB", Meal: "breakfast", Refundable: true},
			{ID: 20, HotelID: 2, RoomTypeID: 6, Title: "RO", Meal: "none", Refundable: false},
		},
	}
}

func newTestUseCase(cat *fakeCatalog, pr *fakePrices, av *fakeAvails) *UseCase {
	uc := NewUseCase(cat, pr, av, 0, nopLogger{})
	uc.timeProvider = fakeTime{now: time.Date(2025, 10, 1, 9, 30, 0, 0, time.UTC)}
	return uc
}

func TestSearchOffersReturnsBestPriceInWindow(t *testing.T) {
	pr := &fakePrices{prices: []domain.Price{
		{ID: 1, RateID: 10, Date: "2025-10-03", Amount: 15000, Currency: "KZT"},
		{ID: 2, RateID: 10, Date: "2025-10-04", Amount: 12000, Currency: "KZT"},
	}}
	av := &fakeAvails{avails: []domain.Availability{
		{ID: 1, RoomTypeID: 5, Date: "2025-10-03", Available: 2},
		{ID: 2, RoomTypeID: 5, Date: "2025-10-04", Available: 1},
	}}
	uc := newTestUseCase(fixtureCatalog(), pr, av)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	require.Len(t, resp.Offers, 1)

	offer := resp.Offers[0]
	assert.Equal(t, int64(10), offer.RateID)
	assert.Equal(t, "Arman", offer.HotelName)
	assert.Equal(t, "Standard", offer.RoomTypeName)
	assert.Equal(t, int64(12000), offer.BestPrice)

	// Окно загрузки — [сегодня, сегодня+60) по умолчанию
	assert.Equal(t, "2025-10-01", pr.gotFrom)
	assert.Equal(t, "2025-11-30", pr.gotTo)
}

func TestSearchOffersFilters(t *testing.T) {
	pr := &fakePrices{prices: []domain.Price{
		{ID: 1, RateID: 10, Date: "2025-10-03", Amount: 15000, Currency: "KZT"},
		{ID: 2, RateID: 20, Date: "2025-10-03", Amount: 40000, Currency: "KZT"},
	}}
	av := &fakeAvails{avails: []domain.Availability{
		{ID: 1, RoomTypeID: 5, Date: "2025-10-03", Available: 2},
		{ID: 2, RoomTypeID: 6, Date: "2025-10-03", Available: 2},
	}}
	uc := newTestUseCase(fixtureCatalog(), pr, av)

	resp, err := uc.Execute(context.Background(), &Request{City: ptr.Ptr("Астана")})
	require.NoError(t, err)
	require.Len(t, resp.Offers, 1)
	assert.Equal(t, int64(20), resp.Offers[0].RateID)

	resp, err = uc.Execute(context.Background(), &Request{MaxPrice: ptr.Ptr(int64(20000))})
	require.NoError(t, err)
	require.Len(t, resp.Offers, 1)
	assert.Equal(t, int64(10), resp.Offers[0].RateID)

	resp, err = uc.Execute(context.Background(), &Request{
		MinStars:   ptr.Ptr(5),
		Refundable: ptr.Ptr(false),
	})
	require.NoError(t, err)
	require.Len(t, resp.Offers, 1)
	assert.Equal(t, int64(20), resp.Offers[0].RateID)
}

func TestSearchOffersLimitStopsIteration(t *testing.T) {
	pr := &fakePrices{prices: []domain.Price{
		{ID: 1, RateID: 10, Date: "2025-10-03", Amount: 15000, Currency: "KZT"},
		{ID: 2, RateID: 20, Date: "2025-10-03", Amount: 40000, Currency: "KZT"},
	}}
	av := &fakeAvails{avails: []domain.Availability{
		{ID: 1, RoomTypeID: 5, Date: "2025-10-03", Available: 2},
		{ID: 2, RoomTypeID: 6, Date: "2025-10-03", Available: 2},
	}}
	uc := newTestUseCase(fixtureCatalog(), pr, av)

	resp, err := uc.Execute(context.Background(), &Request{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Offers, 1)
}

func TestSearchOffersNoAvailabilityNoOffer(t *testing.T) {
	pr := &fakePrices{prices: []domain.Price{
		{ID: 1, RateID: 10, Date: "2025-10-03", Amount: 15000, Currency: "KZT"},
	}}
	uc := newTestUseCase(fixtureCatalog(), pr, &fakeAvails{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Empty(t, resp.Offers)
}

func TestSearchOffersValidation(t *testing.T) {
	uc := newTestUseCase(fixtureCatalog(), &fakePrices{}, &fakeAvails{})

	_, err := uc.Execute(context.Background(), &Request{Limit: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{LookaheadDays: -5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
