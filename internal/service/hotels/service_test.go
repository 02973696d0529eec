package hotels

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
	catalogRepo "github.com/aidosbay/HBP-RatesService/internal/infra/storage/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTime struct{ now time.Time }

func (f fakeTime) Now() time.Time { return f.now }

type fakeCatalog struct {
	hotel     *domain.Hotel
	hotelErr  error
	roomTypes []domain.RoomType
	ratePlans []domain.RatePlan
}

func (f *fakeCatalog) GetHotel(context.Context, int64) (*domain.Hotel, error) {
	return f.hotel, f.hotelErr
}

func (f *fakeCatalog) ListRoomTypesByHotel(context.Context, int64) ([]domain.RoomType, error) {
	return f.roomTypes, nil
}

func (f *fakeCatalog) ListRatePlans(context.Context) ([]domain.RatePlan, error) {
	return f.ratePlans, nil
}

type fakePrices struct {
	prices  []domain.Price
	gotFrom string
	gotTo   string
}

func (f *fakePrices) ListByHotelWindow(_ context.Context, _ int64, fromISO, toISO string) ([]domain.Price, error) {
	f.gotFrom, f.gotTo = fromISO, toISO
	return f.prices, nil
}

func fixtureCatalog() *fakeCatalog {
	return &fakeCatalog{
		hotel: &domain.Hotel{ID: 1, Name: "Arman", Stars: 4, City: "Алматы", Features: []string{"wifi"}},
		roomTypes: []domain.RoomType{
			{ID: 5, HotelID: 1, Name: "Standard", Capacity: 2, Beds: 1},
			{ID: 6, HotelID: 1, Name: "Suite", Capacity: 4, Beds: 2},
		},
		ratePlans: []domain.RatePlan{
			{ID: 10, HotelID: 1, RoomTypeID: 5, Title: "BB", Meal: "breakfast", Refundable: true},
			{ID: 11, HotelID: 1, RoomTypeID: 5, Title: "RO", Meal: "none", Refundable: false},
			{ID: 20, HotelID: 1, RoomTypeID: 6, Title: "BB", Meal: "breakfast", Refundable: true},
		},
	}
}

func newTestService(cat *fakeCatalog, pr *fakePrices) *Service {
	svc := NewService(cat, pr, 0, nopLogger{})
	svc.timeProvider = fakeTime{now: time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)}
	return svc
}

func TestGetHotelCard(t *testing.T) {
	pr := &fakePrices{prices: []domain.Price{
		{ID: 1, RateID: 10, Date: "2025-10-03", Amount: 15000, Currency: "KZT"},
		{ID: 2, RateID: 10, Date: "2025-10-04", Amount: 12000, Currency: "KZT"},
		{ID: 3, RateID: 11, Date: "2025-10-03", Amount: 9000, Currency: "KZT"},
	}}
	svc := newTestService(fixtureCatalog(), pr)

	resp, err := svc.GetHotelCard(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Arman", resp.Name)
	require.Len(t, resp.RoomTypes, 2)

	standard := resp.RoomTypes[0]
	require.Len(t, standard.RatePlans, 2)

	bb := standard.RatePlans[0]
	require.NotNil(t, bb.PriceFrom)
	assert.Equal(t, int64(12000), *bb.PriceFrom)
	assert.Equal(t, "KZT", bb.Currency)

	ro := standard.RatePlans[1]
	require.NotNil(t, ro.PriceFrom)
	assert.Equal(t, int64(9000), *ro.PriceFrom)

	// Тариф без цен в окне остаётся в карточке, но без priceFrom
	suite := resp.RoomTypes[1]
	require.Len(t, suite.RatePlans, 1)
	assert.Nil(t, suite.RatePlans[0].PriceFrom)

	// Окно загрузки цен — [сегодня, сегодня+60) по умолчанию
	assert.Equal(t, "2025-10-01", pr.gotFrom)
	assert.Equal(t, "2025-11-30", pr.gotTo)
}

func TestGetHotelCardNotFound(t *testing.T) {
	svc := newTestService(&fakeCatalog{hotelErr: catalogRepo.ErrHotelNotFound}, &fakePrices{})

	_, err := svc.GetHotelCard(context.Background(), 99)
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestGetHotelCardInvalidID(t *testing.T) {
	svc := newTestService(fixtureCatalog(), &fakePrices{})

	_, err := svc.GetHotelCard(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
