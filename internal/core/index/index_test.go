package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
)

func TestPricesByRateDate(t *testing.T) {
	prices := []domain.Price{
		{ID: 1, RateID: 1, Date: "2025-10-15", Amount: 10000, Currency: "KZT"},
		{ID: 2, RateID: 1, Date: "2025-10-16", Amount: 12000, Currency: "KZT"},
		{ID: 3, RateID: 2, Date: "2025-10-15", Amount: 20000, Currency: "KZT"},
	}

	idx := PricesByRateDate(prices)

	require.Len(t, idx, 3)
	assert.Equal(t, int64(10000), idx[RateDate{RateID: 1, Date: "2025-10-15"}])
	assert.Equal(t, int64(12000), idx[RateDate{RateID: 1, Date: "2025-10-16"}])
	assert.Equal(t, int64(20000), idx[RateDate{RateID: 2, Date: "2025-10-15"}])

	_, ok := idx[RateDate{RateID: 3, Date: "2025-10-15"}]
	assert.False(t, ok)
}

func TestPricesByRateDateLastWriteWins(t *testing.T) {
	prices := []domain.Price{
		{ID: 1, RateID: 1, Date: "2025-10-15", Amount: 10000},
		{ID: 2, RateID: 1, Date: "2025-10-15", Amount: 11000},
	}

	idx := PricesByRateDate(prices)

	require.Len(t, idx, 1)
	assert.Equal(t, int64(11000), idx[RateDate{RateID: 1, Date: "2025-10-15"}])
}

func TestAvailabilityByRoomTypeDate(t *testing.T) {
	avails := []domain.Availability{
		{ID: 1, RoomTypeID: 1, Date: "2025-10-15", Available: 3},
		{ID: 2, RoomTypeID: 1, Date: "2025-10-16", Available: 0},
	}

	idx := AvailabilityByRoomTypeDate(avails)

	assert.Equal(t, 3, idx[RoomTypeDate{RoomTypeID: 1, Date: "2025-10-15"}])
	assert.Equal(t, 0, idx[RoomTypeDate{RoomTypeID: 1, Date: "2025-10-16"}])
}

func TestPricesByRateSortedByDate(t *testing.T) {
	prices := []domain.Price{
		{ID: 1, RateID: 1, Date: "2025-10-17", Amount: 9000},
		{ID: 2, RateID: 1, Date: "2025-10-15", Amount: 10000},
		{ID: 3, RateID: 1, Date: "2025-10-16", Amount: 12000},
		{ID: 4, RateID: 2, Date: "2025-10-15", Amount: 20000},
	}

	idx := PricesByRate(prices)

	require.Len(t, idx[1], 3)
	assert.Equal(t, "2025-10-15", idx[1][0].Date)
	assert.Equal(t, "2025-10-16", idx[1][1].Date)
	assert.Equal(t, "2025-10-17", idx[1][2].Date)
	require.Len(t, idx[2], 1)
}

func TestByIDIndexes(t *testing.T) {
	hotels := []domain.Hotel{{ID: 1, Name: "Hilton Almaty"}, {ID: 2, Name: "Rixos Astana"}}
	roomTypes := []domain.RoomType{{ID: 10, HotelID: 1, Name: "Стандарт"}}
	rates := []domain.RatePlan{{ID: 100, HotelID: 1, RoomTypeID: 10, Title: "BB"}}

	assert.Equal(t, "Rixos Astana", HotelsByID(hotels)[2].Name)
	assert.Equal(t, "Стандарт", RoomTypesByID(roomTypes)[10].Name)
	assert.Equal(t, "BB", RatesByID(rates)[100].Title)
}
