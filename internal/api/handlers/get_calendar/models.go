package get_calendar

import (
	"github.com/aidosbay/HBP-RatesService/internal/domain"
	getCalendar "github.com/aidosbay/HBP-RatesService/internal/usecase/get_calendar"
)

// DayCellResponse ячейка календаря в HTTP-ответе
type DayCellResponse struct {
	Date      string   `json:"date"`             // "2025-10-15"
	Amount    *int64   `json:"amount,omitempty"` // nil — день не продаётся
	Available bool     `json:"available"`
	Flags     []string `json:"flags,omitempty"` // "cta", "ctd", "soldout"
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	HotelID    int64               `json:"hotelId"`
	RoomTypeID int64               `json:"roomTypeId"`
	RateID     int64               `json:"rateId"`
	MonthStart string              `json:"monthStart"`
	Weeks      [][]DayCellResponse `json:"weeks"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	weeks := make([][]DayCellResponse, len(resp.Weeks))
	for i, week := range resp.Weeks {
		row := make([]DayCellResponse, len(week))
		for j, cell := range week {
			row[j] = fromDomainCell(cell)
		}
		weeks[i] = row
	}

	return &CalendarResponse{
		HotelID:    resp.HotelID,
		RoomTypeID: resp.RoomTypeID,
		RateID:     resp.RateID,
		MonthStart: resp.MonthStart,
		Weeks:      weeks,
	}
}

func fromDomainCell(cell domain.DayCell) DayCellResponse {
	return DayCellResponse{
		Date:      cell.Date,
		Amount:    cell.Amount,
		Available: cell.Available,
		Flags:     cell.Flags,
	}
}
