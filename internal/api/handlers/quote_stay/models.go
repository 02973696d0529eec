package quote_stay

import (
	quoteStay "github.com/aidosbay/HBP-RatesService/internal/usecase/quote_stay"
)

// QuoteStayRequest HTTP request model
type QuoteStayRequest struct {
	RateID   int64  `json:"rateId"`
	CheckIn  string `json:"checkIn"`  // "2025-10-15"
	CheckOut string `json:"checkOut"` // "2025-10-18"
}

// QuoteResponse HTTP response model. При ok=false total частичен и
// пригоден только для отображения, problems перечисляют все причины.
type QuoteResponse struct {
	RateID   int64    `json:"rateId"`
	CheckIn  string   `json:"checkIn"`
	CheckOut string   `json:"checkOut"`
	Nights   int      `json:"nights"`
	Total    int64    `json:"total"`
	Currency string   `json:"currency"`
	OK       bool     `json:"ok"`
	Problems []string `json:"problems"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteStayRequest) ToUseCaseRequest() *quoteStay.Request {
	return &quoteStay.Request{
		RateID:   r.RateID,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteStay.Response) *QuoteResponse {
	problems := resp.Problems
	if problems == nil {
		problems = []string{}
	}

	return &QuoteResponse{
		RateID:   resp.RateID,
		CheckIn:  resp.CheckIn,
		CheckOut: resp.CheckOut,
		Nights:   resp.Nights,
		Total:    resp.Total,
		Currency: resp.Currency,
		OK:       resp.OK,
		Problems: problems,
	}
}
