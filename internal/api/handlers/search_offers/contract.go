package search_offers

import (
	"context"

	searchOffers "github.com/aidosbay/HBP-RatesService/internal/usecase/search_offers"
)

type SearchOffersUseCase interface {
	Execute(ctx context.Context, req *searchOffers.Request) (*searchOffers.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
