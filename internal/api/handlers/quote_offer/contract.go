package quote_offer

import (
	"context"

	quoteOffer "github.com/m04kA/SMC-OfferService/internal/usecase/quote_offer"
)

type QuoteOfferUseCase interface {
	Execute(ctx context.Context, req *quoteOffer.Request) (*quoteOffer.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
