package get_offer_context

import (
	"context"

	getOfferContext "github.com/m04kA/SMC-OfferService/internal/usecase/get_offer_context"
)

type GetOfferContextUseCase interface {
	Execute(ctx context.Context, req *getOfferContext.Request) (*getOfferContext.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
