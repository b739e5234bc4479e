package send_custom_offer

import (
	"context"

	sendCustomOffer "github.com/m04kA/SMC-OfferService/internal/usecase/send_custom_offer"
)

type SendCustomOfferUseCase interface {
	Execute(ctx context.Context, req *sendCustomOffer.Request) (*sendCustomOffer.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
