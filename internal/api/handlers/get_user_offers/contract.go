package get_user_offers

import (
	"context"

	"github.com/m04kA/SMC-OfferService/internal/service/offers/models"
)

type OfferService interface {
	GetSenderOffers(ctx context.Context, req *models.GetSenderOffersRequest) (*models.OfferListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
