package get_offer

import (
	"context"

	"github.com/m04kA/SMC-OfferService/internal/service/offers/models"
)

type OfferService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.OfferResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
