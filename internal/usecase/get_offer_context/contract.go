package get_offer_context

import (
	"context"

	"github.com/m04kA/SMC-OfferService/internal/domain"
)

// MarketplaceClient интерфейс клиента marketplace API
type MarketplaceClient interface {
	GetLocation(ctx context.Context, locationID int64) (*domain.Location, error)
	GetAddons(ctx context.Context, locationID int64) ([]domain.Addon, error)
	GetLocationBookings(ctx context.Context, locationID int64) ([]*domain.Booking, error)
	CheckPendingOffer(ctx context.Context, userID, recipientID, locationID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
