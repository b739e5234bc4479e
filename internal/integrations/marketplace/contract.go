package marketplace

import (
	"context"

	"github.com/m04kA/SMC-OfferService/internal/domain"
)

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder учитывает исходящие вызовы API
type MetricsRecorder interface {
	ObserveUpstreamCall(endpoint, outcome string)
}

// LocationCache кэш документов локаций и каталогов доп. услуг.
// found=false означает промах кэша.
type LocationCache interface {
	GetLocation(ctx context.Context, locationID int64) (location *domain.Location, found bool, err error)
	SetLocation(ctx context.Context, location *domain.Location) error
	GetAddons(ctx context.Context, locationID int64) (addons []domain.Addon, found bool, err error)
	SetAddons(ctx context.Context, locationID int64, addons []domain.Addon) error
	Invalidate(ctx context.Context, locationID int64) error
}

// API методы marketplace API, которые декорирует CachedClient
type API interface {
	GetLocation(ctx context.Context, locationID int64) (*domain.Location, error)
	GetAddons(ctx context.Context, locationID int64) ([]domain.Addon, error)
	GetLocationBookings(ctx context.Context, locationID int64) ([]*domain.Booking, error)
	CheckPendingOffer(ctx context.Context, userID, recipientID, locationID int64) (bool, error)
	SendCustomOffer(ctx context.Context, userID int64, offer *CustomOfferRequest) (*CustomOfferResponse, error)
}
