package quote_offer

import (
	"context"

	"github.com/m04kA/SMC-OfferService/internal/domain"
)

// MarketplaceClient интерфейс клиента marketplace API
type MarketplaceClient interface {
	GetLocation(ctx context.Context, locationID int64) (*domain.Location, error)
	GetAddons(ctx context.Context, locationID int64) ([]domain.Addon, error)
}

// Metrics интерфейс метрик расчёта
type Metrics interface {
	ObserveQuote(total float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
