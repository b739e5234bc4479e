package send_custom_offer

import (
	"context"
	"time"

	"github.com/m04kA/SMC-OfferService/internal/domain"
	"github.com/m04kA/SMC-OfferService/internal/integrations/marketplace"
)

// MarketplaceClient интерфейс клиента marketplace API
type MarketplaceClient interface {
	GetLocation(ctx context.Context, locationID int64) (*domain.Location, error)
	GetAddons(ctx context.Context, locationID int64) ([]domain.Addon, error)
	GetLocationBookings(ctx context.Context, locationID int64) ([]*domain.Booking, error)
	SendCustomOffer(ctx context.Context, userID int64, offer *marketplace.CustomOfferRequest) (*marketplace.CustomOfferResponse, error)
}

// PendingOfferChecker проверяет ожидающие предложения с graceful degradation
type PendingOfferChecker interface {
	CheckPendingOfferWithGracefulDegradation(ctx context.Context, userID, recipientID, locationID int64) (bool, error)
}

// OfferRepository журнал отправленных предложений
type OfferRepository interface {
	Create(ctx context.Context, offer *domain.SentOffer) (*domain.SentOffer, error)
}

// LocationCache сбрасывает закэшированный документ локации
type LocationCache interface {
	InvalidateLocation(ctx context.Context, locationID int64) error
}

// Metrics интерфейс метрик отправки
type Metrics interface {
	ObserveOfferSent(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
