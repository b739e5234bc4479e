package offers

import (
	"context"

	"github.com/m04kA/SMC-OfferService/internal/domain"
)

// OfferRepository интерфейс журнала отправленных предложений
type OfferRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SentOffer, error)
	ListBySender(ctx context.Context, senderID int64, limit, offset int) ([]*domain.SentOffer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
