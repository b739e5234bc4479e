package send_custom_offer

import (
	"github.com/m04kA/SMC-OfferService/internal/domain"
	"github.com/m04kA/SMC-OfferService/internal/offercalc"
)

// Результаты отправки для метрик
const (
	resultSent        = "sent"
	resultInvalid     = "invalid"
	resultPending     = "pending"
	resultRejected    = "rejected"
	resultUnavailable = "unavailable"
)

// Request модель запроса на отправку индивидуального предложения
type Request struct {
	UserID      int64 // автор (хост)
	RecipientID int64
	LocationID  int64
	Draft       *domain.OfferDraft
}

// Response модель ответа после отправки
type Response struct {
	Offer            *domain.SentOffer
	Quote            offercalc.Quote
	MarketplaceID    *int64 // ID сообщения в marketplace, если API его вернул
	Journaled        bool   // запись в журнал сохранена
	PendingUnchecked bool   // проверку ожидающих предложений выполнить не удалось
}
