package quote_offer

import (
	"github.com/m04kA/SMC-OfferService/internal/domain"
	"github.com/m04kA/SMC-OfferService/internal/offercalc"
)

// Request модель запроса расчёта стоимости черновика
type Request struct {
	UserID     int64
	LocationID int64
	Draft      *domain.OfferDraft
}

// Response расчёт с разбивкой и результатом проверки перед отправкой
type Response struct {
	Quote           offercalc.Quote
	CustomPriceMode bool
	// ValidationError причина, по которой черновик нельзя отправить (без учёта ожидающих предложений); nil - можно
	ValidationError error
	Degraded        []string
}
