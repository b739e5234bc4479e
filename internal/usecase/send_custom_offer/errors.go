package send_custom_offer

import (
	"errors"

	"github.com/m04kA/SMC-OfferService/internal/offercalc"
)

// Ошибки проверки перед отправкой
var (
	ErrInvalidPrice        = offercalc.ErrInvalidPrice
	ErrMissingSchedule     = offercalc.ErrMissingSchedule
	ErrMissingActivityType = offercalc.ErrMissingActivityType
	ErrPendingOfferExists  = offercalc.ErrPendingOfferExists
)

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("send_custom_offer: location not found")

	// ErrActivityNotEnabled возвращается, когда выбранный вид активности не включён на локации
	ErrActivityNotEnabled = errors.New("send_custom_offer: activity type is not enabled for this location")

	// ErrDateNotAvailable возвращается, когда дата в прошлом или заблокирована локацией
	ErrDateNotAvailable = errors.New("send_custom_offer: date is not available")

	// ErrSlotNotAvailable возвращается, когда выбранные часы пересекаются с бронированиями
	ErrSlotNotAvailable = errors.New("send_custom_offer: selected hours are already booked")

	// ErrOfferRejected возвращается, когда marketplace API отклонил предложение
	ErrOfferRejected = errors.New("send_custom_offer: offer rejected by marketplace")

	// ErrMarketplaceUnavailable возвращается, когда marketplace API недоступен
	ErrMarketplaceUnavailable = errors.New("send_custom_offer: marketplace unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("send_custom_offer: invalid input data")
)
