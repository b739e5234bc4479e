package offercalc

import "errors"

var (
	// ErrInvalidPrice возвращается, когда итоговая цена не положительна
	ErrInvalidPrice = errors.New("offercalc: total price must be greater than zero")

	// ErrMissingSchedule возвращается, когда не выбраны дата, время начала или окончания
	ErrMissingSchedule = errors.New("offercalc: date, start time and end time are required")

	// ErrMissingActivityType возвращается, когда у локации есть виды активности, но ни один не выбран
	ErrMissingActivityType = errors.New("offercalc: activity type is required")

	// ErrInvalidDraft возвращается, когда поля черновика имеют недопустимый формат или значения
	ErrInvalidDraft = errors.New("offercalc: invalid draft")

	// ErrPendingOfferExists возвращается, когда между сторонами уже есть ожидающее предложение по этой локации
	ErrPendingOfferExists = errors.New("offercalc: a pending offer already exists for this location")
)
