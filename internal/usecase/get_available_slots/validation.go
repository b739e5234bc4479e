package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-OfferService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.StartTime.IsZero() {
		hour, err := req.StartTime.Hour()
		if err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
		if hour >= domain.HoursPerDay {
			return fmt.Errorf("%w: startTime must be before 24:00", ErrInvalidInput)
		}
	}

	return nil
}
