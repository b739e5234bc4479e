package quote_offer

import (
	"fmt"

	"github.com/m04kA/SMC-OfferService/internal/offercalc"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	if req.Draft == nil {
		return fmt.Errorf("%w: draft is required", ErrInvalidInput)
	}

	if err := offercalc.ValidateDraft(req.Draft); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}
