package offercalc

import (
	"fmt"

	"github.com/m04kA/SMC-OfferService/internal/domain"
	"github.com/m04kA/SMC-OfferService/pkg/types"
)

// ValidateSubmission проверяет черновик перед отправкой.
// Наличие ожидающего предложения блокирует отправку независимо от цены,
// далее проверяются цена, расписание и вид активности.
func ValidateSubmission(draft *domain.OfferDraft, total float64, location *domain.Location, hasPendingOffer bool) error {
	if hasPendingOffer {
		return ErrPendingOfferExists
	}

	if total <= 0 {
		return ErrInvalidPrice
	}

	if !draft.HasSchedule() {
		return ErrMissingSchedule
	}

	if location != nil && location.RequiresActivityType() && draft.ActivityType == "" {
		return ErrMissingActivityType
	}

	return nil
}

// ValidateDraft проверяет формат полей черновика: время, размер группы, ручную ставку, сборы и длину сообщения.
// Полнота расписания и цена проверяются в ValidateSubmission.
func ValidateDraft(draft *domain.OfferDraft) error {
	if err := validateTime("startTime", draft.StartTime); err != nil {
		return err
	}
	if err := validateTime("endTime", draft.EndTime); err != nil {
		return err
	}

	if _, err := domain.ParseGroupSizeTier(string(draft.GroupSizeTier)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}

	if value, ok := draft.Rate.ManualValue(); ok && value < 0 {
		return fmt.Errorf("%w: custom hourly rate must not be negative", ErrInvalidDraft)
	}

	if len(draft.CustomFees) > domain.MaxCustomFees {
		return fmt.Errorf("%w: at most %d custom fees allowed", ErrInvalidDraft, domain.MaxCustomFees)
	}
	for _, fee := range draft.CustomFees {
		if len(fee.Name) > domain.MaxFeeNameLength {
			return fmt.Errorf("%w: fee name is longer than %d characters", ErrInvalidDraft, domain.MaxFeeNameLength)
		}
		if fee.Type != domain.FeeFixed && fee.Type != domain.FeePercentage {
			return fmt.Errorf("%w: unknown fee type %q", ErrInvalidDraft, fee.Type)
		}
		if fee.Amount < 0 {
			return fmt.Errorf("%w: fee amount must not be negative", ErrInvalidDraft)
		}
	}

	if len(draft.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message is longer than %d characters", ErrInvalidDraft, domain.MaxMessageLength)
	}

	return nil
}

func validateTime(name string, value types.TimeString) error {
	if value.IsZero() {
		return nil
	}
	if err := value.Validate(); err != nil && value != "24:00" {
		return fmt.Errorf("%w: invalid %s: %v", ErrInvalidDraft, name, err)
	}
	return nil
}
