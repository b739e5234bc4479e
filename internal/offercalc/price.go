package offercalc

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-OfferService/internal/domain"
	"github.com/m04kA/SMC-OfferService/pkg/types"
)

var hundred = decimal.NewFromInt(100)

// Quote расчёт стоимости предложения с разбивкой по шагам
type Quote struct {
	Hours             int
	HourlyRate        float64
	Base              float64 // hours * rate
	AddonsTotal       float64
	LocationFeesTotal float64
	CustomFeesTotal   float64
	Unrounded         float64
	Total             float64 // округлено до 2 знаков, half-up
}

// Hours возвращает длительность в целых часах. Некорректное или обратное время даёт 0.
func Hours(start, end types.TimeString) int {
	startHour, err := start.Hour()
	if err != nil {
		return 0
	}
	endHour, err := end.Hour()
	if err != nil {
		return 0
	}
	if endHour <= startHour {
		return 0
	}
	return endHour - startHour
}

// CalculateTotal считает итоговую цену черновика для уже разрешённой часовой ставки.
//
// Порядок фиксирован:
//  1. base = hours * hourlyRate
//  2. + цена каждого выбранного доп. услуги (один раз, без учёта длительности)
//  3. + сборы локации, если включены
//  4. + валидные сборы автора предложения
//
// Процентные сборы (и локации, и автора) считаются от base, а не от накопленной суммы.
// Итог округляется до 2 знаков.
func CalculateTotal(draft *domain.OfferDraft, hourlyRate float64, addons []domain.Addon, locationFees []domain.Fee) Quote {
	hours := Hours(draft.StartTime, draft.EndTime)

	base := decimal.NewFromInt(int64(hours)).Mul(decimal.NewFromFloat(hourlyRate))
	running := base

	// Доп. услуги: неизвестные ID пропускаются, каждая выбранная учитывается один раз
	addonsTotal := decimal.Zero
	selected := make(map[int64]struct{}, len(draft.SelectedAddonIDs))
	for _, id := range draft.SelectedAddonIDs {
		selected[id] = struct{}{}
	}
	for _, addon := range addons {
		if _, ok := selected[addon.ID]; ok {
			addonsTotal = addonsTotal.Add(decimal.NewFromFloat(addon.Price))
			delete(selected, addon.ID)
		}
	}
	running = running.Add(addonsTotal)

	locationFeesTotal := decimal.Zero
	if draft.IncludeLocationFees {
		locationFeesTotal = applyFees(base, locationFees)
	}
	running = running.Add(locationFeesTotal)

	customFeesTotal := applyFees(base, draft.ValidCustomFees())
	running = running.Add(customFeesTotal)

	return Quote{
		Hours:             hours,
		HourlyRate:        hourlyRate,
		Base:              base.InexactFloat64(),
		AddonsTotal:       addonsTotal.InexactFloat64(),
		LocationFeesTotal: locationFeesTotal.InexactFloat64(),
		CustomFeesTotal:   customFeesTotal.InexactFloat64(),
		Unrounded:         running.InexactFloat64(),
		Total:             running.Round(2).InexactFloat64(),
	}
}

// QuoteDraft разрешает ставку и затем считает итог. Ставка всегда вычисляется до итога.
func QuoteDraft(draft *domain.OfferDraft, location *domain.Location, addons []domain.Addon) Quote {
	rate := EffectiveRate(draft, location)

	var locationFees []domain.Fee
	if location != nil {
		locationFees = location.AdditionalFees
	}
	return CalculateTotal(draft, rate, addons, locationFees)
}

// SubmittedFees возвращает список сборов для отправки: сборы локации (если включены), затем валидные сборы автора
func SubmittedFees(draft *domain.OfferDraft, location *domain.Location) []domain.Fee {
	fees := make([]domain.Fee, 0)
	if draft.IncludeLocationFees && location != nil {
		fees = append(fees, location.AdditionalFees...)
	}
	return append(fees, draft.ValidCustomFees()...)
}

func applyFees(base decimal.Decimal, fees []domain.Fee) decimal.Decimal {
	total := decimal.Zero
	for _, fee := range fees {
		amount := decimal.NewFromFloat(fee.Amount)
		if fee.IsPercentage() {
			total = total.Add(base.Mul(amount).Div(hundred))
		} else {
			total = total.Add(amount)
		}
	}
	return total
}
