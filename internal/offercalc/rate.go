package offercalc

import "github.com/m04kA/SMC-OfferService/internal/domain"

// ResolveHourlyRate возвращает ставку из матрицы цен для пары (вид активности, размер группы).
// Если ставка не задана (нет записи или ноль), возвращается базовая цена локации, иначе 0.
// Ставки других размеров группы никогда не подставляются.
func ResolveHourlyRate(matrix domain.PricingMatrix, activityType string, tier domain.GroupSizeTier, fallbackPrice *float64) float64 {
	if pricing, ok := matrix[activityType]; ok {
		if rate, ok := pricing.Rate(tier); ok {
			return rate
		}
	}
	if fallbackPrice != nil {
		return *fallbackPrice
	}
	return 0
}

// EffectiveRate разрешает источник ставки черновика в конкретное значение.
// Производная ставка каждый раз вычисляется заново из текущих activityType и groupSizeTier.
func EffectiveRate(draft *domain.OfferDraft, location *domain.Location) float64 {
	if value, ok := draft.Rate.ManualValue(); ok {
		return value
	}
	if location == nil {
		return 0
	}
	return ResolveHourlyRate(location.PricingMatrix, draft.ActivityType, draft.GroupSizeTier, location.Price)
}
