package get_offer_context

import "github.com/m04kA/SMC-OfferService/internal/domain"

// Названия источников данных, которые могут деградировать
const (
	SourceLocation     = "location"
	SourceAddons       = "addons"
	SourceBookings     = "bookings"
	SourcePendingCheck = "pending_check"
)

// Request модель запроса контекста для формы индивидуального предложения
type Request struct {
	UserID      int64 // автор предложения
	LocationID  int64
	RecipientID int64 // 0 - получатель не указан, проверка ожидающего предложения не выполняется
}

// Response данные для формы. При недоступности источника его данные пустые,
// а имя источника попадает в Degraded.
type Response struct {
	Location        *domain.Location // nil, если документ локации не удалось получить
	Addons          []domain.Addon
	Bookings        []*domain.Booking
	HasPendingOffer bool
	Activities      []ActivityOption
	Tiers           []TierOption
	DefaultDraft    *domain.OfferDraft
	DefaultMessage  string
	Degraded        []string
}

// ActivityOption вид активности, доступный на локации
type ActivityOption struct {
	Value string
	Label string
}

// TierOption размер группы со ставкой для вида активности по умолчанию
type TierOption struct {
	Value      domain.GroupSizeTier
	Label      string
	HourlyRate float64
}
