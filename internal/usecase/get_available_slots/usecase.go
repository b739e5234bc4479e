package get_available_slots

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/m04kA/SMC-OfferService/internal/domain"
	"github.com/m04kA/SMC-OfferService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-OfferService/internal/offercalc"
	"github.com/m04kA/SMC-OfferService/pkg/types"
)

// UseCase use case для получения доступных часов локации на дату
type UseCase struct {
	client       MarketplaceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client MarketplaceClient, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных часов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// Время начала может прийти в 12-часовом формате ("2:00 PM")
	req.StartTime = types.TimeString(offercalc.To24Hour(req.StartTime.String()))

	uc.logger.Info("GetAvailableSlots: user=%d, location=%d, date=%s, start=%s",
		req.UserID, req.LocationID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	date := domain.DateOnly(req.Date)
	degraded := false

	// 3. Получаем локацию (заблокированные даты)
	var blockedDates []time.Time
	location, err := uc.client.GetLocation(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, marketplace.ErrLocationNotFound) {
			uc.logger.Warn("GetAvailableSlots: location id=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get location id=%d, ignoring blocked dates: %v", req.LocationID, err)
		degraded = true
	} else {
		blockedDates = location.BlockedDates
	}

	// 4. Получаем бронирования локации
	bookings, err := uc.client.GetLocationBookings(ctx, req.LocationID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for location id=%d, showing all hours free: %v", req.LocationID, err)
		bookings = nil
		degraded = true
	}

	// 5. Считаем занятые часы и варианты выбора
	blocked := offercalc.BlockedHours(bookings, date)
	blockedHours := make([]int, 0, len(blocked))
	for hour := range blocked {
		blockedHours = append(blockedHours, hour)
	}
	sort.Ints(blockedHours)

	resp := &Response{
		Date:           date,
		DateSelectable: offercalc.IsDateSelectable(date, blockedDates, now),
		BlockedHours:   blockedHours,
		StartOptions:   offercalc.StartHourOptions(bookings, date),
		EndOptions:     offercalc.EndHourOptions(bookings, date, req.StartTime),
		Degraded:       degraded,
	}

	uc.logger.Info("GetAvailableSlots: location=%d, date=%s, selectable=%t, blocked=%v",
		req.LocationID, date.Format(domain.DateFormat), resp.DateSelectable, blockedHours)

	return resp, nil
}
