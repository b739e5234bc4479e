package send_custom_offer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OfferService/internal/domain"
	"github.com/m04kA/SMC-OfferService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-OfferService/internal/offercalc"
)

// UseCase use case для отправки индивидуального предложения
type UseCase struct {
	client       MarketplaceClient
	pending      PendingOfferChecker
	offerRepo    OfferRepository
	cache        LocationCache
	metrics      Metrics
	logger       Logger
	timeProvider TimeProvider
	newKey       func() string
}

// NewUseCase создает новый экземпляр use case. cache и metrics могут быть nil.
func NewUseCase(
	client MarketplaceClient,
	pending PendingOfferChecker,
	offerRepo OfferRepository,
	cache LocationCache,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:       client,
		pending:      pending,
		offerRepo:    offerRepo,
		cache:        cache,
		metrics:      metrics,
		logger:       logger,
		timeProvider: &RealTimeProvider{},
		newKey:       func() string { return uuid.New().String() },
	}
}

// Execute выполняет отправку предложения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SendCustomOffer: user=%d, recipient=%d, location=%d", req.UserID, req.RecipientID, req.LocationID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SendCustomOffer: validation failed: %v", err)
		uc.observe(resultInvalid)
		return nil, err
	}
	draft := req.Draft

	// 2. Проверка ожидающих предложений до остальных запросов (при недоступности сервиса продолжаем, сервер проверит сам)
	hasPending, err := uc.pending.CheckPendingOfferWithGracefulDegradation(ctx, req.UserID, req.RecipientID, req.LocationID)
	pendingUnchecked := false
	if err != nil {
		if !errors.Is(err, marketplace.ErrServiceDegraded) {
			uc.logger.Error("SendCustomOffer: pending offer check failed: %v", err)
			uc.observe(resultUnavailable)
			return nil, fmt.Errorf("%w: check pending offer: %v", ErrMarketplaceUnavailable, err)
		}
		uc.logger.Warn("SendCustomOffer: pending offer check skipped for recipient=%d, location=%d: %v",
			req.RecipientID, req.LocationID, err)
		pendingUnchecked = true
		hasPending = false
	}

	if hasPending {
		uc.logger.Warn("SendCustomOffer: pending offer exists for recipient=%d, location=%d", req.RecipientID, req.LocationID)
		uc.observe(resultPending)
		return nil, ErrPendingOfferExists
	}

	// 3. Получаем локацию: без неё цену не проверить
	location, err := uc.client.GetLocation(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, marketplace.ErrLocationNotFound) {
			uc.logger.Warn("SendCustomOffer: location id=%d not found", req.LocationID)
			uc.invalidateLocation(ctx, req.LocationID)
			uc.observe(resultInvalid)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("SendCustomOffer: failed to get location id=%d: %v", req.LocationID, err)
		uc.observe(resultUnavailable)
		return nil, fmt.Errorf("%w: get location: %v", ErrMarketplaceUnavailable, err)
	}

	// 4. Вид активности должен быть включён на локации
	if draft.ActivityType != "" && location.RequiresActivityType() && !location.IsActivityEnabled(draft.ActivityType) {
		uc.logger.Warn("SendCustomOffer: activity %q is not enabled for location id=%d", draft.ActivityType, req.LocationID)
		uc.observe(resultInvalid)
		return nil, ErrActivityNotEnabled
	}

	// 5. Каталог доп. услуг нужен для итоговой цены
	addons, err := uc.client.GetAddons(ctx, req.LocationID)
	if err != nil {
		uc.logger.Error("SendCustomOffer: failed to get addons for location id=%d: %v", req.LocationID, err)
		uc.observe(resultUnavailable)
		return nil, fmt.Errorf("%w: get addons: %v", ErrMarketplaceUnavailable, err)
	}

	// 6. Расчёт и проверки перед отправкой
	quote := offercalc.QuoteDraft(draft, location, addons)
	if err := offercalc.ValidateSubmission(draft, quote.Total, location, hasPending); err != nil {
		uc.logger.Warn("SendCustomOffer: submission rejected: %v", err)
		if errors.Is(err, ErrPendingOfferExists) {
			uc.observe(resultPending)
		} else {
			uc.observe(resultInvalid)
		}
		return nil, err
	}

	// 7. Проверка даты и свободных часов
	if !offercalc.IsDateSelectable(draft.Date, location.BlockedDates, uc.timeProvider.Now()) {
		uc.logger.Warn("SendCustomOffer: date %s is not selectable", draft.Date.Format(domain.DateFormat))
		uc.observe(resultInvalid)
		return nil, ErrDateNotAvailable
	}

	if err := uc.checkSlot(ctx, req.LocationID, draft); err != nil {
		uc.observe(resultInvalid)
		return nil, err
	}

	// 8. Формируем тело предложения
	message := strings.TrimSpace(draft.Message)
	if message == "" {
		message = domain.DefaultOfferMessage(location)
	}

	fees := offercalc.SubmittedFees(draft, location)
	addonIDs := draft.SelectedAddonIDs
	if addonIDs == nil {
		addonIDs = []int64{}
	}

	outgoing := &marketplace.CustomOfferRequest{
		LocationID:     req.LocationID,
		RecipientID:    req.RecipientID,
		CustomPrice:    quote.Total,
		Message:        message,
		Date:           draft.Date.Format(domain.DateFormat),
		StartTime:      draft.StartTime.String(),
		EndTime:        draft.EndTime.String(),
		Attendees:      string(draft.GroupSizeTier),
		GroupSize:      string(draft.GroupSizeTier),
		ActivityType:   draft.ActivityType,
		SelectedAddons: addonIDs,
		AdditionalFees: marketplace.FromFees(fees),
	}

	// 9. Отправляем предложение
	sent, err := uc.client.SendCustomOffer(ctx, req.UserID, outgoing)
	if err != nil {
		switch {
		case errors.Is(err, marketplace.ErrConflict):
			uc.logger.Warn("SendCustomOffer: marketplace reports pending offer: %v", err)
			uc.observe(resultPending)
			return nil, ErrPendingOfferExists
		case errors.Is(err, marketplace.ErrBadRequest):
			uc.logger.Warn("SendCustomOffer: offer rejected: %v", err)
			uc.invalidateLocation(ctx, req.LocationID)
			uc.observe(resultRejected)
			return nil, fmt.Errorf("%w: %v", ErrOfferRejected, err)
		case errors.Is(err, marketplace.ErrUnauthorized):
			uc.logger.Warn("SendCustomOffer: offer rejected: %v", err)
			uc.observe(resultRejected)
			return nil, fmt.Errorf("%w: %v", ErrOfferRejected, err)
		case errors.Is(err, marketplace.ErrLocationNotFound):
			uc.invalidateLocation(ctx, req.LocationID)
			uc.observe(resultInvalid)
			return nil, ErrLocationNotFound
		default:
			uc.logger.Error("SendCustomOffer: failed to send offer: %v", err)
			uc.observe(resultUnavailable)
			return nil, fmt.Errorf("%w: send offer: %v", ErrMarketplaceUnavailable, err)
		}
	}

	// 10. Запись в журнал (ошибка журнала не отменяет отправленное предложение)
	var activityType *string
	if draft.ActivityType != "" {
		a := draft.ActivityType
		activityType = &a
	}

	record := &domain.SentOffer{
		IdempotencyKey:  uc.newKey(),
		SenderID:        req.UserID,
		RecipientID:     req.RecipientID,
		LocationID:      req.LocationID,
		Date:            draft.Date,
		StartTime:       draft.StartTime,
		EndTime:         draft.EndTime,
		ActivityType:    activityType,
		GroupSize:       draft.GroupSizeTier,
		HourlyRate:      quote.HourlyRate,
		CustomPriceMode: draft.CustomPriceMode(),
		TotalPrice:      quote.Total,
		SelectedAddons:  addonIDs,
		AdditionalFees:  fees,
		Message:         message,
	}

	journaled := true
	saved, err := uc.offerRepo.Create(ctx, record)
	if err != nil {
		uc.logger.Error("SendCustomOffer: offer sent but journal write failed (key=%s): %v", record.IdempotencyKey, err)
		journaled = false
		saved = record
	}

	uc.observe(resultSent)
	uc.logger.Info("SendCustomOffer: offer sent, user=%d, recipient=%d, location=%d, total=%.2f",
		req.UserID, req.RecipientID, req.LocationID, quote.Total)

	var marketplaceID *int64
	if sent != nil {
		marketplaceID = sent.ID
	}

	return &Response{
		Offer:            saved,
		Quote:            quote,
		MarketplaceID:    marketplaceID,
		Journaled:        journaled,
		PendingUnchecked: pendingUnchecked,
	}, nil
}

// checkSlot проверяет, что выбранные часы свободны. Без списка бронирований проверка пропускается.
func (uc *UseCase) checkSlot(ctx context.Context, locationID int64, draft *domain.OfferDraft) error {
	bookings, err := uc.client.GetLocationBookings(ctx, locationID)
	if err != nil {
		uc.logger.Warn("SendCustomOffer: bookings unavailable for location id=%d, skipping slot check: %v", locationID, err)
		return nil
	}

	startHour, err := draft.StartTime.Hour()
	if err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	endHour, err := draft.EndTime.Hour()
	if err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	if !offercalc.IsRangeAvailable(bookings, startHour, endHour, draft.Date) {
		uc.logger.Warn("SendCustomOffer: hours %d-%d on %s are booked", startHour, endHour, draft.Date.Format(domain.DateFormat))
		return ErrSlotNotAvailable
	}

	return nil
}

// invalidateLocation сбрасывает кэш формы, если API отклонил данные локации
func (uc *UseCase) invalidateLocation(ctx context.Context, locationID int64) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateLocation(ctx, locationID); err != nil {
		uc.logger.Warn("SendCustomOffer: failed to invalidate cached location id=%d: %v", locationID, err)
	}
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.ObserveOfferSent(result)
	}
}
