package get_offer_context

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-OfferService/internal/domain"
	"github.com/m04kA/SMC-OfferService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-OfferService/internal/offercalc"
)

// UseCase use case для получения данных формы индивидуального предложения
type UseCase struct {
	client MarketplaceClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client MarketplaceClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute выполняет use case.
// Источники запрашиваются параллельно; ошибка одного не отменяет остальные.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetOfferContext: user=%d, location=%d, recipient=%d", req.UserID, req.LocationID, req.RecipientID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetOfferContext: validation failed: %v", err)
		return nil, err
	}

	// 2. Параллельно получаем данные
	var (
		g  errgroup.Group
		mu sync.Mutex

		resp             = &Response{Addons: []domain.Addon{}, Bookings: []*domain.Booking{}, Degraded: []string{}}
		locationNotFound bool
	)

	degrade := func(source string, err error) {
		mu.Lock()
		defer mu.Unlock()
		resp.Degraded = append(resp.Degraded, source)
		uc.logger.Error("GetOfferContext: %s unavailable for location=%d, continuing without it: %v", source, req.LocationID, err)
	}

	g.Go(func() error {
		location, err := uc.client.GetLocation(ctx, req.LocationID)
		if err != nil {
			if errors.Is(err, marketplace.ErrLocationNotFound) {
				locationNotFound = true
				return nil
			}
			degrade(SourceLocation, err)
			return nil
		}
		resp.Location = location
		return nil
	})

	g.Go(func() error {
		addons, err := uc.client.GetAddons(ctx, req.LocationID)
		if err != nil {
			degrade(SourceAddons, err)
			return nil
		}
		resp.Addons = addons
		return nil
	})

	g.Go(func() error {
		bookings, err := uc.client.GetLocationBookings(ctx, req.LocationID)
		if err != nil {
			degrade(SourceBookings, err)
			return nil
		}
		resp.Bookings = bookings
		return nil
	})

	if req.RecipientID > 0 {
		g.Go(func() error {
			hasPending, err := uc.client.CheckPendingOffer(ctx, req.UserID, req.RecipientID, req.LocationID)
			if err != nil {
				degrade(SourcePendingCheck, err)
				return nil
			}
			resp.HasPendingOffer = hasPending
			return nil
		})
	}

	// Горутины не возвращают ошибок
	_ = g.Wait()

	// 3. Локация не существует - форму строить не для чего
	if locationNotFound {
		uc.logger.Warn("GetOfferContext: location id=%d not found", req.LocationID)
		return nil, ErrLocationNotFound
	}

	// 4. Собираем черновик по умолчанию и варианты выбора
	resp.DefaultDraft = domain.NewOfferDraft(resp.Location)
	resp.Activities = activityOptions(resp.Location)
	resp.Tiers = tierOptions(resp.Location, resp.DefaultDraft.ActivityType)
	resp.DefaultMessage = domain.DefaultOfferMessage(resp.Location)

	uc.logger.Info("GetOfferContext: location=%d, addons=%d, bookings=%d, pending=%t, degraded=%v",
		req.LocationID, len(resp.Addons), len(resp.Bookings), resp.HasPendingOffer, resp.Degraded)

	return resp, nil
}

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}
	if req.RecipientID < 0 {
		return fmt.Errorf("%w: recipientID must not be negative", ErrInvalidInput)
	}
	if req.RecipientID == req.UserID {
		return fmt.Errorf("%w: cannot send an offer to yourself", ErrInvalidInput)
	}
	return nil
}

func activityOptions(location *domain.Location) []ActivityOption {
	options := make([]ActivityOption, 0)
	if location == nil {
		return options
	}
	for _, activity := range location.EnabledActivities {
		options = append(options, ActivityOption{Value: activity, Label: domain.ActivityLabel(activity)})
	}
	return options
}

func tierOptions(location *domain.Location, activityType string) []TierOption {
	options := make([]TierOption, 0, len(domain.AllTiers))
	for _, tier := range domain.AllTiers {
		option := TierOption{Value: tier, Label: domain.TierLabel(tier)}
		if location != nil {
			option.HourlyRate = offercalc.ResolveHourlyRate(location.PricingMatrix, activityType, tier, location.Price)
		}
		options = append(options, option)
	}
	return options
}
