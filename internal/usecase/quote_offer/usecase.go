package quote_offer

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-OfferService/internal/domain"
	"github.com/m04kA/SMC-OfferService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-OfferService/internal/offercalc"
)

// Источники данных, которые могут деградировать
const (
	SourceLocation = "location"
	SourceAddons   = "addons"
)

// UseCase use case для расчёта стоимости черновика предложения
type UseCase struct {
	client  MarketplaceClient
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(client MarketplaceClient, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет расчёт
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteOffer: user=%d, location=%d", req.UserID, req.LocationID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteOffer: validation failed: %v", err)
		return nil, err
	}

	// 2. Параллельно получаем локацию и каталог доп. услуг
	var (
		g  errgroup.Group
		mu sync.Mutex

		location         *domain.Location
		addons           []domain.Addon
		degraded         = []string{}
		locationNotFound bool
	)

	degrade := func(source string, err error) {
		mu.Lock()
		defer mu.Unlock()
		degraded = append(degraded, source)
		uc.logger.Error("QuoteOffer: %s unavailable for location=%d, quoting without it: %v", source, req.LocationID, err)
	}

	g.Go(func() error {
		var err error
		location, err = uc.client.GetLocation(ctx, req.LocationID)
		if errors.Is(err, marketplace.ErrLocationNotFound) {
			locationNotFound = true
		} else if err != nil {
			degrade(SourceLocation, err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		addons, err = uc.client.GetAddons(ctx, req.LocationID)
		if err != nil {
			degrade(SourceAddons, err)
		}
		return nil
	})

	_ = g.Wait()

	if locationNotFound {
		uc.logger.Warn("QuoteOffer: location id=%d not found", req.LocationID)
		return nil, ErrLocationNotFound
	}

	// 3. Ставка разрешается до расчёта итога
	quote := offercalc.QuoteDraft(req.Draft, location, addons)

	// 4. Проверяем, можно ли отправить черновик (ожидающие предложения проверяются при отправке)
	validationErr := offercalc.ValidateSubmission(req.Draft, quote.Total, location, false)

	if uc.metrics != nil {
		uc.metrics.ObserveQuote(quote.Total)
	}

	uc.logger.Info("QuoteOffer: location=%d, hours=%d, rate=%.2f, total=%.2f, custom=%t",
		req.LocationID, quote.Hours, quote.HourlyRate, quote.Total, req.Draft.CustomPriceMode())

	return &Response{
		Quote:           quote,
		CustomPriceMode: req.Draft.CustomPriceMode(),
		ValidationError: validationErr,
		Degraded:        degraded,
	}, nil
}
