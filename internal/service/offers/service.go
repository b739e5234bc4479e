package offers

import (
	"context"
	"errors"
	"fmt"

	offerRepo "github.com/m04kA/SMC-OfferService/internal/infra/storage/offer"
	"github.com/m04kA/SMC-OfferService/internal/service/offers/models"
)

// Service сервис чтения журнала отправленных предложений
type Service struct {
	offerRepo OfferRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса предложений
func NewService(offerRepo OfferRepository, logger Logger) *Service {
	return &Service{
		offerRepo: offerRepo,
		logger:    logger,
	}
}

// GetByID получает предложение по ID.
// Доступно только автору и получателю.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.OfferResponse, error) {
	s.logger.Info("GetByID: fetching offer id=%d for user=%d", id, userID)

	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, offerRepo.ErrOfferNotFound) {
			s.logger.Warn("GetByID: offer id=%d not found", id)
			return nil, ErrOfferNotFound
		}
		s.logger.Error("GetByID: repository error for offer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !offer.IsParticipant(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to offer id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainOffer(offer), nil
}

// GetSenderOffers получает предложения автора, новые первыми.
// Пользователь видит только свои отправленные предложения.
func (s *Service) GetSenderOffers(ctx context.Context, req *models.GetSenderOffersRequest) (*models.OfferListResponse, error) {
	s.logger.Info("GetSenderOffers: fetching offers of sender=%d for user=%d", req.SenderID, req.UserID)

	if req.UserID != req.SenderID {
		s.logger.Warn("GetSenderOffers: access denied for user=%d to offers of sender=%d", req.UserID, req.SenderID)
		return nil, ErrAccessDenied
	}

	if req.Limit < 0 || req.Offset < 0 {
		return nil, fmt.Errorf("%w: limit and offset must not be negative", ErrInvalidInput)
	}

	limit := req.Limit
	if limit == 0 {
		limit = models.DefaultLimit
	}
	if limit > models.MaxLimit {
		limit = models.MaxLimit
	}

	offers, err := s.offerRepo.ListBySender(ctx, req.SenderID, limit, req.Offset)
	if err != nil {
		s.logger.Error("GetSenderOffers: repository error for sender=%d: %v", req.SenderID, err)
		return nil, fmt.Errorf("%w: GetSenderOffers - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSenderOffers: found %d offers for sender=%d", len(offers), req.SenderID)
	return models.FromDomainOfferList(offers), nil
}
