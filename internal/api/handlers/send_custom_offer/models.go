package send_custom_offer

import (
	"github.com/m04kA/SMC-OfferService/internal/api/handlers"
	"github.com/m04kA/SMC-OfferService/internal/service/offers/models"
	sendCustomOffer "github.com/m04kA/SMC-OfferService/internal/usecase/send_custom_offer"
)

// SendOfferRequest HTTP request model: получатель, локация и черновик предложения
type SendOfferRequest struct {
	LocationID  int64 `json:"locationId"`
	RecipientID int64 `json:"recipientId"`
	handlers.DraftRequest
}

// SendOfferResponse HTTP response model
type SendOfferResponse struct {
	Offer            *models.OfferResponse `json:"offer"`
	MarketplaceID    *int64                `json:"marketplaceMessageId,omitempty"`
	Journaled        bool                  `json:"journaled"`
	PendingUnchecked bool                  `json:"pendingUnchecked"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SendOfferRequest) ToUseCaseRequest(userID int64) (*sendCustomOffer.Request, error) {
	draft, err := r.DraftRequest.ToDomain()
	if err != nil {
		return nil, err
	}

	return &sendCustomOffer.Request{
		UserID:      userID,
		RecipientID: r.RecipientID,
		LocationID:  r.LocationID,
		Draft:       draft,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *sendCustomOffer.Response) *SendOfferResponse {
	return &SendOfferResponse{
		Offer:            models.FromDomainOffer(resp.Offer),
		MarketplaceID:    resp.MarketplaceID,
		Journaled:        resp.Journaled,
		PendingUnchecked: resp.PendingUnchecked,
	}
}
