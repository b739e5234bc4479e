package send_custom_offer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OfferService/internal/api/middleware"
	"github.com/m04kA/SMC-OfferService/internal/domain"
	sendCustomOffer "github.com/m04kA/SMC-OfferService/internal/usecase/send_custom_offer"
	"github.com/m04kA/SMC-OfferService/pkg/logger"
)

type fakeUseCase struct {
	got  *sendCustomOffer.Request
	resp *sendCustomOffer.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *sendCustomOffer.Request) (*sendCustomOffer.Response, error) {
	f.got = req
	return f.resp, f.err
}

const validBody = `{
	"locationId": 7,
	"recipientId": 20,
	"date": "2025-06-10",
	"startTime": "10:00",
	"endTime": "12:00",
	"activityType": "photo",
	"groupSize": "medium",
	"customPriceMode": true,
	"customPrice": 80,
	"customFees": [{"name": "Cleaning", "amount": 15, "type": "fixed"}]
}`

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	h := middleware.Auth(http.HandlerFunc(NewHandler(uc, logger.Nop()).Handle))
	req := httptest.NewRequest(http.MethodPost, "/offers", strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, "10")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	id := int64(900)
	uc := &fakeUseCase{resp: &sendCustomOffer.Response{
		Offer: &domain.SentOffer{
			ID:          1,
			SenderID:    10,
			RecipientID: 20,
			LocationID:  7,
			Date:        time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
			StartTime:   "10:00",
			EndTime:     "12:00",
			GroupSize:   domain.TierMedium,
			TotalPrice:  175,
		},
		MarketplaceID: &id,
		Journaled:     true,
	}}

	rec := serve(uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(10), uc.got.UserID)
	assert.Equal(t, int64(20), uc.got.RecipientID)
	assert.Equal(t, int64(7), uc.got.LocationID)
	assert.Equal(t, domain.TierMedium, uc.got.Draft.GroupSizeTier)
	rate, ok := uc.got.Draft.Rate.ManualValue()
	assert.True(t, ok)
	assert.Equal(t, 80.0, rate)
	assert.Len(t, uc.got.Draft.CustomFees, 1)

	var body SendOfferResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Offer)
	assert.Equal(t, 175.0, body.Offer.TotalPrice)
	assert.Equal(t, "2025-06-10", body.Offer.Date)
	assert.Equal(t, &id, body.MarketplaceID)
	assert.True(t, body.Journaled)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"bad json", `{`, nil, http.StatusBadRequest},
		{"bad group size", `{"locationId":7,"recipientId":20,"groupSize":"huge"}`, nil, http.StatusBadRequest},
		{"invalid input", validBody, sendCustomOffer.ErrInvalidInput, http.StatusBadRequest},
		{"invalid price", validBody, sendCustomOffer.ErrInvalidPrice, http.StatusBadRequest},
		{"missing schedule", validBody, sendCustomOffer.ErrMissingSchedule, http.StatusBadRequest},
		{"missing activity", validBody, sendCustomOffer.ErrMissingActivityType, http.StatusBadRequest},
		{"activity disabled", validBody, sendCustomOffer.ErrActivityNotEnabled, http.StatusBadRequest},
		{"date unavailable", validBody, sendCustomOffer.ErrDateNotAvailable, http.StatusBadRequest},
		{"slot booked", validBody, sendCustomOffer.ErrSlotNotAvailable, http.StatusConflict},
		{"pending offer", validBody, sendCustomOffer.ErrPendingOfferExists, http.StatusConflict},
		{"location not found", validBody, sendCustomOffer.ErrLocationNotFound, http.StatusNotFound},
		{"rejected", validBody, sendCustomOffer.ErrOfferRejected, http.StatusUnprocessableEntity},
		{"upstream down", validBody, sendCustomOffer.ErrMarketplaceUnavailable, http.StatusBadGateway},
		{"unexpected", validBody, assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
