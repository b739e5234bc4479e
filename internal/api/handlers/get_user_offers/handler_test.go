package get_user_offers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OfferService/internal/api/middleware"
	"github.com/m04kA/SMC-OfferService/internal/service/offers"
	"github.com/m04kA/SMC-OfferService/internal/service/offers/models"
	"github.com/m04kA/SMC-OfferService/pkg/logger"
)

type fakeService struct {
	got  *models.GetSenderOffersRequest
	resp *models.OfferListResponse
	err  error
}

func (f *fakeService) GetSenderOffers(ctx context.Context, req *models.GetSenderOffersRequest) (*models.OfferListResponse, error) {
	f.got = req
	return f.resp, f.err
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/users/{userId}/offers", NewHandler(svc, logger.Nop()).Handle)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.UserIDHeader, "10")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_OK(t *testing.T) {
	svc := &fakeService{resp: &models.OfferListResponse{Offers: []models.OfferResponse{{ID: 3}}}}

	rec := serve(svc, "/users/10/offers?limit=5&offset=10")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &models.GetSenderOffersRequest{UserID: 10, SenderID: 10, Limit: 5, Offset: 10}, svc.got)

	var body models.OfferListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Offers, 1)
	assert.Equal(t, int64(3), body.Offers[0].ID)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{"bad user", "/users/me/offers", nil, http.StatusBadRequest},
		{"bad limit", "/users/10/offers?limit=ten", nil, http.StatusBadRequest},
		{"bad offset", "/users/10/offers?offset=x", nil, http.StatusBadRequest},
		{"forbidden", "/users/11/offers", offers.ErrAccessDenied, http.StatusForbidden},
		{"invalid", "/users/10/offers?limit=-1", offers.ErrInvalidInput, http.StatusBadRequest},
		{"internal", "/users/10/offers", offers.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
