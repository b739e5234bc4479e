package marketplace

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OfferService/pkg/logger"
)

type recordingMetrics struct {
	calls []string
}

func (m *recordingMetrics) ObserveUpstreamCall(endpoint, outcome string) {
	m.calls = append(m.calls, endpoint+":"+outcome)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingMetrics) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	metrics := &recordingMetrics{}
	return NewClient(server.URL+"/", "secret-token", 2*time.Second, nil, logger.Nop(), metrics), metrics
}

func TestClient_GetLocation(t *testing.T) {
	client, metrics := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/locations/7", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("X-User-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":7,"title":"Loft","price":"20","pricingMatrix":"{\"photo\":{\"small\":40}}","enabledActivities":"[\"photo\"]"}`)
	})

	loc, err := client.GetLocation(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "Loft", loc.Title)
	assert.Equal(t, 20.0, *loc.Price)
	assert.Equal(t, []string{"photo"}, loc.EnabledActivities)
	assert.Equal(t, []string{"location:ok"}, metrics.calls)
}

func TestClient_GetLocation_NotFound(t *testing.T) {
	client, metrics := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetLocation(context.Background(), 404)

	assert.ErrorIs(t, err, ErrLocationNotFound)
	assert.Equal(t, []string{"location:not_found"}, metrics.calls)
}

func TestClient_GetAddons(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/locations/7/addons", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":1,"name":"Lighting kit","price":"50"}]`)
	})

	addons, err := client.GetAddons(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, addons, 1)
	assert.Equal(t, 50.0, addons[0].Price)
}

func TestClient_GetLocationBookings(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/location/7", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":1,"locationId":7,"startDate":"2025-06-10T09:00:00Z","endDate":"2025-06-10T11:00:00Z","status":"confirmed"}]`)
	})

	bookings, err := client.GetLocationBookings(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.True(t, bookings[0].BlocksAvailability())
}

func TestClient_CheckPendingOffer(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/messages/custom-offer/check-pending", r.URL.Path)
		assert.Equal(t, "55", r.URL.Query().Get("recipientId"))
		assert.Equal(t, "7", r.URL.Query().Get("locationId"))
		assert.Equal(t, "10", r.Header.Get("X-User-ID"))
		_, _ = io.WriteString(w, `{"hasPendingOffer":true}`)
	})

	hasPending, err := client.CheckPendingOffer(context.Background(), 10, 55, 7)
	require.NoError(t, err)
	assert.True(t, hasPending)
}

func TestClient_CheckPendingOfferWithGracefulDegradation(t *testing.T) {
	client, metrics := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	hasPending, err := client.CheckPendingOfferWithGracefulDegradation(context.Background(), 10, 55, 7)

	assert.False(t, hasPending)
	assert.ErrorIs(t, err, ErrServiceDegraded)
	assert.Equal(t, []string{"check_pending:network_error"}, metrics.calls)
}

func TestClient_CheckPendingOfferWithGracefulDegradation_Unauthorized(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.CheckPendingOfferWithGracefulDegradation(context.Background(), 10, 55, 7)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrServiceDegraded)
}

func TestClient_SendCustomOffer(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/messages/custom-offer", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "10", r.Header.Get("X-User-ID"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 270.0, body["customPrice"])
		assert.Equal(t, "2025-06-10", body["date"])
		assert.Equal(t, "small", body["attendees"])
		assert.Equal(t, "small", body["groupSize"])
		assert.Len(t, body["additionalFees"], 1)

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":99}`)
	})

	resp, err := client.SendCustomOffer(context.Background(), 10, &CustomOfferRequest{
		LocationID:     7,
		RecipientID:    55,
		CustomPrice:    270,
		Message:        "Custom offer for Loft",
		Date:           "2025-06-10",
		StartTime:      "10:00",
		EndTime:        "12:00",
		Attendees:      "small",
		GroupSize:      "small",
		ActivityType:   "photo",
		SelectedAddons: []int64{1},
		AdditionalFees: []OutgoingFee{{Name: "Service", Amount: 10, Type: "percentage"}},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ID)
	assert.Equal(t, int64(99), *resp.ID)
}

func TestClient_SendCustomOffer_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"message":"Invalid price"}`, wantErr: ErrBadRequest},
		{name: "conflict", status: http.StatusConflict, body: `{"message":"pending offer"}`, wantErr: ErrConflict},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "server error", status: http.StatusBadGateway, wantErr: ErrNetworkFetch},
		{name: "unexpected", status: http.StatusTeapot, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := client.SendCustomOffer(context.Background(), 10, &CustomOfferRequest{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_SendCustomOffer_EmptyBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	resp, err := client.SendCustomOffer(context.Background(), 10, &CustomOfferRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp.ID)
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "", time.Second, nil, logger.Nop(), nil)
	_, err := client.GetAddons(context.Background(), 7)

	assert.ErrorIs(t, err, ErrNetworkFetch)
}

func TestClient_InvalidJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"hasPendingOffer":`)
	})

	_, err := client.CheckPendingOffer(context.Background(), 10, 55, 7)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
