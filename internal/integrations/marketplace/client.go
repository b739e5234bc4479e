package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-OfferService/internal/domain"
)

// Метки исходящих вызовов для метрик
const (
	endpointLocation      = "location"
	endpointAddons        = "addons"
	endpointBookings      = "bookings"
	endpointCheckPending  = "check_pending"
	endpointSendOffer     = "send_offer"
	outcomeOK             = "ok"
	outcomeNotFound       = "not_found"
	outcomeRejected       = "rejected"
	outcomeNetworkError   = "network_error"
	outcomeInvalidPayload = "invalid_response"
)

// Client клиент для работы с marketplace API
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента marketplace API.
// limiter ограничивает частоту исходящих запросов; nil отключает ограничение.
func NewClient(baseURL, apiToken string, timeout time.Duration, limiter *rate.Limiter, log Logger, metrics MetricsRecorder) *Client {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: limiter,
		log:     log,
		metrics: metrics,
	}
}

// GetLocation получает документ локации
func (c *Client) GetLocation(ctx context.Context, locationID int64) (*domain.Location, error) {
	var dto LocationDTO
	path := fmt.Sprintf("/api/locations/%d", locationID)
	if err := c.do(ctx, endpointLocation, http.MethodGet, path, 0, nil, &dto); err != nil {
		return nil, err
	}

	location, err := ToLocation(&dto)
	if err != nil {
		return nil, err
	}
	if location.ID == 0 {
		location.ID = locationID
	}
	return location, nil
}

// GetAddons получает каталог доп. услуг локации
func (c *Client) GetAddons(ctx context.Context, locationID int64) ([]domain.Addon, error) {
	var dtos []AddonDTO
	path := fmt.Sprintf("/api/locations/%d/addons", locationID)
	if err := c.do(ctx, endpointAddons, http.MethodGet, path, 0, nil, &dtos); err != nil {
		return nil, err
	}

	addons, err := ToAddons(dtos)
	if err != nil {
		return nil, err
	}
	return addons, nil
}

// GetLocationBookings получает бронирования локации
func (c *Client) GetLocationBookings(ctx context.Context, locationID int64) ([]*domain.Booking, error) {
	var dtos []BookingDTO
	path := fmt.Sprintf("/api/bookings/location/%d", locationID)
	if err := c.do(ctx, endpointBookings, http.MethodGet, path, 0, nil, &dtos); err != nil {
		return nil, err
	}

	bookings, err := ToBookings(dtos)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// CheckPendingOffer проверяет, есть ли у автора ожидающее предложение получателю по этой локации
func (c *Client) CheckPendingOffer(ctx context.Context, userID, recipientID, locationID int64) (bool, error) {
	query := url.Values{}
	query.Set("recipientId", strconv.FormatInt(recipientID, 10))
	query.Set("locationId", strconv.FormatInt(locationID, 10))
	path := "/api/messages/custom-offer/check-pending?" + query.Encode()

	var resp PendingOfferResponse
	if err := c.do(ctx, endpointCheckPending, http.MethodGet, path, userID, nil, &resp); err != nil {
		return false, err
	}
	return resp.HasPendingOffer, nil
}

// CheckPendingOfferWithGracefulDegradation проверяет ожидающее предложение с graceful degradation.
// При недоступности API возвращает false и ErrServiceDegraded: окончательное решение остаётся за API при отправке.
func (c *Client) CheckPendingOfferWithGracefulDegradation(ctx context.Context, userID, recipientID, locationID int64) (bool, error) {
	c.log.Debug("Checking pending offer: user_id=%d, recipient_id=%d, location_id=%d", userID, recipientID, locationID)

	hasPending, err := c.CheckPendingOffer(ctx, userID, recipientID, locationID)
	if err != nil {
		// Бизнес-ошибки пробрасываем как есть
		if errors.Is(err, ErrLocationNotFound) || errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrBadRequest) {
			return false, err
		}

		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("Marketplace API unavailable, applying graceful degradation for pending check: user_id=%d, location_id=%d: %v", userID, locationID, err)
		return false, fmt.Errorf("%w: user_id=%d, location_id=%d, error=%v", ErrServiceDegraded, userID, locationID, err)
	}

	return hasPending, nil
}

// SendCustomOffer отправляет предложение получателю
func (c *Client) SendCustomOffer(ctx context.Context, userID int64, offer *CustomOfferRequest) (*CustomOfferResponse, error) {
	body, err := json.Marshal(offer)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	var resp CustomOfferResponse
	if err := c.do(ctx, endpointSendOffer, http.MethodPost, "/api/messages/custom-offer", userID, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do выполняет запрос и декодирует ответ в out. userID=0 означает запрос без X-User-ID.
func (c *Client) do(ctx context.Context, endpoint, method, path string, userID int64, body []byte, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		c.observe(endpoint, outcomeNetworkError)
		return fmt.Errorf("%w: rate limiter: %v", ErrNetworkFetch, err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	if userID != 0 {
		req.Header.Set("X-User-ID", strconv.FormatInt(userID, 10))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(endpoint, outcomeNetworkError)
		return fmt.Errorf("%w: failed to execute request: %v", ErrNetworkFetch, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		c.observe(endpoint, outcomeNotFound)
		return ErrLocationNotFound
	case resp.StatusCode == http.StatusBadRequest:
		c.observe(endpoint, outcomeRejected)
		return fmt.Errorf("%w: %s", ErrBadRequest, errorMessage(resp.Body))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.observe(endpoint, outcomeRejected)
		return fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode == http.StatusConflict:
		c.observe(endpoint, outcomeRejected)
		return fmt.Errorf("%w: %s", ErrConflict, errorMessage(resp.Body))
	case resp.StatusCode >= http.StatusInternalServerError:
		c.observe(endpoint, outcomeNetworkError)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrNetworkFetch, resp.StatusCode, errorMessage(resp.Body))
	default:
		c.observe(endpoint, outcomeInvalidPayload)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errorMessage(resp.Body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(endpoint, outcomeNetworkError)
		return fmt.Errorf("%w: failed to read response: %v", ErrNetworkFetch, err)
	}

	// Пустое тело допустимо для отправки предложения
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			c.observe(endpoint, outcomeInvalidPayload)
			return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
	}

	c.observe(endpoint, outcomeOK)
	return nil
}

func (c *Client) observe(endpoint, outcome string) {
	if c.metrics != nil {
		c.metrics.ObserveUpstreamCall(endpoint, outcome)
	}
}

// errorMessage извлекает текст ошибки из тела ответа
func errorMessage(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, 4096))

	var errResp ErrorResponse
	if err := json.Unmarshal(data, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}
	return strings.TrimSpace(string(data))
}
