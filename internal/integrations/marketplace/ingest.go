package marketplace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-OfferService/internal/domain"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
}

// ToLocation собирает нормализованный документ локации из ответа API.
// pricingMatrix, enabledActivities, additionalFees и availability могут прийти
// как JSON-значение или как строка, содержащая JSON; оба варианта разбираются здесь и только здесь.
func ToLocation(dto *LocationDTO) (*domain.Location, error) {
	price, err := decodeNumber(dto.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: price: %v", ErrInvalidResponse, err)
	}

	matrix, err := decodePricingMatrix(dto.PricingMatrix)
	if err != nil {
		return nil, fmt.Errorf("%w: pricingMatrix: %v", ErrInvalidResponse, err)
	}

	var activities []string
	if err := decodeEmbedded(dto.EnabledActivities, &activities); err != nil {
		return nil, fmt.Errorf("%w: enabledActivities: %v", ErrInvalidResponse, err)
	}

	fees, err := decodeFees(dto.AdditionalFees)
	if err != nil {
		return nil, fmt.Errorf("%w: additionalFees: %v", ErrInvalidResponse, err)
	}

	var availability availabilityDTO
	if err := decodeEmbedded(dto.Availability, &availability); err != nil {
		return nil, fmt.Errorf("%w: availability: %v", ErrInvalidResponse, err)
	}

	blocked := make([]time.Time, 0, len(availability.BlockedDates))
	for _, s := range availability.BlockedDates {
		date, err := parseDate(s)
		if err != nil {
			return nil, fmt.Errorf("%w: blocked date %q: %v", ErrInvalidResponse, s, err)
		}
		blocked = append(blocked, date)
	}

	return &domain.Location{
		ID:                dto.ID,
		Title:             dto.Title,
		Price:             price,
		PricingMatrix:     matrix,
		EnabledActivities: activities,
		AdditionalFees:    fees,
		BlockedDates:      blocked,
	}, nil
}

// ToAddons переводит каталог доп. услуг в доменные модели
func ToAddons(dtos []AddonDTO) ([]domain.Addon, error) {
	addons := make([]domain.Addon, 0, len(dtos))
	for _, dto := range dtos {
		price, err := decodeNumber(dto.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: addon %d price: %v", ErrInvalidResponse, dto.ID, err)
		}

		addon := domain.Addon{
			ID:          dto.ID,
			Name:        dto.Name,
			PriceUnit:   dto.PriceUnit,
			Description: dto.Description,
		}
		if price != nil {
			addon.Price = *price
		}
		addons = append(addons, addon)
	}
	return addons, nil
}

// ToBookings переводит бронирования в доменные модели. Статус приводится к нижнему регистру.
func ToBookings(dtos []BookingDTO) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0, len(dtos))
	for _, dto := range dtos {
		start, err := parseTimestamp(dto.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: booking %d startDate: %v", ErrInvalidResponse, dto.ID, err)
		}
		end, err := parseTimestamp(dto.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: booking %d endDate: %v", ErrInvalidResponse, dto.ID, err)
		}

		bookings = append(bookings, &domain.Booking{
			ID:         dto.ID,
			LocationID: dto.LocationID,
			StartDate:  start,
			EndDate:    end,
			Status:     domain.BookingStatus(strings.ToLower(strings.TrimSpace(dto.Status))),
		})
	}
	return bookings, nil
}

// FromFees переводит сборы в формат тела запроса
func FromFees(fees []domain.Fee) []OutgoingFee {
	out := make([]OutgoingFee, 0, len(fees))
	for _, fee := range fees {
		out = append(out, OutgoingFee{Name: fee.Name, Amount: fee.Amount, Type: string(fee.Type)})
	}
	return out
}

// unwrapJSON снимает один уровень строкового кодирования: "\"{...}\"" -> "{...}".
// Пустое значение, null и пустая строка дают nil.
func unwrapJSON(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '"' {
		return trimmed, nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return nil, err
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return nil, nil
	}
	return json.RawMessage(s), nil
}

func decodeEmbedded(raw json.RawMessage, v interface{}) error {
	data, err := unwrapJSON(raw)
	if err != nil || data == nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// decodeNumber принимает число, строку с числом или null
func decodeNumber(raw json.RawMessage) (*float64, error) {
	data, err := unwrapJSON(raw)
	if err != nil || data == nil {
		return nil, err
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return &value, nil
}

func decodePricingMatrix(raw json.RawMessage) (domain.PricingMatrix, error) {
	var activities map[string]json.RawMessage
	if err := decodeEmbedded(raw, &activities); err != nil {
		return nil, err
	}

	matrix := make(domain.PricingMatrix, len(activities))
	for activity, rawTiers := range activities {
		var tiers map[string]json.RawMessage
		if err := decodeEmbedded(rawTiers, &tiers); err != nil {
			return nil, fmt.Errorf("activity %q: %v", activity, err)
		}

		pricing := make(domain.TierPricing, len(tiers))
		for key, rawRate := range tiers {
			tier, err := domain.ParseGroupSizeTier(key)
			if err != nil {
				continue
			}
			rate, err := decodeNumber(rawRate)
			if err != nil {
				return nil, fmt.Errorf("activity %q tier %q: %v", activity, key, err)
			}
			if rate != nil {
				pricing[tier] = *rate
			}
		}
		matrix[activity] = pricing
	}
	return matrix, nil
}

func decodeFees(raw json.RawMessage) ([]domain.Fee, error) {
	var dtos []FeeDTO
	if err := decodeEmbedded(raw, &dtos); err != nil {
		return nil, err
	}

	fees := make([]domain.Fee, 0, len(dtos))
	for _, dto := range dtos {
		amount, err := decodeNumber(dto.Amount)
		if err != nil {
			return nil, fmt.Errorf("fee %q amount: %v", dto.Name, err)
		}

		fee := domain.Fee{Name: dto.Name, Type: domain.FeeFixed}
		if strings.EqualFold(dto.Type, string(domain.FeePercentage)) {
			fee.Type = domain.FeePercentage
		}
		if amount != nil {
			fee.Amount = *amount
		}
		fees = append(fees, fee)
	}
	return fees, nil
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp format %q", s)
}

// parseDate принимает "2006-01-02" или полную метку времени и возвращает дату в UTC
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(domain.DateFormat, s); err == nil {
		return t, nil
	}
	t, err := parseTimestamp(s)
	if err != nil {
		return time.Time{}, err
	}
	return domain.DateOnly(t.UTC()), nil
}
