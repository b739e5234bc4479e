package offercalc

import (
	"time"

	"github.com/m04kA/SMC-OfferService/internal/domain"
	"github.com/m04kA/SMC-OfferService/pkg/types"
)

// BlockedHours возвращает множество часов (0..23) даты, занятых активными бронированиями.
//
// Час начала и окончания берутся из меток времени как есть (UTC), без перевода в часовой пояс локации.
// Окончание в 00 часов трактуется как 24 (бронирование до полуночи).
// Бронирование, переходящее через полночь, учитывается только в дате начала: в следующие сутки
// его часы не переносятся, а при окончании после полуночи (например 22:00-02:00) часы не блокируются вовсе.
func BlockedHours(bookings []*domain.Booking, date time.Time) map[int]struct{} {
	blocked := make(map[int]struct{})

	for _, booking := range bookings {
		if booking == nil || !booking.BlocksAvailability() {
			continue
		}
		if !booking.StartsOn(date) {
			continue
		}

		startHour := booking.StartDate.UTC().Hour()
		endHour := booking.EndDate.UTC().Hour()
		if endHour == 0 {
			endHour = domain.HoursPerDay
		}

		for hour := startHour; hour < endHour; hour++ {
			blocked[hour] = struct{}{}
		}
	}

	return blocked
}

// IsSlotAvailable проверяет, что час не занят бронированиями на указанную дату
func IsSlotAvailable(bookings []*domain.Booking, hour int, date time.Time) bool {
	_, taken := BlockedHours(bookings, date)[hour]
	return !taken
}

// IsDateSelectable проверяет, что дату можно выбрать: не в прошлом и не в списке заблокированных дат локации.
// Сравниваются только календарные даты.
func IsDateSelectable(date time.Time, blockedDates []time.Time, today time.Time) bool {
	if domain.DateOnly(date).Before(domain.DateOnly(today)) {
		return false
	}
	for _, blocked := range blockedDates {
		if domain.SameDay(blocked.UTC(), date) {
			return false
		}
	}
	return true
}

// IsRangeAvailable проверяет, что все часы [startHour, endHour) свободны
func IsRangeAvailable(bookings []*domain.Booking, startHour, endHour int, date time.Time) bool {
	return rangeFree(BlockedHours(bookings, date), startHour, endHour)
}

// StartHourOptions возвращает варианты времени начала 00:00..23:00; занятые часы недоступны
func StartHourOptions(bookings []*domain.Booking, date time.Time) []domain.HourOption {
	blocked := BlockedHours(bookings, date)

	options := make([]domain.HourOption, domain.HoursPerDay)
	for hour := 0; hour < domain.HoursPerDay; hour++ {
		_, taken := blocked[hour]
		options[hour] = newHourOption(hour, taken)
	}
	return options
}

// EndHourOptions возвращает варианты времени окончания 00:00..23:00 для выбранного начала.
// Вариант недоступен, если он не позже начала или если между началом и им есть занятый час.
// Без корректного времени начала недоступны все варианты.
func EndHourOptions(bookings []*domain.Booking, date time.Time, start types.TimeString) []domain.HourOption {
	blocked := BlockedHours(bookings, date)

	startHour, err := start.Hour()
	hasStart := err == nil && !start.IsZero()

	options := make([]domain.HourOption, domain.HoursPerDay)
	for hour := 0; hour < domain.HoursPerDay; hour++ {
		disabled := !hasStart || hour <= startHour || !rangeFree(blocked, startHour, hour)
		options[hour] = newHourOption(hour, disabled)
	}
	return options
}

func rangeFree(blocked map[int]struct{}, startHour, endHour int) bool {
	for hour := startHour; hour < endHour; hour++ {
		if _, taken := blocked[hour]; taken {
			return false
		}
	}
	return true
}

func newHourOption(hour int, disabled bool) domain.HourOption {
	value := types.HourTimeString(hour)
	return domain.HourOption{
		Hour:     hour,
		Value:    value,
		Label:    To12Hour(value.String()),
		Disabled: disabled,
	}
}
