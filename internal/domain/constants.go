package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// HoursPerDay количество часовых слотов в сутках (0..23)
const HoursPerDay = 24

// Business validation constants
const (
	MaxMessageLength = 2000
	MaxCustomFees    = 20
	MaxFeeNameLength = 100
)

// ActiveBookingStatuses статусы бронирований, которые блокируют часы
var ActiveBookingStatuses = []BookingStatus{
	StatusConfirmed,
	StatusPending,
}

// SameDay проверяет, что две даты относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет время, оставляя календарную дату момента t в UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
