package domain

import "time"

// BookingStatus represents the status of a booking as reported by the marketplace API
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusRejected  BookingStatus = "rejected"
)

// Booking is a read-only snapshot of an existing booking of a location.
// Lifecycle transitions are owned by the marketplace API.
type Booking struct {
	ID         int64
	LocationID int64
	StartDate  time.Time
	EndDate    time.Time
	Status     BookingStatus
}

// BlocksAvailability returns true if the booking occupies its hours.
// Only confirmed and pending bookings take part in availability blocking.
func (b *Booking) BlocksAvailability() bool {
	for _, status := range ActiveBookingStatuses {
		if b.Status == status {
			return true
		}
	}
	return false
}

// StartsOn returns true if the booking starts on the calendar day of date (UTC)
func (b *Booking) StartsOn(date time.Time) bool {
	return SameDay(b.StartDate.UTC(), date)
}
