package domain

import "time"

// Location is the normalized pricing document of a rentable space.
// All string-encoded JSON from the marketplace API is decoded before this type is built.
type Location struct {
	ID                int64
	Title             string
	Price             *float64 // flat fallback hourly price
	PricingMatrix     PricingMatrix
	EnabledActivities []string
	AdditionalFees    []Fee
	BlockedDates      []time.Time
}

// RequiresActivityType returns true if the location defines enabled activity types
func (l *Location) RequiresActivityType() bool {
	return len(l.EnabledActivities) > 0
}

// IsActivityEnabled returns true if the activity type is enabled for the location
func (l *Location) IsActivityEnabled(activityType string) bool {
	for _, a := range l.EnabledActivities {
		if a == activityType {
			return true
		}
	}
	return false
}

// DefaultActivityType returns the first enabled activity type, or "" when none are enabled
func (l *Location) DefaultActivityType() string {
	if len(l.EnabledActivities) == 0 {
		return ""
	}
	return l.EnabledActivities[0]
}
