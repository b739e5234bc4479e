package domain

import "fmt"

// GroupSizeTier is a group-size bucket used to select a price point
type GroupSizeTier string

const (
	TierSmall      GroupSizeTier = "small"
	TierMedium     GroupSizeTier = "medium"
	TierLarge      GroupSizeTier = "large"
	TierExtraLarge GroupSizeTier = "extraLarge"
)

// AllTiers lists the tiers from the smallest to the largest
var AllTiers = []GroupSizeTier{TierSmall, TierMedium, TierLarge, TierExtraLarge}

// ParseGroupSizeTier validates a tier key
func ParseGroupSizeTier(s string) (GroupSizeTier, error) {
	for _, tier := range AllTiers {
		if string(tier) == s {
			return tier, nil
		}
	}
	return "", fmt.Errorf("unknown group size tier: %q", s)
}

// TierForAttendees picks the tier for a head count.
// 1-5 small, 6-15 medium, 16-30 large, 31+ extraLarge. Non-positive counts have no tier.
func TierForAttendees(attendees int) (GroupSizeTier, bool) {
	switch {
	case attendees <= 0:
		return "", false
	case attendees <= 5:
		return TierSmall, true
	case attendees <= 15:
		return TierMedium, true
	case attendees <= 30:
		return TierLarge, true
	default:
		return TierExtraLarge, true
	}
}

// TierLabel returns a human readable label of the tier
func TierLabel(tier GroupSizeTier) string {
	switch tier {
	case TierSmall:
		return "1-5 people"
	case TierMedium:
		return "6-15 people"
	case TierLarge:
		return "16-30 people"
	case TierExtraLarge:
		return "31+ people"
	default:
		return string(tier)
	}
}

// TierPricing maps a tier to its hourly rate. A missing or zero value means "price not set".
type TierPricing map[GroupSizeTier]float64

// Rate returns the rate for the tier and whether it is set
func (p TierPricing) Rate(tier GroupSizeTier) (float64, bool) {
	rate, ok := p[tier]
	if !ok || rate <= 0 {
		return 0, false
	}
	return rate, true
}

// PricingMatrix maps an activity type to its tier pricing
type PricingMatrix map[string]TierPricing

// Activity types known to the marketplace
const (
	ActivityPhoto   = "photo"
	ActivityVideo   = "video"
	ActivityEvent   = "event"
	ActivityMeeting = "meeting"
)

// ActivityLabels display names of the known activity types
var ActivityLabels = map[string]string{
	ActivityPhoto:   "Photo Shoot",
	ActivityVideo:   "Video Production",
	ActivityEvent:   "Event",
	ActivityMeeting: "Meeting",
}

// ActivityLabel returns the display name of an activity type, or the key itself if unknown
func ActivityLabel(activityType string) string {
	if label, ok := ActivityLabels[activityType]; ok {
		return label
	}
	return activityType
}
