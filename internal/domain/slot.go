package domain

import "github.com/m04kA/SMC-OfferService/pkg/types"

// HourOption represents one selectable hour in the start/end time pickers
type HourOption struct {
	Hour     int
	Value    types.TimeString // "14:00"
	Label    string           // "2:00 PM"
	Disabled bool
}

