package domain

// Addon is an optional flat one-time charge attached to an offer
type Addon struct {
	ID          int64
	Name        string
	Price       float64
	PriceUnit   string // display only
	Description *string
}

// FeeType defines how a fee is applied to the total
type FeeType string

const (
	FeeFixed      FeeType = "fixed"
	FeePercentage FeeType = "percentage"
)

// Fee is an extra charge defined by the location or added by the offer author
type Fee struct {
	Name   string
	Amount float64
	Type   FeeType
}

// IsValid returns true if the fee has a name and a positive amount.
// Author-defined fees that are not valid are skipped everywhere.
func (f Fee) IsValid() bool {
	return f.Name != "" && f.Amount > 0
}

// IsPercentage returns true for percentage fees
func (f Fee) IsPercentage() bool {
	return f.Type == FeePercentage
}
