package aggregate

import (
	"fjacquet/finboard/internal/models"
	"fjacquet/finboard/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Band classifies how much of a spending limit is used.
type Band string

// Bands
const (
	BandNormal   Band = "normal"
	BandWarning  Band = "warning"
	BandCritical Band = "critical"
)

// Status messages shown under the limit indicator
const (
	StatusAlmostReached = "Almost reached"
	StatusGettingClose  = "Getting close"
	StatusOnTrack       = "You're doing well"
)

// SpendingLimit is the state of the spending-limit indicator.
type SpendingLimit struct {
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	Percent   int64
	Band      Band
	Status    string
}

// ClassifyBand maps a rounded percentage to its band: above 80 is critical,
// above 60 is warning.
func ClassifyBand(percent int64) Band {
	switch {
	case percent > 80:
		return BandCritical
	case percent > 60:
		return BandWarning
	default:
		return BandNormal
	}
}

// StatusMessage returns the indicator caption for a rounded percentage.
func StatusMessage(percent int64) string {
	switch {
	case percent >= 90:
		return StatusAlmostReached
	case percent >= 75:
		return StatusGettingClose
	default:
		return StatusOnTrack
	}
}

// ComputeSpendingLimit sums the absolute value of every expense in txs and
// expresses it against limit, capped at 100 percent. A non-positive limit is
// rejected with *parsererror.InvalidConfigurationError.
func ComputeSpendingLimit(txs []models.Transaction, limit decimal.Decimal) (SpendingLimit, error) {
	if !limit.IsPositive() {
		return SpendingLimit{}, &parsererror.InvalidConfigurationError{
			Parameter: "spending_limit",
			Value:     limit.String(),
			Reason:    "must be greater than zero",
		}
	}

	spent := decimal.Zero
	for _, tx := range txs {
		if tx.IsExpense() {
			spent = spent.Add(tx.Amount.Abs())
		}
	}

	percent := roundHalfUp(decimal.Min(hundred, percentOf(spent, limit)))
	remaining := limit.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return SpendingLimit{
		Limit:     limit,
		Spent:     spent,
		Remaining: remaining,
		Percent:   percent,
		Band:      ClassifyBand(percent),
		Status:    StatusMessage(percent),
	}, nil
}
