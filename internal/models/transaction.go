package models

import (
	"time"

	"fjacquet/finboard/internal/dateutils"

	"github.com/shopspring/decimal"
)

// Transaction is one account movement. Amount is signed: negative values are
// expenses, positive values are income.
type Transaction struct {
	ID       string          `json:"id" yaml:"id"`
	Merchant string          `json:"merchant" yaml:"merchant"`
	Account  string          `json:"account" yaml:"account"`
	Category string          `json:"category" yaml:"category"`
	Date     time.Time       `json:"date" yaml:"date"`
	RawDate  string          `json:"raw_date,omitempty" yaml:"raw_date,omitempty"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
}

// Type derives the transaction type from the amount sign.
func (t Transaction) Type() TransactionType {
	switch t.Amount.Sign() {
	case -1:
		return TypeExpense
	case 1:
		return TypeIncome
	default:
		return TypeNeutral
	}
}

// IsExpense reports whether the amount is strictly negative.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome reports whether the amount is strictly positive.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// HasDate reports whether the source date was understood.
func (t Transaction) HasDate() bool {
	return !t.Date.IsZero()
}

// DateString renders the canonical date, falling back to the raw input when the
// date could not be parsed.
func (t Transaction) DateString() string {
	if t.HasDate() {
		return dateutils.ToISODate(t.Date)
	}
	return t.RawDate
}
