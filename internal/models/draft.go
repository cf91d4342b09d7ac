package models

import (
	"strings"
	"time"

	"fjacquet/finboard/internal/dateutils"
	"fjacquet/finboard/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Draft is the user input of the add-transaction form.
type Draft struct {
	Merchant string
	Account  string
	Category string
	Date     string
	Amount   string
	Type     string
}

// Validate checks every field and returns a *parsererror.ValidationError naming
// all of the failing ones, or nil.
func (d Draft) Validate() error {
	verr := &parsererror.ValidationError{}

	required := []struct{ field, value string }{
		{"merchant", d.Merchant},
		{"account", d.Account},
		{"category", d.Category},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			verr.Add(r.field, "is required")
		}
	}

	if strings.TrimSpace(d.Date) == "" {
		verr.Add("date", "is required")
	} else if _, _, _, err := dateutils.ParseDate(d.Date); err != nil {
		verr.Add("date", "is not a valid date")
	}

	if strings.TrimSpace(d.Amount) == "" {
		verr.Add("amount", "is required")
	} else if amount, _, err := ParseAmount(d.Amount); err != nil {
		verr.Add("amount", "is not a number")
	} else if !amount.GreaterThan(decimal.Zero) {
		verr.Add("amount", "must be greater than zero")
	}

	if _, err := ParseTransactionType(d.Type); err != nil {
		verr.Add("type", "must be income or expense")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// Build validates the draft and turns it into a transaction with the given id.
func (d Draft) Build(id string, loc *time.Location) (Transaction, error) {
	if err := d.Validate(); err != nil {
		return Transaction{}, err
	}
	typ, _ := ParseTransactionType(d.Type)
	amount, _, _ := ParseAmount(d.Amount)
	b := NewTransactionBuilder(loc).
		WithID(id).
		WithMerchant(d.Merchant).
		WithAccount(d.Account).
		WithCategory(d.Category).
		WithDate(d.Date).
		WithAmount(amount)
	switch typ {
	case TypeExpense:
		b.AsExpense()
	case TypeIncome:
		b.AsIncome()
	}
	return b.Build()
}
