package models

import (
	"fmt"
	"strings"
	"time"
)

// Record is the raw shape shared by seed files, CSV imports and the dashboard's
// recent transactions. Amount may carry currency symbols and thousands separators.
type Record struct {
	ID       string `yaml:"id" csv:"ID"`
	Merchant string `yaml:"merchant,omitempty" csv:"Merchant"`
	Label    string `yaml:"label,omitempty" csv:"-"`
	Account  string `yaml:"account,omitempty" csv:"Account"`
	Category string `yaml:"category,omitempty" csv:"Category"`
	Date     string `yaml:"date" csv:"Date"`
	Amount   string `yaml:"amount" csv:"Amount"`
	Type     string `yaml:"type,omitempty" csv:"Type,omitempty"`
}

// Name returns the merchant, falling back to the label.
func (r Record) Name() string {
	if strings.TrimSpace(r.Merchant) != "" {
		return r.Merchant
	}
	return r.Label
}

// NewTransactionFromRecord normalizes a record into a signed transaction resolving
// its calendar day in loc. A date that does not parse leaves the transaction
// undated; a bad amount or a sign contradicting the type tag is an error.
func NewTransactionFromRecord(r Record, loc *time.Location) (Transaction, error) {
	typ, err := ParseTransactionType(r.Type)
	if err != nil {
		return Transaction{}, fmt.Errorf("record %s: %w", r.ID, err)
	}

	tx, err := NewTransactionBuilder(loc).
		WithID(r.ID).
		WithMerchant(r.Name()).
		WithAccount(r.Account).
		WithCategory(r.Category).
		WithDate(r.Date).
		WithAmountFromString(r.Amount).
		WithType(typ).
		Build()
	if err != nil {
		return Transaction{}, fmt.Errorf("record %s: %w", r.ID, err)
	}
	return tx, nil
}

// RecordFromTransaction converts a transaction back to its raw shape.
func RecordFromTransaction(tx Transaction) Record {
	return Record{
		ID:       tx.ID,
		Merchant: tx.Merchant,
		Account:  tx.Account,
		Category: tx.Category,
		Date:     tx.DateString(),
		Amount:   tx.Amount.String(),
	}
}
