package models

import (
	"strings"
	"time"

	"fjacquet/finboard/internal/dateutils"
	"fjacquet/finboard/internal/parsererror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionBuilder provides a fluent API for constructing transactions
type TransactionBuilder struct {
	tx           Transaction
	loc          *time.Location
	explicitSign bool
	typ          TransactionType
	err          error
}

// NewTransactionBuilder creates a builder resolving calendar days in loc.
// A nil loc means UTC.
func NewTransactionBuilder(loc *time.Location) *TransactionBuilder {
	if loc == nil {
		loc = time.UTC
	}
	return &TransactionBuilder{
		tx:  Transaction{Amount: decimal.Zero},
		loc: loc,
	}
}

// WithID sets the transaction ID
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.ID = strings.TrimSpace(id)
	return b
}

// WithMerchant sets the merchant name
func (b *TransactionBuilder) WithMerchant(merchant string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Merchant = strings.TrimSpace(merchant)
	return b
}

// WithAccount sets the account
func (b *TransactionBuilder) WithAccount(account string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Account = strings.TrimSpace(account)
	return b
}

// WithCategory sets the category
func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Category = strings.TrimSpace(category)
	return b
}

// WithDate sets the date from a string. A date that does not parse is kept as
// RawDate with a zero Date instead of failing the build.
func (b *TransactionBuilder) WithDate(dateStr string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.RawDate = strings.TrimSpace(dateStr)
	day, err := dateutils.CalendarDay(dateStr, b.loc)
	if err != nil {
		b.tx.Date = time.Time{}
		return b
	}
	b.tx.Date = day
	return b
}

// WithAmount sets a numeric amount. Negative values count as explicitly signed.
func (b *TransactionBuilder) WithAmount(amount decimal.Decimal) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Amount = amount
	b.explicitSign = amount.IsNegative()
	return b
}

// WithAmountFromString parses the amount, remembering whether it carried a sign.
func (b *TransactionBuilder) WithAmountFromString(amountStr string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	amount, signed, err := ParseAmount(amountStr)
	if err != nil {
		b.err = err
		return b
	}
	b.tx.Amount = amount
	b.explicitSign = signed
	return b
}

// WithType sets the income/expense tag applied to the amount at Build time.
func (b *TransactionBuilder) WithType(typ TransactionType) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.typ = typ
	return b
}

// AsExpense tags the transaction as an expense.
func (b *TransactionBuilder) AsExpense() *TransactionBuilder {
	return b.WithType(TypeExpense)
}

// AsIncome tags the transaction as income.
func (b *TransactionBuilder) AsIncome() *TransactionBuilder {
	return b.WithType(TypeIncome)
}

// Build returns the transaction or the first error met while building it.
// A missing ID is generated.
func (b *TransactionBuilder) Build() (Transaction, error) {
	if b.err != nil {
		return Transaction{}, b.err
	}

	amount, err := ApplyType(b.tx.Amount, b.explicitSign, b.typ)
	if err != nil {
		return Transaction{}, &parsererror.ParseError{
			Parser: "transaction",
			Field:  "amount",
			Value:  b.tx.Amount.String(),
			Err:    err,
		}
	}

	tx := b.tx
	tx.Amount = amount
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	return tx, nil
}
