package models

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/finboard/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with currency
type Money struct {
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Currency string          `json:"currency" yaml:"currency"`
}

// NewMoney creates a new Money instance with the given amount and currency
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// String returns the amount with two decimals followed by the currency code.
func (m Money) String() string {
	if m.Currency == "" {
		return m.Amount.StringFixed(2)
	}
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
}

// currencyMarkers are stripped from amount strings. Longer markers come first so
// "NGN" is not reduced to "GN" by the single letter Naira shorthand.
var currencyMarkers = []string{"NGN", "USD", "EUR", "CHF", "₦", "$", "€", "N"}

var (
	errEmptyAmount = errors.New("empty amount")
	errExtraSign   = errors.New("more than one sign")
)

// ParseAmount parses a user or seed supplied amount such as "₦-3,000", "-7000.50"
// or "15 000". It reports whether the string carried an explicit sign.
func ParseAmount(raw string) (decimal.Decimal, bool, error) {
	s := strings.Join(strings.Fields(raw), "")
	sign, s := takeSign(s)
	for _, marker := range currencyMarkers {
		s = strings.TrimPrefix(s, marker)
		s = strings.TrimSuffix(s, marker)
	}
	if sign == "" {
		sign, s = takeSign(s)
	}
	s = strings.NewReplacer(",", "", "'", "").Replace(s)

	if _, rest := takeSign(s); rest != s {
		return decimal.Zero, false, &parsererror.ParseError{Parser: "amount", Field: "amount", Value: raw, Err: errExtraSign}
	}
	if s == "" {
		return decimal.Zero, false, &parsererror.ParseError{Parser: "amount", Field: "amount", Value: raw, Err: errEmptyAmount}
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false, &parsererror.ParseError{Parser: "amount", Field: "amount", Value: raw, Err: err}
	}
	if sign == "-" {
		amount = amount.Neg()
	}
	return amount, sign != "", nil
}

func takeSign(s string) (string, string) {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return s[:1], s[1:]
	}
	return "", s
}

// ApplyType reconciles an amount with an optional income/expense tag. A signed
// amount must agree with the tag; an unsigned one takes the tag's polarity.
func ApplyType(amount decimal.Decimal, explicitSign bool, typ TransactionType) (decimal.Decimal, error) {
	if typ == "" || amount.IsZero() {
		return amount, nil
	}
	switch typ {
	case TypeExpense:
		if explicitSign && amount.IsPositive() {
			return amount, fmt.Errorf("%s tagged %s: %w", amount, typ, parsererror.ErrTypeConflict)
		}
		return amount.Abs().Neg(), nil
	case TypeIncome:
		if amount.IsNegative() {
			return amount, fmt.Errorf("%s tagged %s: %w", amount, typ, parsererror.ErrTypeConflict)
		}
		return amount, nil
	default:
		return amount, fmt.Errorf("unknown transaction type %q", typ)
	}
}

// ParseTransactionType accepts "income" or "expense" in any case. An empty string
// yields an empty type.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case string(TypeIncome):
		return TypeIncome, nil
	case string(TypeExpense), "expenses":
		return TypeExpense, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}
