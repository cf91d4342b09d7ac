package models

import (
	"errors"
	"testing"
	"time"

	"fjacquet/finboard/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		Merchant: "Bolt",
		Account:  "GTBank",
		Category: "Transport",
		Date:     "2025-05-02",
		Amount:   "2500",
	}
}

func TestDraftValidate(t *testing.T) {
	assert.NoError(t, validDraft().Validate())

	tests := []struct {
		name   string
		mutate func(*Draft)
		fields []string
	}{
		{"empty merchant", func(d *Draft) { d.Merchant = "" }, []string{"merchant"}},
		{"blank account", func(d *Draft) { d.Account = "   " }, []string{"account"}},
		{"missing category", func(d *Draft) { d.Category = "" }, []string{"category"}},
		{"bad date", func(d *Draft) { d.Date = "2025-13-45" }, []string{"date"}},
		{"missing date", func(d *Draft) { d.Date = "" }, []string{"date"}},
		{"zero amount", func(d *Draft) { d.Amount = "0" }, []string{"amount"}},
		{"negative amount", func(d *Draft) { d.Amount = "-10" }, []string{"amount"}},
		{"non numeric amount", func(d *Draft) { d.Amount = "ten" }, []string{"amount"}},
		{"double minus amount", func(d *Draft) { d.Amount = "--500" }, []string{"amount"}},
		{"mixed signs amount", func(d *Draft) { d.Amount = "+-500" }, []string{"amount"}},
		{"unknown type", func(d *Draft) { d.Type = "transfer" }, []string{"type"}},
		{
			name: "everything missing",
			mutate: func(d *Draft) {
				*d = Draft{}
			},
			fields: []string{"merchant", "account", "category", "date", "amount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			err := d.Validate()
			require.Error(t, err)
			var verr *parsererror.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.fields, verr.FieldNames())
		})
	}
}

func TestDraftBuild(t *testing.T) {
	tx, err := validDraft().Build("abc", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "abc", tx.ID)
	assert.Equal(t, "Bolt", tx.Merchant)
	assert.True(t, decimal.NewFromInt(2500).Equal(tx.Amount))
	assert.Equal(t, "2025-05-02", tx.DateString())

	d := validDraft()
	d.Type = "expense"
	tx, err = d.Build("def", time.UTC)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(-2500).Equal(tx.Amount))

	d.Amount = "+2500"
	tx, err = d.Build("ghi", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, TypeExpense, tx.Type())

	d.Type = "Income"
	tx, err = d.Build("jkl", time.UTC)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2500).Equal(tx.Amount))
	assert.Equal(t, TypeIncome, tx.Type())

	_, err = Draft{}.Build("x", time.UTC)
	assert.Error(t, err)
}
