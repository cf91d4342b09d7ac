package aggregate

import (
	"fjacquet/finboard/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryAmount is an amount spent in one category.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// CategoryShare is a category amount with its rounded share of the total.
type CategoryShare struct {
	Category   string
	Amount     decimal.Decimal
	Percentage int64
}

// ComputeCategoryBreakdown returns each pair's rounded percentage of the sum of
// all amounts, in input order. When the sum is zero every percentage is 0.
func ComputeCategoryBreakdown(pairs []CategoryAmount) []CategoryShare {
	total := decimal.Zero
	for _, p := range pairs {
		total = total.Add(p.Amount)
	}

	shares := make([]CategoryShare, 0, len(pairs))
	for _, p := range pairs {
		share := CategoryShare{Category: p.Category, Amount: p.Amount}
		if !total.IsZero() {
			share.Percentage = roundHalfUp(percentOf(p.Amount, total))
		}
		shares = append(shares, share)
	}
	return shares
}

// SpendingByCategory totals the absolute expense amounts of txs per category, in
// the order categories are first seen.
func SpendingByCategory(txs []models.Transaction) []CategoryAmount {
	index := make(map[string]int)
	var out []CategoryAmount
	for _, tx := range txs {
		if !tx.IsExpense() {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(out)
			index[tx.Category] = i
			out = append(out, CategoryAmount{Category: tx.Category, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(tx.Amount.Abs())
	}
	return out
}
