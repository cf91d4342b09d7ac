package aggregate

import (
	"github.com/shopspring/decimal"
)

// PeriodTotals is one already-aggregated point of the income/expense series.
type PeriodTotals struct {
	Period   string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// PeriodNet is a series point with its net value.
type PeriodNet struct {
	PeriodTotals
	Net decimal.Decimal
}

// IncomeExpenseSummary totals an income/expense series.
type IncomeExpenseSummary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetSavings    decimal.Decimal
	SavingsRate   int64
	Periods       []PeriodNet
}

// ComputeIncomeExpenseSummary totals the series. The savings rate is the rounded
// share of income kept, and 0 when there is no positive income.
func ComputeIncomeExpenseSummary(series []PeriodTotals) IncomeExpenseSummary {
	summary := IncomeExpenseSummary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Periods:       make([]PeriodNet, 0, len(series)),
	}

	for _, p := range series {
		summary.TotalIncome = summary.TotalIncome.Add(p.Income)
		summary.TotalExpenses = summary.TotalExpenses.Add(p.Expenses)
		summary.Periods = append(summary.Periods, PeriodNet{
			PeriodTotals: p,
			Net:          p.Income.Sub(p.Expenses),
		})
	}

	summary.NetSavings = summary.TotalIncome.Sub(summary.TotalExpenses)
	if summary.TotalIncome.IsPositive() {
		summary.SavingsRate = roundHalfUp(percentOf(summary.NetSavings, summary.TotalIncome))
	}
	return summary
}
