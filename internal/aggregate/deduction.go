package aggregate

import (
	"fjacquet/finboard/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Slice names the salary widget looks up
const (
	SliceFinalAmount   = "Final Amount"
	SliceBankDeduction = "Bank Deduction"
)

// DeductionSlice is a named percentage of the salary.
type DeductionSlice struct {
	Name  string
	Value decimal.Decimal
}

// DeductionShare is a slice with its value in currency.
type DeductionShare struct {
	DeductionSlice
	Actual decimal.Decimal
}

// SalaryDeduction splits a salary into its slices.
type SalaryDeduction struct {
	Salary           decimal.Decimal
	Slices           []DeductionShare
	FinalAmount      decimal.Decimal
	Deduction        decimal.Decimal
	DeductionPercent decimal.Decimal
}

// ComputeSalaryDeduction values every slice as Value percent of salary. The final
// amount and deduction come from the "Final Amount" and "Bank Deduction" slices
// and are zero when those are absent.
func ComputeSalaryDeduction(salary decimal.Decimal, slices []DeductionSlice) (SalaryDeduction, error) {
	if salary.IsNegative() {
		return SalaryDeduction{}, &parsererror.InvalidConfigurationError{
			Parameter: "salary",
			Value:     salary.String(),
			Reason:    "must not be negative",
		}
	}

	result := SalaryDeduction{
		Salary:           salary,
		Slices:           make([]DeductionShare, 0, len(slices)),
		FinalAmount:      decimal.Zero,
		Deduction:        decimal.Zero,
		DeductionPercent: decimal.Zero,
	}
	for _, s := range slices {
		share := DeductionShare{DeductionSlice: s, Actual: s.Value.Div(hundred).Mul(salary)}
		result.Slices = append(result.Slices, share)

		switch s.Name {
		case SliceFinalAmount:
			result.FinalAmount = share.Actual
		case SliceBankDeduction:
			result.Deduction = share.Actual
			result.DeductionPercent = s.Value
		}
	}
	return result, nil
}
