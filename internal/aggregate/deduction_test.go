package aggregate

import (
	"errors"
	"testing"

	"fjacquet/finboard/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSalaryDeduction(t *testing.T) {
	slices := []DeductionSlice{
		{Name: SliceBankDeduction, Value: decimal.NewFromInt(20)},
		{Name: SliceFinalAmount, Value: decimal.NewFromInt(80)},
	}

	got, err := ComputeSalaryDeduction(decimal.NewFromInt(100000), slices)
	require.NoError(t, err)
	require.Len(t, got.Slices, 2)
	assert.True(t, decimal.NewFromInt(20000).Equal(got.Slices[0].Actual))
	assert.True(t, decimal.NewFromInt(80000).Equal(got.Slices[1].Actual))
	assert.True(t, decimal.NewFromInt(80000).Equal(got.FinalAmount))
	assert.True(t, decimal.NewFromInt(20000).Equal(got.Deduction))
	assert.True(t, decimal.NewFromInt(20).Equal(got.DeductionPercent))
}

func TestComputeSalaryDeduction_MissingSlices(t *testing.T) {
	got, err := ComputeSalaryDeduction(decimal.NewFromInt(5000), []DeductionSlice{{Name: "Tax", Value: decimal.NewFromInt(10)}})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(500).Equal(got.Slices[0].Actual))
	assert.True(t, got.FinalAmount.IsZero())
	assert.True(t, got.Deduction.IsZero())
}

func TestComputeSalaryDeduction_NegativeSalary(t *testing.T) {
	_, err := ComputeSalaryDeduction(decimal.NewFromInt(-1), nil)
	var cfgErr *parsererror.InvalidConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "salary", cfgErr.Parameter)
}
