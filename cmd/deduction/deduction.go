// Package deduction prints the salary deduction split
package deduction

import (
	"fmt"

	"fjacquet/finboard/cmd/common"
	"fjacquet/finboard/cmd/root"
	"fjacquet/finboard/internal/aggregate"
	"fjacquet/finboard/internal/models"

	"github.com/spf13/cobra"
)

var salaryFlag string

// Cmd represents the deduction command
var Cmd = &cobra.Command{
	Use:   "deduction",
	Short: "Show the salary deduction split",
	Long:  `Split the salary into the seed's deduction slices and show the final amount kept.`,
	RunE:  deductionFunc,
}

func init() {
	Cmd.Flags().StringVarP(&salaryFlag, "salary", "s", "", "Salary to split (default: seed salary)")
}

func deductionFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	seed := c.GetSeed()

	salary, err := seed.SalaryAmount()
	if err != nil {
		return err
	}
	if salaryFlag != "" {
		if salary, _, err = models.ParseAmount(salaryFlag); err != nil {
			return fmt.Errorf("invalid --salary: %w", err)
		}
	}

	slices, err := seed.DeductionSlices()
	if err != nil {
		return err
	}

	result, err := aggregate.ComputeSalaryDeduction(salary, slices)
	if err != nil {
		c.GetLogger().WithError(err).Error("Cannot compute salary deduction")
		return err
	}

	currency := c.GetConfig().Currency
	tw := common.NewTable(cmd.OutOrStdout())
	common.Row(tw, "SLICE", "PERCENT", "AMOUNT")
	for _, s := range result.Slices {
		common.Row(tw, s.Name, s.Value.String()+"%", common.FormatMoney(s.Actual, currency))
	}
	common.Row(tw, "")
	common.Row(tw, "Salary", "", common.FormatMoney(result.Salary, currency))
	common.Row(tw, "Deduction", result.DeductionPercent.String()+"%", common.FormatMoney(result.Deduction, currency))
	common.Row(tw, "Final amount", "", common.FormatMoney(result.FinalAmount, currency))
	return tw.Flush()
}
