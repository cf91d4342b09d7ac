// Package summary prints the income and expense summary
package summary

import (
	"fmt"

	"fjacquet/finboard/cmd/common"
	"fjacquet/finboard/cmd/root"
	"fjacquet/finboard/internal/aggregate"

	"github.com/spf13/cobra"
)

var fromTransactions bool

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the income and expense summary",
	Long: `Show income, expenses and net per period with the totals, net savings and
savings rate. Periods come from the seed series, or with --from-transactions from
the transaction history grouped by month.`,
	RunE: summaryFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&fromTransactions, "from-transactions", "f", false, "Build the series from the transaction history")
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	var series []aggregate.PeriodTotals
	if fromTransactions {
		snap, err := c.GetLedger().Snapshot(cmd.Context())
		if err != nil {
			return err
		}
		monthly := c.GetSeriesBuilder().Build(snap.Items)
		series = monthly.Points
	} else {
		series, err = c.GetSeed().SeriesTotals()
		if err != nil {
			return err
		}
	}

	summary := aggregate.ComputeIncomeExpenseSummary(series)
	currency := c.GetConfig().Currency

	tw := common.NewTable(cmd.OutOrStdout())
	common.Row(tw, "PERIOD", "INCOME", "EXPENSES", "NET")
	for _, p := range summary.Periods {
		common.Row(tw, p.Period,
			common.FormatMoney(p.Income, currency),
			common.FormatMoney(p.Expenses, currency),
			common.FormatMoney(p.Net, currency))
	}
	common.Row(tw, "")
	common.Row(tw, "Total income", common.FormatMoney(summary.TotalIncome, currency))
	common.Row(tw, "Total expenses", common.FormatMoney(summary.TotalExpenses, currency))
	common.Row(tw, "Net savings", common.FormatMoney(summary.NetSavings, currency))
	common.Row(tw, "Savings rate", fmt.Sprintf("%d%%", summary.SavingsRate))
	return tw.Flush()
}
