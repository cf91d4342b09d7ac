// Package breakdown prints the expense breakdown by category
package breakdown

import (
	"fmt"

	"fjacquet/finboard/cmd/common"
	"fjacquet/finboard/cmd/root"
	"fjacquet/finboard/internal/aggregate"

	"github.com/spf13/cobra"
)

var fromTransactions bool

// Cmd represents the breakdown command
var Cmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Show expenses by category",
	Long: `Show each expense category with its amount and rounded share of the total.
Categories come from the seed, or with --from-transactions from the expenses in
the transaction history.`,
	RunE: breakdownFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&fromTransactions, "from-transactions", "f", false, "Group the transaction history's expenses by category")
}

func breakdownFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	var pairs []aggregate.CategoryAmount
	if fromTransactions {
		snap, err := c.GetLedger().Snapshot(cmd.Context())
		if err != nil {
			return err
		}
		pairs = aggregate.SpendingByCategory(snap.Items)
	} else {
		pairs, err = c.GetSeed().CategoryAmounts()
		if err != nil {
			return err
		}
	}

	currency := c.GetConfig().Currency
	tw := common.NewTable(cmd.OutOrStdout())
	common.Row(tw, "CATEGORY", "AMOUNT", "SHARE")
	for _, share := range aggregate.ComputeCategoryBreakdown(pairs) {
		common.Row(tw, share.Category,
			common.FormatMoney(share.Amount, currency),
			fmt.Sprintf("%d%%", share.Percentage))
	}
	return tw.Flush()
}
