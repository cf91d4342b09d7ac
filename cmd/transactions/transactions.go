// Package transactions lists the transaction history with its filters
package transactions

import (
	"fmt"

	"fjacquet/finboard/cmd/common"
	"fjacquet/finboard/cmd/root"

	"github.com/spf13/cobra"
)

var flags common.CriteriaFlags

// Cmd represents the transactions command
var Cmd = &cobra.Command{
	Use:   "transactions",
	Short: "List transactions",
	Long: `List the transaction history, optionally narrowed by tab (all, income, expenses),
calendar day, category, account and a case-insensitive merchant search.`,
	RunE: listFunc,
}

func init() {
	flags.Bind(Cmd)
}

func listFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	criteria, err := flags.Criteria(c.GetLocation())
	if err != nil {
		return err
	}

	txs, err := c.GetLedger().List(cmd.Context(), criteria)
	if err != nil {
		c.GetLogger().WithError(err).Error("Failed to list transactions")
		return err
	}

	out := cmd.OutOrStdout()
	if err := common.WriteTransactionTable(out, txs, c.GetConfig().Currency); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d transaction(s), %d filter(s) active\n", len(txs), criteria.ActiveCount())
	return nil
}
