// Package add creates a transaction from the command line
package add

import (
	"fmt"

	"fjacquet/finboard/cmd/common"
	"fjacquet/finboard/cmd/root"
	"fjacquet/finboard/internal/models"

	"github.com/spf13/cobra"
)

var draft models.Draft

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transaction",
	Long: `Add a transaction. Merchant, account, category, date and a positive amount are
required; the type decides whether the amount is stored as income or expense.`,
	RunE: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&draft.Merchant, "merchant", "m", "", "Merchant name (required)")
	Cmd.Flags().StringVarP(&draft.Account, "account", "a", "", "Account (required)")
	Cmd.Flags().StringVarP(&draft.Category, "category", "g", "", "Category (required)")
	Cmd.Flags().StringVarP(&draft.Date, "date", "d", "", "Transaction date, e.g. 2025-04-15 (required)")
	Cmd.Flags().StringVarP(&draft.Amount, "amount", "n", "", "Positive amount (required)")
	Cmd.Flags().StringVarP(&draft.Type, "type", "t", string(models.TypeExpense), "Transaction type: income or expense")
}

func addFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	tx, err := c.GetLedger().CreateTransaction(cmd.Context(), draft)
	if err != nil {
		c.GetLogger().WithError(err).Error("Failed to add transaction")
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s %s on %s\n",
		tx.ID, tx.Merchant, common.FormatMoney(tx.Amount, c.GetConfig().Currency), tx.DateString())
	return nil
}
