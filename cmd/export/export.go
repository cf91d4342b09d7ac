// Package export writes filtered transactions to a CSV file
package export

import (
	"fmt"

	"fjacquet/finboard/cmd/common"
	"fjacquet/finboard/cmd/root"
	internalcommon "fjacquet/finboard/internal/common"
	"fjacquet/finboard/internal/validation"

	"github.com/spf13/cobra"
)

var (
	flags  common.CriteriaFlags
	output string
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions to CSV",
	Long: `Export the transactions matching the filters to a CSV file with the columns
ID, Merchant, Account, Category, Date and Amount.`,
	RunE: exportFunc,
}

func init() {
	flags.Bind(Cmd)
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (required)")
	_ = Cmd.MarkFlagRequired("output")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	if err := validation.OutputFile(output); err != nil {
		return err
	}

	criteria, err := flags.Criteria(c.GetLocation())
	if err != nil {
		return err
	}

	txs, err := c.GetLedger().List(cmd.Context(), criteria)
	if err != nil {
		return err
	}

	if err := internalcommon.WriteTransactionsToCSV(txs, output, c.GetConfig().DelimiterRune(), c.GetLogger()); err != nil {
		c.GetLogger().WithError(err).Error("Export failed")
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transaction(s) to %s\n", len(txs), output)
	return nil
}
