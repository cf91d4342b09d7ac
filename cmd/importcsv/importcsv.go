// Package importcsv loads transactions from a CSV file
package importcsv

import (
	"fmt"

	"fjacquet/finboard/cmd/root"
	"fjacquet/finboard/internal/common"
	"fjacquet/finboard/internal/validation"

	"github.com/spf13/cobra"
)

var input string

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import transactions from CSV",
	Long: `Import transactions from a CSV file with the columns ID, Merchant, Account,
Category, Date, Amount and an optional Type. Rows with a bad amount or an amount
contradicting their type are skipped; rows with an unreadable date are kept undated.`,
	RunE: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&input, "input", "i", "", "Input CSV file (required)")
	_ = Cmd.MarkFlagRequired("input")
}

func importFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	if err := validation.InputFile(input); err != nil {
		return err
	}

	records, err := common.ReadRecords(input, c.GetConfig().DelimiterRune(), c.GetLogger())
	if err != nil {
		c.GetLogger().WithError(err).Error("Failed to read import file")
		return err
	}

	result, err := c.GetLedger().Import(cmd.Context(), records)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d, skipped %d, undated %d\n",
		result.Imported, result.Skipped, result.Undated)
	return nil
}
