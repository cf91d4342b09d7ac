// Package options prints the values offered by the transaction form and filters
package options

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/finboard/cmd/root"
	"fjacquet/finboard/internal/filter"
	"fjacquet/finboard/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the options command
var Cmd = &cobra.Command{
	Use:   "options",
	Short: "Show form and filter options",
	Long: `Show the categories and accounts offered when adding a transaction, and the
categories and accounts present in the transaction history for filtering.`,
	RunE: optionsFunc,
}

func optionsFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	snap, err := c.GetLedger().Snapshot(cmd.Context())
	if err != nil {
		return err
	}
	categories, accounts := filter.Options(snap.Items)

	out := cmd.OutOrStdout()
	printList(out, "Form categories", models.FormCategories)
	printList(out, "Form accounts", models.FormAccounts)
	printList(out, "Filter categories", append([]string{filter.AllCategories}, categories...))
	printList(out, "Filter accounts", append([]string{filter.AllAccounts}, accounts...))
	return nil
}

func printList(w io.Writer, title string, values []string) {
	fmt.Fprintf(w, "%s: %s\n", title, strings.Join(values, ", "))
}
