// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"fjacquet/finboard/internal/dateutils"
	"fjacquet/finboard/internal/filter"
	"fjacquet/finboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// NewTable returns a tab-aligned writer. Callers must Flush it.
func NewTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// Row writes one tab-separated line.
func Row(w io.Writer, cells ...string) {
	fmt.Fprintln(w, strings.Join(cells, "\t"))
}

// FormatMoney formats an amount in the configured currency.
func FormatMoney(amount decimal.Decimal, currency string) string {
	return models.NewMoney(amount, currency).String()
}

// WriteTransactionTable prints transactions as an aligned table.
func WriteTransactionTable(w io.Writer, txs []models.Transaction, currency string) error {
	tw := NewTable(w)
	Row(tw, "ID", "DATE", "MERCHANT", "ACCOUNT", "CATEGORY", "TYPE", "AMOUNT")
	for _, tx := range txs {
		Row(tw, tx.ID, tx.DateString(), tx.Merchant, tx.Account, tx.Category,
			string(tx.Type()), FormatMoney(tx.Amount, currency))
	}
	return tw.Flush()
}

// CriteriaFlags are the transaction filter flags shared by listing commands.
type CriteriaFlags struct {
	Tab      string
	Date     string
	Category string
	Account  string
	Search   string
}

// Bind registers the filter flags on cmd.
func (f *CriteriaFlags) Bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Tab, "tab", "all", "Transaction tab: all, income or expenses")
	cmd.Flags().StringVar(&f.Date, "date", "", "Only transactions on this calendar day")
	cmd.Flags().StringVar(&f.Category, "category", filter.AllCategories, "Only transactions in this category")
	cmd.Flags().StringVar(&f.Account, "account", filter.AllAccounts, "Only transactions on this account")
	cmd.Flags().StringVar(&f.Search, "search", "", "Case-insensitive merchant search")
}

// Criteria converts the flag values, resolving --date in loc.
func (f *CriteriaFlags) Criteria(loc *time.Location) (filter.Criteria, error) {
	tab, err := filter.ParseTab(f.Tab)
	if err != nil {
		return filter.Criteria{}, err
	}

	c := filter.Criteria{
		Tab:      tab,
		Category: f.Category,
		Account:  f.Account,
		Search:   f.Search,
	}
	if strings.TrimSpace(f.Date) != "" {
		day, err := dateutils.CalendarDay(f.Date, loc)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("invalid --date: %w", err)
		}
		c = c.WithDate(day)
	}
	return c, nil
}

// Reset restores the flag defaults.
func (f *CriteriaFlags) Reset() {
	*f = CriteriaFlags{Tab: "all", Category: filter.AllCategories, Account: filter.AllAccounts}
}
