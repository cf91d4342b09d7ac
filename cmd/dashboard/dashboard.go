// Package dashboard prints every dashboard widget at once
package dashboard

import (
	"fmt"
	"io"

	"fjacquet/finboard/cmd/common"
	"fjacquet/finboard/cmd/root"
	"fjacquet/finboard/internal/filter"

	board "fjacquet/finboard/internal/dashboard"

	"github.com/spf13/cobra"
)

var (
	tabFlag    string
	searchFlag string
)

// Cmd represents the dashboard command
var Cmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard",
	Long: `Load the dashboard after the configured delay and show the recent
transactions, spending limit, income/expense summary, expense breakdown, salary
deduction and unread notification count.`,
	RunE: dashboardFunc,
}

func init() {
	Cmd.Flags().StringVar(&tabFlag, "tab", string(filter.TabAll), "Recent transactions tab: all, income or expenses")
	Cmd.Flags().StringVar(&searchFlag, "search", "", "Case-insensitive search in recent transactions")
}

func dashboardFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	tab, err := filter.ParseTab(tabFlag)
	if err != nil {
		return err
	}

	view, err := c.GetDashboard().Load(cmd.Context(), board.Query{Tab: tab, Search: searchFlag})
	if err != nil {
		c.GetLogger().WithError(err).Error("Failed to load dashboard")
		return err
	}

	return render(cmd.OutOrStdout(), view, c.GetConfig().Currency)
}

func render(w io.Writer, view *board.View, currency string) error {
	fmt.Fprintln(w, "Recent transactions")
	if err := common.WriteTransactionTable(w, view.Recent, currency); err != nil {
		return err
	}

	limit := view.SpendingLimit
	fmt.Fprintf(w, "\nSpending limit: %s of %s (%d%%, %s) - %s\n",
		common.FormatMoney(limit.Spent, currency),
		common.FormatMoney(limit.Limit, currency),
		limit.Percent, limit.Band, limit.Status)

	s := view.Summary
	fmt.Fprintf(w, "Income: %s  Expenses: %s  Net savings: %s  Savings rate: %d%%\n",
		common.FormatMoney(s.TotalIncome, currency),
		common.FormatMoney(s.TotalExpenses, currency),
		common.FormatMoney(s.NetSavings, currency),
		s.SavingsRate)

	fmt.Fprintln(w, "\nExpenses")
	tw := common.NewTable(w)
	for _, share := range view.Breakdown {
		common.Row(tw, share.Category, common.FormatMoney(share.Amount, currency), fmt.Sprintf("%d%%", share.Percentage))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	d := view.Deduction
	fmt.Fprintf(w, "\nSalary: %s  Deduction: %s (%s%%)  Final amount: %s\n",
		common.FormatMoney(d.Salary, currency),
		common.FormatMoney(d.Deduction, currency),
		d.DeductionPercent.String(),
		common.FormatMoney(d.FinalAmount, currency))

	fmt.Fprintf(w, "Unread notifications: %d\n", view.UnreadCount)
	return nil
}
