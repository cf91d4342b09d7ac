// Package limit shows how much of the spending limit is used
package limit

import (
	"fmt"

	"fjacquet/finboard/cmd/common"
	"fjacquet/finboard/cmd/root"
	"fjacquet/finboard/internal/aggregate"
	"fjacquet/finboard/internal/container"
	"fjacquet/finboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var limitFlag string

// Cmd represents the limit command
var Cmd = &cobra.Command{
	Use:   "limit",
	Short: "Show spending against the limit",
	Long: `Sum every expense stored in the ledger and show it against the spending
limit: amount spent, amount remaining, rounded percentage, band and status.
The dashboard indicator covers only the recent transactions list.`,
	RunE: limitFunc,
}

func init() {
	Cmd.Flags().StringVarP(&limitFlag, "limit", "l", "", "Spending limit (default: configuration, then seed)")
}

func limitFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	limit, err := resolveLimit(c)
	if err != nil {
		return err
	}

	snap, err := c.GetLedger().Snapshot(cmd.Context())
	if err != nil {
		return err
	}

	result, err := aggregate.ComputeSpendingLimit(snap.Items, limit)
	if err != nil {
		c.GetLogger().WithError(err).Error("Cannot compute spending limit")
		return err
	}

	currency := c.GetConfig().Currency
	tw := common.NewTable(cmd.OutOrStdout())
	common.Row(tw, "Limit", common.FormatMoney(result.Limit, currency))
	common.Row(tw, "Spent", common.FormatMoney(result.Spent, currency))
	common.Row(tw, "Remaining", common.FormatMoney(result.Remaining, currency))
	common.Row(tw, "Used", fmt.Sprintf("%d%%", result.Percent))
	common.Row(tw, "Band", string(result.Band))
	common.Row(tw, "Status", result.Status)
	return tw.Flush()
}

func resolveLimit(c *container.Container) (decimal.Decimal, error) {
	if limitFlag != "" {
		amount, _, err := models.ParseAmount(limitFlag)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid --limit: %w", err)
		}
		return amount, nil
	}
	if amount, set, err := c.GetConfig().SpendingLimit(); err != nil || set {
		return amount, err
	}
	return c.GetSeed().Limit()
}
