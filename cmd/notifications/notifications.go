// Package notifications prints the notification feed
package notifications

import (
	"fmt"

	"fjacquet/finboard/cmd/common"
	"fjacquet/finboard/cmd/root"
	"fjacquet/finboard/internal/notification"

	"github.com/spf13/cobra"
)

var (
	tabFlag     string
	searchFlag  string
	markAllRead bool
)

// Cmd represents the notifications command
var Cmd = &cobra.Command{
	Use:   "notifications",
	Short: "List notifications",
	Long: `List the notification feed filtered by tab (All, Unread, Read) and a
case-insensitive search over title and message.`,
	RunE: notificationsFunc,
}

func init() {
	Cmd.Flags().StringVar(&tabFlag, "tab", string(notification.TabAll), "Notification tab: All, Unread or Read")
	Cmd.Flags().StringVar(&searchFlag, "search", "", "Case-insensitive search in title and message")
	Cmd.Flags().BoolVar(&markAllRead, "mark-all-read", false, "Mark every notification read before listing")
}

func notificationsFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	tab, err := notification.ParseTab(tabFlag)
	if err != nil {
		return err
	}

	items := c.GetSeed().Notifications
	if markAllRead {
		items = notification.MarkAllRead(items)
	}
	shown := notification.Filter(items, tab, searchFlag)

	out := cmd.OutOrStdout()
	tw := common.NewTable(out)
	common.Row(tw, "DATE", "STATE", "TITLE", "MESSAGE")
	for _, n := range shown {
		state := "unread"
		if n.Read {
			state = "read"
		}
		common.Row(tw, n.Date, state, n.Title, n.Message)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d shown, %d unread\n", len(shown), notification.UnreadCount(items))
	return nil
}
