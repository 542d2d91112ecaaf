package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications scheduled by this instance",
	Long: `List the notifications this notifier instance has scheduled and that are
still attributable to it in the system notification center, oldest first.

The record is per-instance: the platform does not expose other processes'
notifications, so a fresh invocation starts empty.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current := notifier.CurrentNotifications()
		if len(current) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no notifications")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "IDENTIFIER\tURGENCY\tAGE\tTITLE\tMESSAGE")
		for _, n := range current {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				n.Identifier,
				n.Urgency,
				humanize.Time(n.CreatedAt),
				n.Title,
				n.Message,
			)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
