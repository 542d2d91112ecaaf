package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/desknotify"
)

var clearOpts struct {
	all bool
}

var clearCmd = &cobra.Command{
	Use:   "clear [IDENTIFIER]",
	Short: "Remove notifications from the notification center",
	Long: `Remove a notification by identifier, or all of this application's
notifications with --all. Clearing an already-removed notification is not an
error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if clearOpts.all {
			return notifier.ClearAll(cmd.Context())
		}
		if len(args) == 0 {
			return fmt.Errorf("an identifier or --all is required")
		}
		n := &desknotify.Notification{Identifier: args[0]}
		return notifier.Clear(cmd.Context(), n)
	},
}

func init() {
	clearCmd.Flags().BoolVarP(&clearOpts.all, "all", "a", false, "remove every notification sent by this application")
	rootCmd.AddCommand(clearCmd)
}
