package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "Show which notification features the platform supports",
	Long: `Query the selected backend for its supported feature set. Optional
features such as buttons, reply fields, sounds, and attachments vary by
platform and notification server; scripts should check before relying on
them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		caps, err := notifier.Capabilities(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to query capabilities: %w", err)
		}
		for _, c := range caps {
			fmt.Fprintln(cmd.OutOrStdout(), string(c))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(capabilitiesCmd)
}
