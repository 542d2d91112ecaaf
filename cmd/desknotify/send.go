package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/desknotify"
	"github.com/jmylchreest/desknotify/internal/config"
)

var sendOpts struct {
	urgency   string
	icon      string
	timeout   int
	sound     bool
	soundName string
	thread    string
	buttons   []string
	reply     bool
	wait      bool
	waitFor   time.Duration
}

var sendCmd = &cobra.Command{
	Use:   "send TITLE MESSAGE",
	Short: "Send a desktop notification",
	Long: `Send a desktop notification and print its identifier.

An empty identifier means the notification was not scheduled (for example
because no notification server is running); this is reported on stderr and
the command exits non-zero.

With --wait, the command stays alive and prints the first user interaction
(clicked, dismissed, a button label, or the reply text) before exiting.

Examples:
  # A simple reminder
  desknotify send "Reminder" "Meeting in 5 minutes"

  # Critical, never auto-dismissed, with buttons, waiting for the outcome
  desknotify send --urgency critical --timeout -1 \
      --button Accept --button Decline --wait "Call" "Incoming call"`,
	Args: cobra.ExactArgs(2),
	RunE: runSend,
}

func runSend(cmd *cobra.Command, args []string) error {
	title, message := args[0], args[1]

	urgency, err := parseUrgencyFlag(sendOpts.urgency)
	if err != nil {
		return err
	}

	timeout := sendOpts.timeout
	if !cmd.Flags().Changed("timeout") {
		timeout = cfg.Send.Timeout
	}

	interactions := make(chan string, 1)
	report := func(event string) {
		select {
		case interactions <- event:
		default:
		}
	}

	opts := []desknotify.SendOption{
		desknotify.WithUrgency(urgency),
		desknotify.WithTimeout(timeout),
		desknotify.WithOnClicked(func() { report("clicked") }),
		desknotify.WithOnDismissed(func() { report("dismissed") }),
	}
	if sendOpts.icon != "" {
		opts = append(opts, desknotify.WithIcon(config.ParseIcon(sendOpts.icon)))
	}
	switch {
	case sendOpts.soundName != "":
		opts = append(opts, desknotify.WithSound(&desknotify.Sound{Name: sendOpts.soundName}))
	case sendOpts.sound || cfg.Send.Sound:
		opts = append(opts, desknotify.WithDefaultSound())
	}
	if sendOpts.thread != "" {
		opts = append(opts, desknotify.WithThread(sendOpts.thread))
	}
	for _, label := range sendOpts.buttons {
		opts = append(opts, desknotify.WithButton(label, func() { report("button:" + label) }))
	}
	if sendOpts.reply {
		opts = append(opts, desknotify.WithReplyField("Reply", "Send", func(text string) {
			report("replied:" + text)
		}))
	}

	n, err := notifier.Send(cmd.Context(), title, message, opts...)
	if err != nil {
		return err
	}
	if !n.Scheduled() {
		return fmt.Errorf("notification was not scheduled")
	}
	fmt.Fprintln(cmd.OutOrStdout(), n.Identifier)

	if sendOpts.wait {
		select {
		case event := <-interactions:
			fmt.Fprintln(cmd.OutOrStdout(), event)
		case <-time.After(sendOpts.waitFor):
			fmt.Fprintln(cmd.OutOrStdout(), "no interaction")
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		}
	}
	return nil
}

func init() {
	sendCmd.Flags().StringVarP(&sendOpts.urgency, "urgency", "u", "", "urgency level: low, normal, critical")
	sendCmd.Flags().StringVarP(&sendOpts.icon, "icon", "i", "", "icon name, path, or URI")
	sendCmd.Flags().IntVarP(&sendOpts.timeout, "timeout", "t", -1, "seconds before auto-dismissal, -1 for server default")
	sendCmd.Flags().BoolVar(&sendOpts.sound, "sound", false, "play the platform default sound")
	sendCmd.Flags().StringVar(&sendOpts.soundName, "sound-name", "", "play a named system sound")
	sendCmd.Flags().StringVar(&sendOpts.thread, "thread", "", "grouping key for related notifications")
	sendCmd.Flags().StringArrayVar(&sendOpts.buttons, "button", nil, "add an action button (repeatable)")
	sendCmd.Flags().BoolVar(&sendOpts.reply, "reply", false, "add a free-text reply field where supported")
	sendCmd.Flags().BoolVarP(&sendOpts.wait, "wait", "w", false, "wait for the first user interaction and print it")
	sendCmd.Flags().DurationVar(&sendOpts.waitFor, "wait-timeout", 30*time.Second, "how long --wait blocks before giving up")

	rootCmd.AddCommand(sendCmd)
}
