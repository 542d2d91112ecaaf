// Package main provides the CLI entrypoint for desknotify.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/desknotify"
	"github.com/jmylchreest/desknotify/internal/config"
	"github.com/jmylchreest/desknotify/internal/model"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		appName    string
		fallback   bool
	}
	logger *slog.Logger

	// notifier is the shared Notifier instance for the invoked command.
	notifier *desknotify.Notifier
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "desknotify",
	Short: "Send desktop notifications from the command line",
	Long: `desknotify sends desktop notifications through the platform's native
notification mechanism: the freedesktop D-Bus interface on Linux, toast
notifications on Windows, and Notification Center on macOS.

When no native mechanism is available, commands still succeed but nothing is
displayed; the send command reports whether the notification was scheduled.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.Load(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appName := cfg.App.Name
		if globalOpts.appName != "" {
			appName = globalOpts.appName
		}

		opts := []desknotify.Option{
			desknotify.WithAppName(appName),
			desknotify.WithLogger(logger),
		}
		if icon := config.ParseIcon(cfg.App.Icon); icon != nil {
			opts = append(opts, desknotify.WithAppIcon(icon))
		}
		if cfg.App.Limit > 0 {
			opts = append(opts, desknotify.WithNotificationLimit(cfg.App.Limit))
		}
		if globalOpts.fallback {
			opts = append(opts, desknotify.WithFallback())
		}

		notifier, err = desknotify.New(opts...)
		if err != nil {
			return fmt.Errorf("failed to initialize notifier: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if notifier != nil {
			return notifier.Close()
		}
		return nil
	},
}

// setupLogger configures slog output based on verbosity.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// parseUrgencyFlag resolves the effective urgency from flag and config.
func parseUrgencyFlag(flag string) (model.Urgency, error) {
	if flag == "" {
		flag = cfg.Send.Urgency
	}
	return model.ParseUrgency(flag)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "", "config file path (default: "+config.Path()+")")
	rootCmd.PersistentFlags().StringVar(&globalOpts.appName, "app-name", "", "application name shown by the notification center")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.fallback, "no-native", false, "force the inert fallback backend (no native I/O)")
}

func main() {
	Execute()
}
