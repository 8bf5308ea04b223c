// Package cmd provides the CLI commands for attention.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/avdx/attention/internal/adapters/tui"
	"github.com/avdx/attention/internal/config"
)

// Version info (set at build time via ldflags).
var (
	Version   = "dev"
	BuildDate = "unknown"
)

// Global flags.
var (
	configPath string
	taskText   string
	noPersist  bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "attention",
	Short: "attention - a focus overlay with timed workstation-lock breaks",
	Long: `attention keeps your current task and its elapsed time on screen,
and enforces the break schedule from your config file by locking the
workstation while a break window is active.

Run "attention" with no arguments to start the overlay.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	RunE: runOverlay,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.attention/config.json)")
	rootCmd.Flags().StringVar(&taskText, "text", "", "Set the idle label text and save it to the config")
	rootCmd.Flags().BoolVar(&noPersist, "no-persist", false, "Do not write the --text label back to the config file")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("attention\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runOverlay(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("text") {
		if !overrideMessage(app.config, taskText) {
			fmt.Fprintln(os.Stderr, "Warning: ignoring empty --text")
		} else if !noPersist {
			if err := config.Save(app.config, app.configPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to save config: %v\n", err)
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, tui.Options{
		Config:     app.config,
		ConfigPath: app.configPath,
		Session:    app.session,
		Monitor:    app.monitor,
	})
}

// overrideMessage applies a --text value to the loaded config. A value
// that is empty after trimming is rejected and leaves the config alone.
func overrideMessage(cfg *config.Config, raw string) bool {
	text := strings.TrimSpace(raw)
	if text == "" {
		return false
	}
	cfg.Message = text
	return true
}
