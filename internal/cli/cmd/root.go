// Package cmd provides Cobra CLI commands for gorime.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/z1gc/gorime/internal/cli"
)

var (
	app       *cli.App
	configDir string

	rootCmd = &cobra.Command{
		Use:   "gorime",
		Short: "ASCII/native input-mode decision engine",
		Long: `Gorime decides, per key event, whether a keystroke is native-script
composition input, verbatim ASCII, or a mode toggle, tracking temporary-ASCII,
modifier-tap and caps-lock sub-states across events.

Use 'gorime bindings' to inspect the effective switch-key table,
'gorime trace' to replay a key sequence through the dispatcher, or
'gorime tui' for the interactive playground.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "path", "init", "schema":
				return nil
			}

			var err error
			if configDir != "" {
				app, err = cli.NewAppAt(configDir)
			} else {
				app, err = cli.NewApp()
			}
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default: XDG config dir)")
}
