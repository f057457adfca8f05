package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/z1gc/gorime/internal/cli"
	"github.com/z1gc/gorime/internal/cli/model"
	"github.com/z1gc/gorime/internal/cli/styles"
	"github.com/z1gc/gorime/internal/composer"
	"github.com/z1gc/gorime/internal/config"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive mode-switch playground",
	Long: `Run the interactive playground: typed keys are fed through the
dispatcher, with function keys simulating the modifier gestures a terminal
cannot deliver directly. Edits to the config file are picked up live.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		playground := model.NewPlaygroundModel(app.Context, app.Composer, styles.DefaultTheme())
		program := tea.NewProgram(playground, tea.WithAltScreen())

		// Reloads go through a mailbox drained next to the program, so the
		// composer is only touched from the update loop and never from
		// fsnotify's goroutine. A stale pending reload is replaced.
		reloads := make(chan composer.Config, 1)
		app.Manager.OnConfigChange(func(next *config.Config) {
			cfg := cli.ComposerConfig(next)
			for {
				select {
				case reloads <- cfg:
					return
				case <-reloads:
				}
			}
		})
		if err := app.Manager.Watch(); err != nil {
			app.Log.Warn().Err(err).Msg("config watch unavailable")
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		var g errgroup.Group
		g.Go(func() error {
			defer cancel()
			_, err := program.Run()
			return err
		})
		g.Go(func() error {
			for {
				select {
				case cfg := <-reloads:
					program.Send(model.ReloadMsg{Config: cfg})
				case <-ctx.Done():
					return nil
				}
			}
		})
		if err := g.Wait(); err != nil {
			return fmt.Errorf("playground: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
