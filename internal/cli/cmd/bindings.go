package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/z1gc/gorime/internal/cli/styles"
)

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "Show the effective switch-key table",
	Long: `Show the switch-key bindings in effect after merging the user
configuration with the built-in preset, with invalid entries already
filtered out.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		theme := styles.DefaultTheme()
		renderer := styles.NewBindingsRenderer(theme)
		cmd.Println(renderer.Render(app.Composer.Bindings()))

		cfg := app.Config.AsciiComposer
		cmd.Printf("good_old_caps_lock: %s\n", theme.OnOff(cfg.GoodOldCapsLock))
		cmd.Printf("caps_polarity_inverted: %s\n", theme.OnOff(cfg.CapsPolarityInverted))
		if file := app.Manager.ConfigFileUsed(); file != "" {
			cmd.Println(theme.Subtle.Render(fmt.Sprintf("config: %s", file)))
		} else {
			cmd.Println(theme.Subtle.Render("config: built-in preset"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bindingsCmd)
}
