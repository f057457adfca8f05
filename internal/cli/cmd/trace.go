package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/z1gc/gorime/internal/cli"
	"github.com/z1gc/gorime/internal/cli/styles"
	"github.com/z1gc/gorime/internal/composer"
	"github.com/z1gc/gorime/internal/engine"
	"github.com/z1gc/gorime/internal/history"
	"github.com/z1gc/gorime/internal/keys"
)

var traceCmd = &cobra.Command{
	Use:   "trace <key>...",
	Short: "Replay a key sequence through the dispatcher",
	Long: `Replay a sequence of key events and print the decision for each.

Keys use the switch-key notation, with modifier prefixes allowed:
  a  Shift_L  Release+Shift_L  Caps_Lock  Shift+space  Control+c

A token of the form @<duration> advances the simulated clock instead of
producing an event, which makes the 500ms modifier-tap window observable:

  gorime trace Shift_L Release+Shift_L
  gorime trace Shift_L @600ms Release+Shift_L`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme := styles.DefaultTheme()

		// A dedicated composer with a manual clock keeps the trace
		// deterministic and leaves the app's own state untouched.
		now := time.Unix(0, 0)
		hist := history.NewRing(0)
		var committed []string
		ctx := engine.NewMemory(hist, func(text string) {
			committed = append(committed, text)
		})
		comp := composer.New(ctx, cli.ComposerConfig(app.Config),
			composer.WithLogger(app.Log),
			composer.WithClock(func() time.Time { return now }))
		defer comp.Close()

		for _, token := range args {
			if d, ok := strings.CutPrefix(token, "@"); ok {
				dur, err := time.ParseDuration(d)
				if err != nil {
					return fmt.Errorf("invalid duration token %q: %w", token, err)
				}
				now = now.Add(dur)
				cmd.Println(theme.Subtle.Render(fmt.Sprintf("  ... %s elapse", dur)))
				continue
			}
			ev, err := keys.Parse(token)
			if err != nil {
				return fmt.Errorf("invalid key token %q: %w", token, err)
			}
			result := comp.ProcessKey(ev)
			cmd.Printf("%-24s %s  ascii_mode=%s temp_ascii=%s composing=%v\n",
				ev.String(),
				theme.DecisionBadge(result),
				theme.OnOff(ctx.GetOption(composer.OptionAsciiMode)),
				theme.OnOff(ctx.GetOption(composer.OptionTempAscii)),
				ctx.IsComposing(),
			)
		}
		if len(committed) > 0 {
			cmd.Printf("committed: %s\n", strings.Join(committed, " "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
}
