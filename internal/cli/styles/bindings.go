package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/z1gc/gorime/internal/composer"
	"github.com/z1gc/gorime/internal/keys"
)

// BindingsRenderer renders the effective switch-key table.
type BindingsRenderer struct {
	theme *Theme
}

// NewBindingsRenderer creates a renderer with the given theme.
func NewBindingsRenderer(theme *Theme) *BindingsRenderer {
	return &BindingsRenderer{theme: theme}
}

// Render renders the binding table sorted by keysym, one line per binding.
func (r *BindingsRenderer) Render(table composer.BindingTable) string {
	if len(table) == 0 {
		return r.theme.Subtle.Render("no switch-key bindings configured")
	}

	keycodes := make([]int, 0, len(table))
	for keycode := range table {
		keycodes = append(keycodes, keycode)
	}
	sort.Ints(keycodes)

	var sb strings.Builder
	sb.WriteString(r.theme.Header.Render("switch keys"))
	sb.WriteString("\n")
	for _, keycode := range keycodes {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			r.theme.Highlight.Render(fmt.Sprintf("%-12s", keys.KeysymName(keycode))),
			table[keycode].String(),
		))
	}
	return sb.String()
}

// DecisionBadge renders a ProcessKey decision.
func (t *Theme) DecisionBadge(result composer.Result) string {
	switch result {
	case composer.Accept:
		return t.Highlight.Foreground(t.Good).Render("accept")
	case composer.Reject:
		return t.Highlight.Foreground(t.Bad).Render("reject")
	}
	return t.Subtle.Render("pass")
}
