package composer

import (
	"github.com/rs/zerolog"

	"github.com/z1gc/gorime/internal/keys"
)

// BindingTable maps a keysym to the switch style performed when that key
// toggles ASCII mode. Built once from configuration, immutable until reload.
type BindingTable map[int]SwitchStyle

// NewBindingTable builds a binding table from a switch-key source. The
// fallback source is consulted only when the primary source is absent or
// empty. Entries with unparseable key notation, any modifier bit, an unknown
// style name, or the "noop" style are skipped with a warning. If neither
// source yields an entry the table is empty and caps-lock switching stays
// disabled; that is a configuration error, not a fatal one.
func NewBindingTable(primary, fallback map[string]string, log zerolog.Logger) BindingTable {
	source := primary
	if len(source) == 0 {
		source = fallback
	}
	if len(source) == 0 {
		log.Error().Msg("missing ascii switch-key bindings")
		return BindingTable{}
	}

	table := make(BindingTable, len(source))
	for repr, styleName := range source {
		style, ok := styleByName[styleName]
		if !ok {
			log.Warn().Str("key", repr).Str("style", styleName).Msg("unknown ascii mode switch style")
			continue
		}
		if style == StyleNoop {
			continue
		}
		ev, err := keys.Parse(repr)
		if err != nil || ev.Modifier() != keys.ModNone {
			log.Warn().Str("key", repr).Msg("invalid ascii mode switch key")
			continue
		}
		table[ev.Keycode] = style
	}
	return table
}

// capsLockStyle derives the caps-lock switch style from the table. Inline
// conversion is meaningless for a held modifier, so it is remapped to clear.
func (t BindingTable) capsLockStyle() SwitchStyle {
	style, ok := t[keys.CapsLock]
	if !ok {
		return StyleNoop
	}
	if style == StyleInline {
		return StyleClear
	}
	return style
}
