package keys

import (
	"fmt"
	"strings"
)

// Parse parses key notation like "a", "Caps_Lock", "Shift+space" or
// "Control+Release+k" into an Event. Tokens are separated by '+'; every
// token except the last must be a modifier name. Single printable ASCII
// characters name themselves.
func Parse(repr string) (Event, error) {
	if repr == "" {
		return Event{}, fmt.Errorf("empty key notation")
	}

	var ev Event
	tokens := strings.Split(repr, "+")
	for _, tok := range tokens[:len(tokens)-1] {
		switch strings.ToLower(tok) {
		case "shift":
			ev.Shift = true
		case "control", "ctrl":
			ev.Ctrl = true
		case "alt":
			ev.Alt = true
		case "super", "meta":
			ev.Super = true
		case "lock", "caps":
			ev.Caps = true
		case "release":
			ev.Release = true
		default:
			return Event{}, fmt.Errorf("unknown modifier %q in %q", tok, repr)
		}
	}

	name := tokens[len(tokens)-1]
	keysym, err := parseKeysym(name)
	if err != nil {
		return Event{}, fmt.Errorf("parse %q: %w", repr, err)
	}
	ev.Keycode = keysym
	return ev, nil
}

func parseKeysym(name string) (int, error) {
	if len(name) == 1 {
		ch := name[0]
		if ch >= Space && ch <= AsciiTilde {
			return int(ch), nil
		}
		return 0, fmt.Errorf("unprintable key character %q", name)
	}
	if keysym, ok := keysymByName[name]; ok {
		return keysym, nil
	}
	// Config sources may fold key case (viper lowercases map keys), so
	// multi-character names match case-insensitively.
	if keysym, ok := lowerKeysymByName[strings.ToLower(name)]; ok {
		return keysym, nil
	}
	return 0, fmt.Errorf("unknown key name %q", name)
}
