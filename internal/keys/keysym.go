// Package keys defines keysym-based key events and the textual key notation
// used in switch-key configuration ("Caps_Lock", "Shift_L", "a", ...).
package keys

import (
	"fmt"
	"strings"
)

// X11 keysym values. Printable ASCII keysyms are numerically equal to their
// ASCII codes, which the classifier helpers below rely on.
const (
	Space      = 0x0020
	Exclam     = 0x0021
	QuoteDbl   = 0x0022
	Apostrophe = 0x0027
	Comma      = 0x002c
	Period     = 0x002e
	Semicolon  = 0x003b
	Question   = 0x003f
	Backslash  = 0x005c
	AsciiTilde = 0x007e

	BackSpace  = 0xff08
	Tab        = 0xff09
	Return     = 0xff0d
	Escape     = 0xff1b
	EisuToggle = 0xff2f
	Delete     = 0xffff

	ShiftL   = 0xffe1
	ShiftR   = 0xffe2
	ControlL = 0xffe3
	ControlR = 0xffe4
	CapsLock = 0xffe5
	AltL     = 0xffe9
	AltR     = 0xffea
	SuperL   = 0xffeb
	SuperR   = 0xffec

	VoidSymbol = 0xffffff
)

// keysymByName maps key names accepted in switch-key configuration to keysym
// values. Single printable ASCII characters name themselves and are handled
// directly by Parse, so only multi-character names live here.
var keysymByName = map[string]int{
	"space":        Space,
	"exclam":       Exclam,
	"quotedbl":     QuoteDbl,
	"apostrophe":   Apostrophe,
	"comma":        Comma,
	"period":       Period,
	"semicolon":    Semicolon,
	"question":     Question,
	"backslash":    Backslash,
	"asciitilde":   AsciiTilde,
	"BackSpace":    BackSpace,
	"Tab":          Tab,
	"Return":       Return,
	"Escape":       Escape,
	"Eisu_toggle":  EisuToggle,
	"Delete":       Delete,
	"Shift_L":      ShiftL,
	"Shift_R":      ShiftR,
	"Control_L":    ControlL,
	"Control_R":    ControlR,
	"Caps_Lock":    CapsLock,
	"Alt_L":        AltL,
	"Alt_R":        AltR,
	"Super_L":      SuperL,
	"Super_R":      SuperR,
	"VoidSymbol":   VoidSymbol,
	"grave":        0x0060,
	"minus":        0x002d,
	"equal":        0x003d,
	"bracketleft":  0x005b,
	"bracketright": 0x005d,
	"slash":        0x002f,
}

// lowerKeysymByName allows case-insensitive name lookup for config sources
// that fold key case.
var lowerKeysymByName = func() map[string]int {
	m := make(map[string]int, len(keysymByName))
	for name, sym := range keysymByName {
		m[strings.ToLower(name)] = sym
	}
	return m
}()

// nameByKeysym is the reverse of keysymByName for the non-printable range,
// used for display in logs and CLI output.
var nameByKeysym = func() map[int]string {
	m := make(map[int]string, len(keysymByName))
	for name, sym := range keysymByName {
		if _, ok := m[sym]; !ok {
			m[sym] = name
		}
	}
	return m
}()

// KeysymName returns a printable name for a keysym: the ASCII character for
// the printable range, the configured name otherwise, or a hex form.
func KeysymName(keysym int) string {
	if keysym > Space && keysym <= AsciiTilde {
		return string(rune(keysym))
	}
	if name, ok := nameByKeysym[keysym]; ok {
		return name
	}
	return fmt.Sprintf("0x%X", keysym)
}
