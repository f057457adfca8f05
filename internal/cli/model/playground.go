// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/z1gc/gorime/internal/cli/styles"
	"github.com/z1gc/gorime/internal/composer"
	"github.com/z1gc/gorime/internal/engine"
	"github.com/z1gc/gorime/internal/keys"
)

// PlaygroundKeyMap defines the playground's own control keys; everything
// else is fed into the composer.
type PlaygroundKeyMap struct {
	ShiftTap   key.Binding
	RightShift key.Binding
	CapsLock   key.Binding
	EisuToggle key.Binding
	ToggleCaps key.Binding
	Quit       key.Binding
}

// DefaultPlaygroundKeyMap returns the playground controls.
func DefaultPlaygroundKeyMap() PlaygroundKeyMap {
	return PlaygroundKeyMap{
		ShiftTap:   key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "tap left shift")),
		RightShift: key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "tap right shift")),
		CapsLock:   key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "press caps lock")),
		EisuToggle: key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "press eisu toggle")),
		ToggleCaps: key.NewBinding(key.WithKeys("f6"), key.WithHelp("f6", "toggle caps modifier")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k PlaygroundKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ShiftTap, k.RightShift, k.CapsLock, k.EisuToggle, k.ToggleCaps, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k PlaygroundKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ReloadMsg delivers a new composer configuration from the config watcher.
type ReloadMsg struct {
	Config composer.Config
}

// PlaygroundModel drives key events through the composer and visualizes the
// resulting mode state. Terminal input cannot carry key releases or the real
// caps modifier, so modifier gestures are simulated with function keys and a
// sticky caps flag.
type PlaygroundModel struct {
	ctx  *engine.Memory
	comp *composer.AsciiComposer

	keys PlaygroundKeyMap
	help help.Model

	theme     *styles.Theme
	capsOn    bool
	lastEvent string
	lastGloss string
	committed []string
	width     int
}

// NewPlaygroundModel creates the playground around a wired context/composer.
func NewPlaygroundModel(ctx *engine.Memory, comp *composer.AsciiComposer, theme *styles.Theme) PlaygroundModel {
	return PlaygroundModel{
		ctx:   ctx,
		comp:  comp,
		keys:  DefaultPlaygroundKeyMap(),
		help:  help.New(),
		theme: theme,
	}
}

// Init implements tea.Model.
func (m PlaygroundModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case ReloadMsg:
		m.comp.Reload(msg.Config)
		m.lastGloss = "configuration reloaded"
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ShiftTap):
			m.feed(m.event(keys.ShiftL, false))
			m.feed(m.event(keys.ShiftL, true))
			return m, nil
		case key.Matches(msg, m.keys.RightShift):
			m.feed(m.event(keys.ShiftR, false))
			m.feed(m.event(keys.ShiftR, true))
			return m, nil
		case key.Matches(msg, m.keys.CapsLock):
			m.feed(m.event(keys.CapsLock, false))
			m.feed(m.event(keys.CapsLock, true))
			m.capsOn = !m.capsOn
			return m, nil
		case key.Matches(msg, m.keys.EisuToggle):
			m.feed(m.event(keys.EisuToggle, false))
			return m, nil
		case key.Matches(msg, m.keys.ToggleCaps):
			m.capsOn = !m.capsOn
			m.lastGloss = "caps modifier flipped (no key event)"
			return m, nil
		}
		if ev, ok := m.translate(msg); ok {
			m.feed(ev)
		}
		return m, nil
	}
	return m, nil
}

// translate maps a terminal key message to a key event press.
func (m *PlaygroundModel) translate(msg tea.KeyMsg) (keys.Event, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.event(keys.Return, false), true
	case tea.KeySpace:
		return m.event(keys.Space, false), true
	case tea.KeyBackspace:
		return m.event(keys.BackSpace, false), true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return keys.Event{}, false
		}
		ch := msg.Runes[0]
		if ch < keys.Space || ch > keys.AsciiTilde {
			return keys.Event{}, false
		}
		ev := m.event(int(ch), false)
		ev.Shift = ch >= 'A' && ch <= 'Z'
		return ev, true
	}
	return keys.Event{}, false
}

func (m *PlaygroundModel) event(keycode int, release bool) keys.Event {
	return keys.Event{Keycode: keycode, Release: release, Caps: m.capsOn}
}

// feed runs one event through the composer and mimics the rest of the
// pipeline: rejected printable keys commit directly, passed-through
// printables feed the pretend native composition, and Return/space commit it.
func (m *PlaygroundModel) feed(ev keys.Event) {
	result := m.comp.ProcessKey(ev)
	m.lastEvent = fmt.Sprintf("%s %s", ev.String(), m.theme.DecisionBadge(result))
	m.lastGloss = ""

	if ev.Release {
		return
	}
	ch := ev.Keycode
	switch result {
	case composer.Reject:
		if ch >= keys.Space && ch <= keys.AsciiTilde {
			m.commit(string(rune(ch)))
			m.lastGloss = "committed directly"
		}
	case composer.Pass:
		switch {
		case m.ctx.IsComposing() && (ch == keys.Return || ch == keys.Space):
			m.ctx.Commit()
			m.lastGloss = "composition committed"
		case ch == keys.BackSpace && m.ctx.IsComposing():
			m.ctx.PopInput()
		case ch >= keys.Space && ch <= keys.AsciiTilde && ch != keys.Space:
			// pretend native composition input
			m.ctx.PushInput(rune(ch))
		}
	}
}

func (m *PlaygroundModel) commit(text string) {
	m.committed = append(m.committed, text)
	if len(m.committed) > 16 {
		m.committed = m.committed[1:]
	}
}

// View implements tea.Model.
func (m PlaygroundModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.theme.Header.Render("gorime playground"))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("ascii_mode %s   temp_ascii %s   caps %s\n",
		m.theme.OnOff(m.ctx.GetOption(composer.OptionAsciiMode)),
		m.theme.OnOff(m.ctx.GetOption(composer.OptionTempAscii)),
		m.theme.OnOff(m.capsOn),
	))
	sb.WriteString(fmt.Sprintf("preedit    %s\n", m.theme.Highlight.Render(m.ctx.Preedit())))
	sb.WriteString(fmt.Sprintf("history    %s\n", m.theme.Subtle.Render(m.ctx.History().LatestText())))
	sb.WriteString(fmt.Sprintf("committed  %s\n", strings.Join(m.committed, "")))

	sb.WriteString("\n")
	if m.lastEvent != "" {
		sb.WriteString(m.lastEvent)
		if m.lastGloss != "" {
			sb.WriteString("  ")
			sb.WriteString(m.theme.Subtle.Render(m.lastGloss))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}
