// Package engine provides a reference in-memory composition context used by
// the CLI, the TUI playground and tests. It models just enough of a
// composition engine for the mode decision core: a preedit buffer, named
// boolean options, a commit history and a synchronous update notifier.
package engine

import (
	"github.com/z1gc/gorime/internal/composer"
)

// CommitFunc receives directly committed text.
type CommitFunc func(text string)

// Memory is an in-memory composer.Context. It is not safe for concurrent
// use; like the composer itself it belongs to the key-dispatching goroutine.
type Memory struct {
	options map[string]bool
	preedit []rune
	history composer.History

	commit CommitFunc

	subscribers map[int]func()
	nextSubID   int
}

// NewMemory creates a context with the given history store and commit sink.
// A nil sink discards committed text.
func NewMemory(history composer.History, commit CommitFunc) *Memory {
	if commit == nil {
		commit = func(string) {}
	}
	return &Memory{
		options:     make(map[string]bool),
		history:     history,
		commit:      commit,
		subscribers: make(map[int]func()),
	}
}

// GetOption returns a named boolean option, false when unset.
func (m *Memory) GetOption(name string) bool {
	return m.options[name]
}

// SetOption sets a named boolean option.
func (m *Memory) SetOption(name string, value bool) {
	m.options[name] = value
}

// IsComposing reports whether there is pending preedit input.
func (m *Memory) IsComposing() bool {
	return len(m.preedit) > 0
}

// Preedit returns the current preedit text.
func (m *Memory) Preedit() string {
	return string(m.preedit)
}

// PushInput appends a character to the preedit buffer.
func (m *Memory) PushInput(ch rune) {
	m.preedit = append(m.preedit, ch)
	m.notify()
}

// Clear discards the composition entirely.
func (m *Memory) Clear() {
	m.preedit = m.preedit[:0]
	m.notify()
}

// ConfirmCurrentSelection commits the current preedit as selected text.
func (m *Memory) ConfirmCurrentSelection() {
	if len(m.preedit) == 0 {
		return
	}
	m.CommitText(string(m.preedit))
	m.preedit = m.preedit[:0]
	m.notify()
}

// ClearNonConfirmedComposition drops tentative conversion results. The
// reference model has no conversion stage, so the raw input is all there is
// and survives; a following Commit commits it as typed.
func (m *Memory) ClearNonConfirmedComposition() {}

// PopInput removes the last character from the preedit buffer.
func (m *Memory) PopInput() {
	if len(m.preedit) == 0 {
		return
	}
	m.preedit = m.preedit[:len(m.preedit)-1]
	m.notify()
}

// Commit commits whatever input remains.
func (m *Memory) Commit() {
	if len(m.preedit) > 0 {
		m.CommitText(string(m.preedit))
		m.preedit = m.preedit[:0]
	}
	m.notify()
}

// CommitText commits text directly, recording it in the history.
func (m *Memory) CommitText(text string) {
	m.history.Push(text)
	m.commit(text)
}

// History returns the commit history.
func (m *Memory) History() composer.History {
	return m.history
}

// OnUpdate registers a synchronous update callback and returns its cancel.
func (m *Memory) OnUpdate(fn func()) (cancel func()) {
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn
	return func() {
		delete(m.subscribers, id)
	}
}

// notify invokes subscribers after a composition mutation. Callbacks may
// cancel themselves mid-iteration, so iterate over a snapshot.
func (m *Memory) notify() {
	ids := make([]int, 0, len(m.subscribers))
	for id := range m.subscribers {
		ids = append(ids, id)
	}
	for _, id := range ids {
		if fn, ok := m.subscribers[id]; ok {
			fn()
		}
	}
}
