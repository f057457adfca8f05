// Package history provides commit-history stores: an in-memory ring for the
// common case and a SQLite-backed store for sessions that persist committed
// text across restarts. Both implement composer.History.
package history

// DefaultCapacity bounds the in-memory ring.
const DefaultCapacity = 20

// Ring is a fixed-capacity in-memory commit history. Like the composer it is
// owned by the key-dispatching goroutine and needs no locking.
type Ring struct {
	entries []string
	cap     int
}

// NewRing creates a ring with the given capacity (DefaultCapacity if <= 0).
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{cap: capacity}
}

// Push appends a committed text segment, evicting the oldest when full.
func (r *Ring) Push(text string) {
	if len(r.entries) == r.cap {
		copy(r.entries, r.entries[1:])
		r.entries = r.entries[:len(r.entries)-1]
	}
	r.entries = append(r.entries, text)
}

// Clear empties the history.
func (r *Ring) Clear() {
	r.entries = r.entries[:0]
}

// LatestText returns the most recent segment, or "".
func (r *Ring) LatestText() string {
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[len(r.entries)-1]
}

// Len returns the number of recorded segments.
func (r *Ring) Len() int {
	return len(r.entries)
}
