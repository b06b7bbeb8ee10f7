package navigation

// History gives the storefront browser-like back/forward navigation that is
// fully controlled by the application rather than the host platform. It holds
// an ordered sequence of entries plus a cursor into it.
//
// The sequence is never empty: a new History starts with a single Home entry
// and the cursor at 0. Pushing discards any forward entries first, like a
// browser does. Back and Forward clamp at the ends of the sequence and are
// no-ops there.
//
// History is not safe for concurrent use; the owning session serializes
// access. None of the operations perform I/O or fail.
type History struct {
	entries []Entry
	cursor  int
}

// NewHistory creates a history seeded with the home page.
func NewHistory() *History {
	return &History{entries: []Entry{Home{}}}
}

// Push truncates the sequence to [0..cursor], appends the entry, and moves
// the cursor to it. All navigation funnels through here.
func (h *History) Push(e Entry) {
	h.entries = append(h.entries[:h.cursor+1], e)
	h.cursor = len(h.entries) - 1
}

// Back moves the cursor one entry towards the start and returns the entry now
// at the cursor. At the start of the sequence it is a no-op.
func (h *History) Back() Entry {
	if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor]
}

// Forward moves the cursor one entry towards the end and returns the entry
// now at the cursor. At the end of the sequence it is a no-op.
func (h *History) Forward() Entry {
	if h.cursor < len(h.entries)-1 {
		h.cursor++
	}
	return h.entries[h.cursor]
}

// Current returns the entry at the cursor.
func (h *History) Current() Entry {
	return h.entries[h.cursor]
}

// CanGoBack reports whether Back would move the cursor.
func (h *History) CanGoBack() bool {
	return h.cursor > 0
}

// CanGoForward reports whether Forward would move the cursor.
func (h *History) CanGoForward() bool {
	return h.cursor < len(h.entries)-1
}

// Len returns the number of entries in the sequence.
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the current 0-indexed cursor position.
func (h *History) Cursor() int {
	return h.cursor
}

// Entries returns a copy of the entry sequence, oldest first.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}
