package consult

import "time"

// Entry is one question/response exchange with a specialist. Immutable once
// recorded; the Response field holds the rendered display text.
type Entry struct {
	Timestamp  time.Time `json:"timestamp"` // UTC
	Specialist string    `json:"specialist"`
	Question   string    `json:"question"`
	Response   string    `json:"response"`
	Category   string    `json:"category,omitempty"`
}

// Ledger is a session's append-only consultation history, bounded only by the
// session lifetime. Ordering is insertion order.
type Ledger struct {
	entries []Entry
}

func NewLedger() *Ledger {
	return &Ledger{entries: make([]Entry, 0)}
}

func (led *Ledger) Record(entry Entry) {
	led.entries = append(led.entries, entry)
}

// Recent returns the last n entries in reverse-chronological order without
// mutating storage.
func (led *Ledger) Recent(n int) []Entry {
	if n > len(led.entries) {
		n = len(led.entries)
	}
	recent := make([]Entry, 0, n)
	for i := len(led.entries) - 1; i >= len(led.entries)-n; i-- {
		recent = append(recent, led.entries[i])
	}
	return recent
}

func (led *Ledger) Len() int { return len(led.entries) }
