package models

import "sync"

// HistoryLog is the in-memory, append-only list of evaluation records
type HistoryLog struct {
	mu      sync.RWMutex
	entries []string
}

// NewHistoryLog creates a history seeded with previously persisted entries
func NewHistoryLog(entries []string) *HistoryLog {
	seeded := make([]string, len(entries))
	copy(seeded, entries)
	return &HistoryLog{entries: seeded}
}

// Append adds an entry at the end of the log
func (h *HistoryLog) Append(entry string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, entry)
}

// Entries returns a copy of all entries in insertion order
func (h *HistoryLog) Entries() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries
func (h *HistoryLog) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
