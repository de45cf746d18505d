package workflow

import "hivemind/internal/api"

// MaxLogEntries caps the display log buffer.
const MaxLogEntries = 50

// LogBuffer is a bounded, newest-first sequence of log entries. Appending
// past capacity evicts the oldest entries at the tail. Entries are never
// mutated after insertion.
type LogBuffer struct {
	entries []api.LogEntry
}

// NewLogBuffer returns an empty buffer.
func NewLogBuffer() *LogBuffer {
	return &LogBuffer{}
}

// Append inserts an entry at the front, evicting from the tail if full.
func (b *LogBuffer) Append(e api.LogEntry) {
	b.entries = append([]api.LogEntry{e}, b.entries...)
	if len(b.entries) > MaxLogEntries {
		b.entries = b.entries[:MaxLogEntries]
	}
}

// Entries returns the buffer newest-first. The returned slice is a copy;
// callers cannot mutate the buffer through it.
func (b *LogBuffer) Entries() []api.LogEntry {
	out := make([]api.LogEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of buffered entries.
func (b *LogBuffer) Len() int { return len(b.entries) }

// Clear resets the buffer to empty.
func (b *LogBuffer) Clear() {
	b.entries = nil
}
