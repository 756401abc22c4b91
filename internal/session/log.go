package session

import "time"

// DefaultLogCapacity is how many activity entries a session keeps.
const DefaultLogCapacity = 8

// Entry is one line of the mission activity log.
type Entry struct {
	Time    time.Time `json:"ts"`
	Message string    `json:"message"`
}

func (e Entry) String() string {
	return e.Time.Format("15:04:05") + " — " + e.Message
}

// ActivityLog keeps the most recent entries, newest first. Adding beyond the
// capacity evicts the oldest entry.
type ActivityLog struct {
	capacity int
	entries  []Entry
}

// NewActivityLog returns an empty log. A non-positive capacity falls back to
// DefaultLogCapacity.
func NewActivityLog(capacity int) *ActivityLog {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &ActivityLog{capacity: capacity, entries: make([]Entry, 0, capacity)}
}

// Add inserts e at the front.
func (l *ActivityLog) Add(e Entry) {
	l.entries = append(l.entries, Entry{})
	copy(l.entries[1:], l.entries)
	l.entries[0] = e
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// Entries returns a copy of the log, newest first.
func (l *ActivityLog) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Lines renders the entries as HH:MM:SS — message.
func (l *ActivityLog) Lines() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.String()
	}
	return out
}

// Len returns the number of stored entries.
func (l *ActivityLog) Len() int { return len(l.entries) }

// Capacity returns the maximum number of stored entries.
func (l *ActivityLog) Capacity() int { return l.capacity }
