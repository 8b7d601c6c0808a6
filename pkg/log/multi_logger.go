package log

import "sync"

// MultiLogger sends events to multiple loggers, e.g. a SlogAdapter for the
// console and a FileLogger for offline analysis.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger. Nil loggers are skipped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

// Log sends the event to all configured loggers.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

// MemoryLogger keeps events in memory, newest last. A positive limit bounds
// the number of retained events.
type MemoryLogger struct {
	mu     sync.Mutex
	limit  int
	events []Event
}

// NewMemoryLogger creates a MemoryLogger. A limit of 0 keeps everything.
func NewMemoryLogger(limit int) *MemoryLogger {
	return &MemoryLogger{limit: limit}
}

// Log appends the event, dropping the oldest when the limit is reached.
func (m *MemoryLogger) Log(event Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.limit > 0 && len(m.events) == m.limit {
		m.events = append(m.events[:0], m.events[1:]...)
	}
	m.events = append(m.events, event)
}

// Events returns a copy of the retained events.
func (m *MemoryLogger) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Reset drops all retained events.
func (m *MemoryLogger) Reset() {
	m.mu.Lock()
	m.events = nil
	m.mu.Unlock()
}

var (
	_ Logger = (*MultiLogger)(nil)
	_ Logger = (*MemoryLogger)(nil)
)
