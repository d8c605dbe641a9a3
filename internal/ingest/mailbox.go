package ingest

import "sync"

// Mailbox is a single-slot store for the latest raw telemetry line, read by
// the diagnostic endpoint. Before the first line arrives Latest reports
// ok=false, so callers can return an explicit "no data yet" instead of an
// empty-string sentinel.
type Mailbox struct {
	mu   sync.RWMutex
	line string
	has  bool
}

func NewMailbox() *Mailbox {
	return &Mailbox{}
}

func (m *Mailbox) Store(line string) {
	m.mu.Lock()
	m.line = line
	m.has = true
	m.mu.Unlock()
}

func (m *Mailbox) Latest() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.line, m.has
}
