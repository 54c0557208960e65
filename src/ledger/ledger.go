// Package ledger records per-invocation usage for the dashboard view.
// Records live in memory for the process lifetime.
package ledger

import (
	"sync"
	"time"
)

// Usage is one successful invocation of a cataloged agent.
type Usage struct {
	AgentID   string
	AgentName string
	User      string
	Timestamp time.Time
	Earnings  float64
}

// Summary aggregates the recorded usage.
type Summary struct {
	TotalUses     int
	TotalEarnings float64
}

// Ledger is an append-only usage log.
type Ledger struct {
	mu      sync.RWMutex
	records []Usage
}

func New() *Ledger {
	return &Ledger{}
}

// Record appends one usage entry. A zero timestamp is filled in.
func (l *Ledger) Record(u Usage) {
	if u.Timestamp.IsZero() {
		u.Timestamp = time.Now()
	}
	l.mu.Lock()
	l.records = append(l.records, u)
	l.mu.Unlock()
}

// Recent returns up to n entries, newest first.
func (l *Ledger) Recent(n int) []Usage {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n <= 0 || n > len(l.records) {
		n = len(l.records)
	}
	out := make([]Usage, 0, n)
	for i := len(l.records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, l.records[i])
	}
	return out
}

// Summarize totals the recorded usage.
func (l *Ledger) Summarize() Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := Summary{TotalUses: len(l.records)}
	for _, r := range l.records {
		s.TotalEarnings += r.Earnings
	}
	return s
}
