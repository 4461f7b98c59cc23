// Package report provides sinks for charstream diagnostics.
package report

import (
	"sync"

	"github.com/chronos-tachyon/go-charstream"
)

type discard struct{}

func (discard) Report(charstream.Event) {}

// Discard drops every event.
var Discard charstream.Reporter = discard{}

// Collector keeps every event it receives, in order.  It is safe for
// concurrent use.
type Collector struct {
	mu     sync.Mutex
	events []charstream.Event
}

// Report fulfills the charstream.Reporter interface.
func (c *Collector) Report(ev charstream.Event) {
	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()
}

// Events returns a copy of the events collected so far.
func (c *Collector) Events() []charstream.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]charstream.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Count returns the number of events of the given kind.
func (c *Collector) Count(kind charstream.EventKind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, ev := range c.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// Reset forgets all collected events.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.events = nil
	c.mu.Unlock()
}

type multi []charstream.Reporter

func (m multi) Report(ev charstream.Event) {
	for _, r := range m {
		r.Report(ev)
	}
}

// Multi returns a Reporter that passes each event to every non-nil
// reporter, in order.
func Multi(reporters ...charstream.Reporter) charstream.Reporter {
	var m multi
	for _, r := range reporters {
		if r == nil {
			continue
		}
		if inner, ok := r.(multi); ok {
			m = append(m, inner...)
			continue
		}
		m = append(m, r)
	}
	switch len(m) {
	case 0:
		return Discard
	case 1:
		return m[0]
	}
	return m
}
