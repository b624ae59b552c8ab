// Package schedule provides cancellable deferred actions for the Bubble Tea
// event loop.
//
// Each logical operation owns a key. Scheduling under a key replaces any
// pending action for that key: the old tick still fires, but carries a
// stale generation and is dropped by Accept.
package schedule

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
)

// FiredMsg is delivered when a scheduled action's delay has elapsed.
type FiredMsg struct {
	Key     string
	Gen     uint64
	Payload any
}

// TickFunc matches tea.Tick. Tests substitute a manual clock.
type TickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

type handle struct {
	gen     uint64
	pending bool
}

// Timers tracks the live generation per key. It is not safe for
// concurrent use; it is owned by a single model.
type Timers struct {
	tick    TickFunc
	handles map[string]*handle
}

// New returns Timers backed by tea.Tick.
func New() *Timers {
	return NewWithTick(tea.Tick)
}

// NewWithTick returns Timers that schedule through tick.
func NewWithTick(tick TickFunc) *Timers {
	return &Timers{tick: tick, handles: make(map[string]*handle)}
}

// After schedules payload to be delivered under key once d has elapsed,
// cancelling whatever was pending for key.
func (t *Timers) After(key string, d time.Duration, payload any) tea.Cmd {
	h := t.handle(key)
	h.gen++
	h.pending = true
	msg := FiredMsg{Key: key, Gen: h.gen, Payload: payload}
	return t.tick(d, func(time.Time) tea.Msg { return msg })
}

// Cancel drops the pending action for key, if any.
func (t *Timers) Cancel(key string) {
	if h, ok := t.handles[key]; ok {
		h.gen++
		h.pending = false
	}
}

// CancelPrefix cancels every key starting with prefix.
func (t *Timers) CancelPrefix(prefix string) {
	for k := range t.handles {
		if strings.HasPrefix(k, prefix) {
			t.Cancel(k)
		}
	}
}

// Accept reports whether msg is the live firing for its key and, if so,
// marks the key as no longer pending.
func (t *Timers) Accept(msg FiredMsg) bool {
	h, ok := t.handles[msg.Key]
	if !ok || !h.pending || h.gen != msg.Gen {
		return false
	}
	h.pending = false
	return true
}

// Pending reports whether key has an action waiting to fire.
func (t *Timers) Pending(key string) bool {
	h, ok := t.handles[key]
	return ok && h.pending
}

func (t *Timers) handle(key string) *handle {
	h, ok := t.handles[key]
	if !ok {
		h = &handle{}
		t.handles[key] = h
	}
	return h
}
