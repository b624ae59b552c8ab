// Package schedtest provides a manual clock for driving schedule.Timers
// in tests without sleeping.
package schedtest

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

type entry struct {
	at  time.Duration
	seq int
	fn  func(time.Time) tea.Msg
}

// Clock records scheduled ticks and releases them as virtual time advances.
type Clock struct {
	now     time.Duration
	seq     int
	pending []entry
}

// Tick has the shape of tea.Tick. It records the callback and returns a
// nil command, so tea.Batch drops it.
func (c *Clock) Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	c.seq++
	c.pending = append(c.pending, entry{at: c.now + d, seq: c.seq, fn: fn})
	return nil
}

// Advance moves the clock forward by d, delivering every tick that falls
// due in firing order. The clock reads the tick's time while deliver
// runs, so ticks scheduled from inside deliver are placed correctly and
// fire within the same Advance if they are due.
func (c *Clock) Advance(d time.Duration, deliver func(tea.Msg)) {
	end := c.now + d
	for {
		i := c.next(end)
		if i < 0 {
			break
		}
		e := c.pending[i]
		c.pending = append(c.pending[:i], c.pending[i+1:]...)
		c.now = e.at
		deliver(e.fn(time.Time{}.Add(e.at)))
	}
	c.now = end
}

// Now returns the elapsed virtual time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Len returns the number of ticks that have not fired yet.
func (c *Clock) Len() int {
	return len(c.pending)
}

func (c *Clock) next(end time.Duration) int {
	best := -1
	for i, e := range c.pending {
		if e.at > end {
			continue
		}
		if best < 0 || e.at < c.pending[best].at ||
			(e.at == c.pending[best].at && e.seq < c.pending[best].seq) {
			best = i
		}
	}
	return best
}
