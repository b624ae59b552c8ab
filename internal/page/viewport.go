package page

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vitae/internal/schedule"
)

const scrollKey = "scroll"

// Viewport is the visible window onto the laid-out document.
// ScrollTo eases toward its target one frame at a time.
type Viewport struct {
	timers *schedule.Timers
	frame  time.Duration

	Offset  int
	Height  int
	Content int

	target int
}

// NewViewport returns a viewport that schedules scroll frames on timers.
func NewViewport(timers *schedule.Timers, frame time.Duration) *Viewport {
	return &Viewport{timers: timers, frame: frame}
}

// MaxOffset is the largest offset that still fills the viewport.
func (v *Viewport) MaxOffset() int {
	return max(0, v.Content-v.Height)
}

// Resize updates the window and content heights and re-clamps the offset.
func (v *Viewport) Resize(height, content int) {
	v.Height = max(0, height)
	v.Content = max(0, content)
	v.Offset = v.clamp(v.Offset)
	v.target = v.clamp(v.target)
}

// ScrollTo starts a smooth scroll that aligns line with the top edge.
func (v *Viewport) ScrollTo(line int) tea.Cmd {
	v.target = v.clamp(line)
	if v.target == v.Offset {
		v.timers.Cancel(scrollKey)
		return nil
	}
	return v.timers.After(scrollKey, v.frame, nil)
}

// ScrollBy moves immediately by delta rows, cancelling any smooth scroll.
func (v *Viewport) ScrollBy(delta int) {
	v.timers.Cancel(scrollKey)
	v.Offset = v.clamp(v.Offset + delta)
	v.target = v.Offset
}

// Scrolling reports whether a smooth scroll is in progress.
func (v *Viewport) Scrolling() bool {
	return v.timers.Pending(scrollKey)
}

// step covers half the remaining distance, at least one row.
func (v *Viewport) step() tea.Cmd {
	delta := v.target - v.Offset
	switch {
	case delta == 0:
		return nil
	case delta > 0:
		v.Offset += max(1, delta/2)
	default:
		v.Offset += min(-1, delta/2)
	}
	if v.Offset == v.target {
		return nil
	}
	return v.timers.After(scrollKey, v.frame, nil)
}

func (v *Viewport) clamp(line int) int {
	return min(max(0, line), v.MaxOffset())
}
