package theme

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vitae/internal/schedule"
	"github.com/abhisek/vitae/internal/store"
)

// PreferenceKey is the preference the applied mode is persisted under.
const PreferenceKey = "theme"

// TimerKey is the schedule key used for transition frames.
const TimerKey = "theme/transition"

// SpinDuration is how long the toggle glyph spins after a toggle.
const SpinDuration = 300 * time.Millisecond

// spinFrames are shown in turn, one per transition frame, while spinning.
var spinFrames = []string{"◐", "◓", "◑", "◒"}

// Indicator is the content of the theme toggle: a glyph and a label
// naming the mode a toggle would switch to.
type Indicator struct {
	Glyph string
	Label string
}

// Controller owns the applied Mode, its persisted value, and the short
// color transition played on toggle.
type Controller struct {
	prefs  store.PreferenceRepo
	timers *schedule.Timers
	log    *zap.Logger

	duration time.Duration
	frame    time.Duration

	mode Mode

	// Transition state. from is the palette displayed when the toggle
	// happened; step counts elapsed frames out of steps.
	transitioning bool
	from          Palette
	step, steps   int
}

// NewController returns a Controller in light mode. Call InitialTheme to
// apply the persisted preference.
func NewController(prefs store.PreferenceRepo, timers *schedule.Timers, log *zap.Logger, duration, frame time.Duration) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		prefs:    prefs,
		timers:   timers,
		log:      log,
		duration: duration,
		frame:    frame,
		mode:     Light,
	}
}

// InitialTheme reads the persisted preference and applies it. Missing,
// unrecognized or unreadable values yield Light.
func (c *Controller) InitialTheme(ctx context.Context) Mode {
	c.mode = Light
	v, ok, err := c.prefs.Get(ctx, PreferenceKey)
	if err != nil {
		c.log.Debug("read theme preference", zap.Error(err))
		return c.mode
	}
	if !ok {
		return c.mode
	}
	if m, known := ParseMode(v); known {
		c.mode = m
	} else {
		c.log.Debug("ignoring unrecognized theme preference", zap.String("value", v))
	}
	return c.mode
}

// Mode returns the applied mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Toggle flips the applied mode, persists it and starts the color
// transition. The returned command drives the transition frames.
func (c *Controller) Toggle(ctx context.Context) (Mode, tea.Cmd) {
	cmd := c.Set(ctx, c.mode.Opposite())
	return c.mode, cmd
}

// Set applies m. A failed write is logged and ignored; the in-memory
// mode is authoritative for the rest of the session.
func (c *Controller) Set(ctx context.Context, m Mode) tea.Cmd {
	displayed := c.Palette()
	c.mode = m

	if err := c.prefs.Set(ctx, PreferenceKey, m.String()); err != nil {
		c.log.Debug("persist theme preference", zap.Error(err))
	}
	c.log.Info("theme applied", zap.Stringer("mode", m))

	if c.duration <= 0 || c.frame <= 0 || c.timers == nil {
		c.endTransition()
		return nil
	}

	c.transitioning = true
	c.from = displayed
	c.step = 0
	c.steps = int(c.duration / c.frame)
	if c.steps < 1 {
		c.steps = 1
	}
	return c.timers.After(TimerKey, c.frame, nil)
}

// HandleFrame advances the transition for a live firing of TimerKey.
func (c *Controller) HandleFrame(msg schedule.FiredMsg) tea.Cmd {
	if msg.Key != TimerKey || !c.timers.Accept(msg) {
		return nil
	}
	c.step++
	if c.step >= c.steps {
		c.endTransition()
		return nil
	}
	return c.timers.After(TimerKey, c.frame, nil)
}

func (c *Controller) endTransition() {
	c.transitioning = false
	c.step, c.steps = 0, 0
}

// Transitioning reports whether a color transition is in progress.
func (c *Controller) Transitioning() bool {
	return c.transitioning
}

// Palette returns the palette to render with: the applied mode's palette,
// or a blend toward it while a transition plays.
func (c *Controller) Palette() Palette {
	target := PaletteFor(c.mode)
	if !c.transitioning || c.steps == 0 {
		return target
	}
	return Blend(c.from, target, float64(c.step)/float64(c.steps))
}

// Styles returns the styles for the current Palette.
func (c *Controller) Styles() Styles {
	return NewStyles(c.Palette())
}

// Spinning reports whether the toggle glyph is still turning after the
// last toggle.
func (c *Controller) Spinning() bool {
	return c.transitioning && time.Duration(c.step)*c.frame < SpinDuration
}

// Indicator describes the toggle for the applied mode. While spinning the
// glyph is replaced by a spin frame.
func (c *Controller) Indicator() Indicator {
	ind := Indicator{Glyph: "☾", Label: "Dark mode"}
	if c.mode == Dark {
		ind = Indicator{Glyph: "☀", Label: "Light mode"}
	}
	if c.Spinning() {
		ind.Glyph = spinFrames[c.step%len(spinFrames)]
	}
	return ind
}
