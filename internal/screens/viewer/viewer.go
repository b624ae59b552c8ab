// Package viewer is the résumé screen: a tab bar over a scrolling
// document that holds the active section.
package viewer

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vitae/internal/page"
	"github.com/abhisek/vitae/internal/resume"
	"github.com/abhisek/vitae/internal/reveal"
	"github.com/abhisek/vitae/internal/router"
	"github.com/abhisek/vitae/internal/schedule"
	"github.com/abhisek/vitae/internal/screen"
	"github.com/abhisek/vitae/internal/screens/help"
	"github.com/abhisek/vitae/internal/tilt"
	"github.com/abhisek/vitae/internal/ui/components"
	"github.com/abhisek/vitae/internal/ui/layout"
	"github.com/abhisek/vitae/internal/ui/theme"
)

const (
	// contentLeft is the left margin of the content column.
	contentLeft = 2
	// bodyTop is the number of rows above the document: tab bar and a spacer.
	bodyTop = 2
	// wheelStep is how many rows one wheel notch scrolls.
	wheelStep = 3
)

// Options configures the viewer.
type Options struct {
	Resume *resume.Resume
	// ResumePath enables manual reload. Empty means the built-in sample.
	ResumePath string
	// Open is the section to activate at start, if it exists.
	Open string

	Theme  *theme.Controller
	Timers *schedule.Timers
	Log    *zap.Logger
	Timing page.Timing

	Tilt            bool
	TiltDamping     float64
	RevealThreshold float64
}

// Screen shows the résumé.
type Screen struct {
	opts    Options
	resume  *resume.Resume
	coord   *page.Coordinator
	watcher *reveal.Watcher
	md      *resume.Markdown
	log     *zap.Logger

	width, height int
	doc           document

	tilts   map[string]tilt.Transform
	hovered string
}

var _ screen.Screen = (*Screen)(nil)

// New builds the viewer and registers every reveal target with the
// intersection watcher.
func New(opts Options) *Screen {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	s := &Screen{
		opts:    opts,
		resume:  opts.Resume,
		coord:   page.NewCoordinator(page.Build(opts.Resume), opts.Timers, log, opts.Timing),
		watcher: reveal.NewWatcher(opts.RevealThreshold),
		md:      resume.NewMarkdown(),
		log:     log,
		tilts:   make(map[string]tilt.Transform),
	}
	s.observe()
	return s
}

// Coordinator exposes the page coordinator.
func (s *Screen) Coordinator() *page.Coordinator {
	return s.coord
}

func (s *Screen) observe() {
	s.watcher.Reset()
	for _, t := range s.coord.Targets() {
		s.watcher.Observe(t.ID)
	}
	s.log.Debug("observing reveal targets", zap.Strings("ids", s.watcher.Observed()))
}

func (s *Screen) Title() string {
	if sec, ok := s.coord.Active(); ok {
		return sec.Title
	}
	return ""
}

func (s *Screen) Init() tea.Cmd {
	var cmds []tea.Cmd
	if s.opts.Open != "" {
		cmds = append(cmds, s.coord.Activate(s.opts.Open))
	}
	cmds = append(cmds, s.coord.Start(), s.refresh())
	return tea.Batch(cmds...)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case screen.ResizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.resetTilts()

	case schedule.FiredMsg:
		cmd, _ = s.coord.Handle(msg)

	case page.TabClickMsg:
		cmd = s.coord.Click(msg)

	case tea.KeyPressMsg:
		cmd = s.handleKey(msg)

	case tea.MouseClickMsg:
		cmd = s.handleClick(msg.Mouse())

	case tea.MouseMotionMsg:
		s.handleMotion(msg.Mouse())

	case tea.MouseWheelMsg:
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			s.coord.Viewport.ScrollBy(-wheelStep)
		case tea.MouseWheelDown:
			s.coord.Viewport.ScrollBy(wheelStep)
		}

	case resume.ReloadedMsg:
		cmd = s.reload(msg)
	}

	return s, tea.Batch(cmd, s.refresh())
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	vp := s.coord.Viewport
	switch {
	case key.Matches(msg, page.Keys.Left):
		return s.coord.Step(page.Previous)
	case key.Matches(msg, page.Keys.Right):
		return s.coord.Step(page.Next)
	case key.Matches(msg, page.Keys.Up):
		vp.ScrollBy(-1)
	case key.Matches(msg, page.Keys.Down):
		vp.ScrollBy(1)
	case key.Matches(msg, page.Keys.PageUp):
		vp.ScrollBy(-max(1, vp.Height-1))
	case key.Matches(msg, page.Keys.PageDown):
		vp.ScrollBy(max(1, vp.Height-1))
	case key.Matches(msg, page.Keys.Reload):
		return s.reloadCmd()
	case key.Matches(msg, page.Keys.Help):
		helpScreen := help.New(s.opts.Theme)
		return func() tea.Msg { return router.PushScreenMsg{Screen: helpScreen} }
	}
	return nil
}

func (s *Screen) handleClick(m tea.Mouse) tea.Cmd {
	if m.Button != tea.MouseLeft || m.Y != 0 {
		return nil
	}
	index, origin, ok := s.tabBar().HitTest(m.X - contentLeft)
	if !ok {
		return nil
	}
	return s.coord.Click(page.TabClickMsg{Index: index, Origin: origin})
}

// handleMotion tilts the card under the pointer and resets the one the
// pointer just left.
func (s *Screen) handleMotion(m tea.Mouse) {
	if !s.opts.Tilt {
		return
	}
	x := m.X
	y := m.Y - bodyTop + s.coord.Viewport.Offset

	over := ""
	if m.Y >= bodyTop {
		for id, r := range s.doc.cards {
			if r.Contains(x, y) {
				over = id
				break
			}
		}
	}
	if s.hovered != "" && s.hovered != over {
		s.tilts[s.hovered] = tilt.Neutral()
	}
	s.hovered = over
	if over != "" {
		tr := tilt.Compute(s.doc.cards[over], float64(x), float64(y), s.opts.TiltDamping)
		s.tilts[over] = tr
		s.log.Debug("card tilted", zap.String("card", over), zap.String("transform", tr.CSS()))
	}
}

func (s *Screen) resetTilts() {
	for id := range s.tilts {
		s.tilts[id] = tilt.Neutral()
	}
	s.hovered = ""
}

// Tilt returns the transform currently applied to card id.
func (s *Screen) Tilt(id string) tilt.Transform {
	return s.tilts[id]
}

func (s *Screen) reloadCmd() tea.Cmd {
	path := s.opts.ResumePath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		r, err := resume.Load(path)
		return resume.ReloadedMsg{Resume: r, Err: err}
	}
}

func (s *Screen) reload(msg resume.ReloadedMsg) tea.Cmd {
	if msg.Err != nil || msg.Resume == nil {
		s.log.Warn("resume reload failed; keeping current content", zap.Error(msg.Err))
		return nil
	}
	s.resume = msg.Resume
	cmd := s.coord.Replace(page.Build(msg.Resume))
	s.observe()
	s.tilts = make(map[string]tilt.Transform)
	s.hovered = ""
	s.log.Info("resume reloaded", zap.Int("sections", len(msg.Resume.Sections)))
	return cmd
}

// refresh lays the document out, feeds the new geometry to the
// intersection watcher and reveals whatever entered the viewport.
func (s *Screen) refresh() tea.Cmd {
	if s.width == 0 || s.height == 0 {
		return nil
	}
	s.layout()

	vp := reveal.Span{Top: s.coord.Viewport.Offset, Height: s.coord.Viewport.Height}
	entered := s.watcher.Update(s.doc.spans, vp)
	if len(entered) == 0 {
		return nil
	}
	for _, o := range s.watcher.Observations(s.doc.spans, vp) {
		if slices.Contains(entered, o.ID) {
			s.log.Debug("element revealed", zap.String("id", o.ID), zap.Float64("ratio", o.Ratio))
		}
	}
	cmds := make([]tea.Cmd, 0, len(entered))
	for _, id := range entered {
		cmds = append(cmds, s.coord.Reveal(id))
	}
	s.layout()
	return tea.Batch(cmds...)
}

func (s *Screen) tabBar() components.TabBar {
	tabs := s.coord.Tabs()
	bar := components.TabBar{Tabs: make([]components.Tab, len(tabs))}
	for i, t := range tabs {
		bar.Tabs[i] = components.Tab{Label: t.Label, Active: t.Active}
		if r, ok := s.coord.Ripple(i); ok {
			bar.Tabs[i].Ripple = &components.RippleState{Origin: r.Origin, Radius: r.Radius()}
		}
	}
	return bar
}

func (s *Screen) View(width, height int) string {
	st := s.opts.Theme.Styles()
	tabs := s.tabBar().View(st)
	if !s.coord.Loaded() {
		tabs = lipgloss.NewStyle().Faint(true).Render(tabs)
	}

	vp := s.coord.Viewport
	start := min(vp.Offset, len(s.doc.lines))
	end := min(start+vp.Height, len(s.doc.lines))
	body := strings.Join(s.doc.lines[start:end], "\n")

	return lipgloss.NewStyle().
		PaddingLeft(contentLeft).
		Render(tabs + "\n\n" + body)
}

// KeyHints implements screen.KeyHintProvider.
func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Tabs"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "t", Description: "Theme"},
		{Key: "?", Description: "Help"},
		{Key: "q", Description: "Quit"},
	}
}
