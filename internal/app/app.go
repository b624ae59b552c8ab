package app

import (
	"context"
	"fmt"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vitae/internal/config"
	"github.com/abhisek/vitae/internal/page"
	"github.com/abhisek/vitae/internal/resume"
	"github.com/abhisek/vitae/internal/router"
	"github.com/abhisek/vitae/internal/schedule"
	"github.com/abhisek/vitae/internal/screen"
	"github.com/abhisek/vitae/internal/screens/viewer"
	"github.com/abhisek/vitae/internal/store"
	"github.com/abhisek/vitae/internal/ui/layout"
	"github.com/abhisek/vitae/internal/ui/theme"
)

// Options holds dependencies injected into the app.
type Options struct {
	Resume *resume.Resume
	// ResumePath is the file Resume was loaded from. Empty means the
	// built-in sample, which can be neither reloaded nor watched.
	ResumePath string
	// Open names the section to show first.
	Open string

	Config *config.Config
	Prefs  store.PreferenceRepo
	Log    *zap.Logger

	// Timers overrides the timer registry, for tests.
	Timers *schedule.Timers
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	theme  *theme.Controller
	log    *zap.Logger
	name   string
	width  int
	height int
}

// newAppModel creates the root model with the viewer screen and applies
// the persisted theme.
func newAppModel(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	prefs := opts.Prefs
	if prefs == nil {
		prefs = store.NewMemoryPreferences()
	}
	timers := opts.Timers
	if timers == nil {
		timers = schedule.New()
	}
	r := opts.Resume
	if r == nil {
		r = resume.Default()
	}

	ctrl := theme.NewController(prefs, timers, log, cfg.Timing.ThemeTransition, cfg.Timing.Frame)
	mode := ctrl.InitialTheme(context.Background())
	log.Info("starting", zap.String("theme", mode.String()), zap.Int("sections", len(r.Sections)))

	home := viewer.New(viewer.Options{
		Resume:     r,
		ResumePath: opts.ResumePath,
		Open:       opts.Open,
		Theme:      ctrl,
		Timers:     timers,
		Log:        log,
		Timing: page.Timing{
			SkillStagger:  cfg.Timing.SkillStagger,
			SkillSettle:   cfg.Timing.SkillSettle,
			SkillInitial:  cfg.Timing.SkillInitial,
			Ripple:        cfg.Timing.Ripple,
			EntranceDelay: cfg.Timing.EntranceDelay,
			CardStagger:   cfg.Timing.CardStagger,
			Frame:         cfg.Timing.Frame,
		},
		Tilt:            cfg.Effects.Tilt,
		TiltDamping:     cfg.Effects.TiltDamping,
		RevealThreshold: cfg.Effects.RevealThreshold,
	})

	return AppModel{
		router: router.New(home),
		theme:  ctrl,
		log:    log,
		name:   r.Name,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Broadcast(screen.ResizeMsg{
			Width:  m.width,
			Height: layout.ContentHeight(m.height),
		})

	case schedule.FiredMsg:
		if msg.Key == theme.TimerKey {
			return m, m.theme.HandleFrame(msg)
		}
		return m, m.router.Broadcast(msg)

	case resume.ReloadedMsg:
		if msg.Resume != nil {
			m.name = msg.Resume.Name
		}
		return m, m.router.Broadcast(msg)

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, page.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, page.Keys.Theme):
			return m, m.toggleTheme()
		case msg.String() == "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button == tea.MouseLeft && m.header().ToggleHit(mouse.X, mouse.Y, m.width) {
			return m, m.toggleTheme()
		}
		if mouse.Y < layout.HeaderHeight {
			return m, nil
		}
		mouse.Y -= layout.HeaderHeight
		return m, m.router.Update(tea.MouseClickMsg(mouse))

	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		mouse.Y -= layout.HeaderHeight
		return m, m.router.Update(tea.MouseMotionMsg(mouse))

	case tea.MouseWheelMsg:
		mouse := msg.Mouse()
		mouse.Y -= layout.HeaderHeight
		return m, m.router.Update(tea.MouseWheelMsg(mouse))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) toggleTheme() tea.Cmd {
	mode, cmd := m.theme.Toggle(context.Background())
	m.log.Debug("theme toggled", zap.String("theme", mode.String()))
	return cmd
}

func (m AppModel) header() layout.Header {
	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}
	return layout.Header{
		Name:      m.name,
		Title:     title,
		Indicator: m.theme.Indicator(),
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	v.WindowTitle = m.name

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.BackgroundColor = m.theme.Palette().Bg
	v.SetContent(m.render())
	return v
}

// render draws the frame: header, active screen and footer.
func (m AppModel) render() string {
	st := m.theme.Styles()
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(st, m.width, m.height)
	}

	header := m.header().View(st, m.width)

	var footerHints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "q", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(st, footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program. When the résumé came from a file and
// watching is enabled, edits to it are pushed into the running program.
func Run(opts Options) error {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	p := tea.NewProgram(newAppModel(opts))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if opts.ResumePath != "" && (opts.Config == nil || opts.Config.Watch) {
		err := resume.Watch(ctx, opts.ResumePath, opts.Log, func(r *resume.Resume, err error) {
			p.Send(resume.ReloadedMsg{Resume: r, Err: err})
		})
		if err != nil {
			opts.Log.Warn("resume watch disabled", zap.Error(err))
		}
	}

	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
