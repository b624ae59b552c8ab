// Package help is the key binding overlay.
package help

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vitae/internal/page"
	"github.com/abhisek/vitae/internal/router"
	"github.com/abhisek/vitae/internal/screen"
	"github.com/abhisek/vitae/internal/ui/layout"
	"github.com/abhisek/vitae/internal/ui/theme"
)

var closeKeys = key.NewBinding(
	key.WithKeys("esc", "?"),
	key.WithHelp("esc", "close"),
)

// Styler supplies the current styles.
type Styler interface {
	Styles() theme.Styles
}

// Screen lists every key binding.
type Screen struct {
	styler Styler
	help   help.Model
}

var _ screen.Screen = (*Screen)(nil)

func New(styler Styler) *Screen {
	h := help.New()
	h.ShowAll = true
	return &Screen{styler: styler, help: h}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Help" }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(msg, closeKeys) {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	st := s.styler.Styles()
	s.help.Styles.FullKey = st.Heading
	s.help.Styles.FullDesc = st.Body
	s.help.Styles.FullSeparator = st.Hint

	body := lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render("Keys"),
		"",
		s.help.FullHelpView(page.Keys.FullHelp()),
		"",
		st.Hint.Render("Click a tab to open it. Click the toggle in the header to switch themes."),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "esc", Description: "Close"}}
}
