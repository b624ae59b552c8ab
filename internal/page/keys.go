package page

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vitae/internal/ui/components"
)

// KeyMap holds the page key bindings.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Theme    key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// Keys is the default key map.
var Keys = KeyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "previous tab"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next tab"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "space"),
		key.WithHelp("PgDn", "page down"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle theme"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Theme, k.Reload, k.Help, k.Quit},
	}
}

// Direction is an arrow-key step across the tab row.
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// AdjacentTab returns the index one step from active in dir. It reports
// false when that step would leave [0, count-1] or nothing is active.
func AdjacentTab(active, count int, dir Direction) (int, bool) {
	if active < 0 || active >= count {
		return active, false
	}
	next := active + int(dir)
	if next < 0 || next >= count {
		return active, false
	}
	return next, true
}

// Step synthesizes the click on the tab adjacent to the active one, so
// keyboard navigation runs the full activation sequence.
func (c *Coordinator) Step(dir Direction) tea.Cmd {
	next, ok := AdjacentTab(c.ActiveIndex(), len(c.tabs), dir)
	if !ok {
		return nil
	}
	return c.Click(TabClickMsg{Index: next, Origin: components.TabCenter(c.tabs[next].Label)})
}
