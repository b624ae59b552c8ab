package components

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/vitae/internal/ui/theme"
)

// hiddenOffset is how far an unrevealed entry sits to the right of its
// resting position.
const hiddenOffset = 4

// TimelineItem is one dated entry in the experience timeline.
type TimelineItem struct {
	Title   string
	Org     string
	Period  string
	Summary string
	Width   int
	Hidden  bool
}

// View renders the entry: a bullet line and an indented summary.
func (t TimelineItem) View(st theme.Styles) string {
	head := st.Heading.Render("● "+t.Title) + st.Body.Render(" · "+t.Org)
	period := st.Subtitle.Render(t.Period)
	gap := max(1, t.Width-lipgloss.Width(head)-lipgloss.Width(period)-hiddenOffset)
	line := head + lipgloss.NewStyle().Width(gap).Render("") + period

	summary := lipgloss.NewStyle().
		Foreground(st.Palette.Text).
		PaddingLeft(2).
		Width(max(10, t.Width-hiddenOffset)).
		Render(t.Summary)

	out := line + "\n" + summary + "\n"
	return reveal(st, out, t.Hidden)
}

// ContactItem is a label and value on one line.
type ContactItem struct {
	Label  string
	Value  string
	Hidden bool
}

// View renders the contact.
func (c ContactItem) View(st theme.Styles) string {
	out := st.Subtitle.Width(12).Render(c.Label) + st.Title.Render(c.Value)
	return reveal(st, out, c.Hidden)
}

// reveal draws s faded and shifted right while hidden, in place otherwise.
func reveal(st theme.Styles, s string, hidden bool) string {
	if hidden {
		return lipgloss.NewStyle().
			PaddingLeft(hiddenOffset).
			Foreground(st.Palette.Border).
			Render(lipgloss.NewStyle().Faint(true).Render(ansi.Strip(s)))
	}
	return s
}
