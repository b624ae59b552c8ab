package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vitae/internal/ui/theme"
)

// Card is a bordered project card. A card reserves one blank row above
// itself; lifting moves that row below it.
type Card struct {
	Title string
	Body  string
	Tags  []string
	Width int

	Hidden bool // not yet revealed: drawn as a faint outline, offset down
	Dim    bool // revealed but its load entrance has not played yet
	Lifted bool
	Lean   int // -1, 0, 1: horizontal shift following the pointer tilt
}

// View renders the card.
func (c Card) View(st theme.Styles) string {
	style := st.Card
	switch {
	case c.Hidden:
		style = st.CardHidden
	case c.Lifted:
		style = st.CardLifted
	}
	if c.Dim && !c.Hidden {
		style = style.Foreground(st.Palette.TextDim)
	}

	inner := max(10, c.Width-2-2)
	lines := []string{st.Heading.Render(c.Title)}
	if c.Body != "" {
		lines = append(lines, lipgloss.NewStyle().Width(inner-4).Render(c.Body))
	}
	if len(c.Tags) > 0 {
		lines = append(lines, st.Hint.Render("#"+strings.Join(c.Tags, " #")))
	}
	content := strings.Join(lines, "\n")
	if c.Hidden {
		content = lipgloss.NewStyle().Foreground(st.Palette.Border).Render(stripToBlank(content))
	}

	box := style.Width(inner).Render(content)
	box = lipgloss.NewStyle().MarginLeft(1 + c.Lean).Render(box)

	if c.Lifted && !c.Hidden {
		return box + "\n"
	}
	return "\n" + box
}

// stripToBlank keeps the shape of s but blanks its text.
func stripToBlank(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.Repeat(" ", lipgloss.Width(l))
	}
	return strings.Join(lines, "\n")
}
