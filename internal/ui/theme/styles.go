package theme

import (
	"charm.land/lipgloss/v2"
)

// Styles are the lipgloss styles derived from one Palette.
type Styles struct {
	Palette Palette

	// Typography
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
	Heading  lipgloss.Style

	// Layout
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
	// CardLifted is Card raised by a tilt.
	CardLifted lipgloss.Style
	// CardHidden is the pre-reveal state of a card.
	CardHidden lipgloss.Style

	// Components
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	TabActive      lipgloss.Style
	TabInactive    lipgloss.Style
	Ripple         lipgloss.Style
	Indicator      lipgloss.Style
}

// NewStyles derives the style set for p.
func NewStyles(p Palette) Styles {
	return Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.TextDim),

		Body: lipgloss.NewStyle().
			Foreground(p.Text),

		Hint: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Italic(true),

		Heading: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(p.BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),

		Footer: lipgloss.NewStyle().
			Background(p.BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),

		Card: lipgloss.NewStyle().
			Foreground(p.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 2),

		CardLifted: lipgloss.NewStyle().
			Foreground(p.Text).
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.Primary).
			Padding(0, 2),

		CardHidden: lipgloss.NewStyle().
			Foreground(p.Border).
			Border(lipgloss.HiddenBorder()).
			Padding(0, 2),

		ProgressFilled: lipgloss.NewStyle().
			Background(p.Secondary),

		ProgressEmpty: lipgloss.NewStyle().
			Background(p.Border),

		TabActive: lipgloss.NewStyle().
			Background(p.Primary).
			Foreground(p.Bg).
			Bold(true),

		TabInactive: lipgloss.NewStyle().
			Foreground(p.TextDim),

		Ripple: lipgloss.NewStyle().
			Background(p.Accent).
			Foreground(p.Bg).
			Bold(true),

		Indicator: lipgloss.NewStyle().
			Foreground(p.Accent),
	}
}
