package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Mode is the applied visual mode.
type Mode int

const (
	Light Mode = iota
	Dark
)

// String returns the persisted name of the mode.
func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// ParseMode maps a persisted value to a Mode. Anything other than
// "dark" or "light" is unrecognized.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "dark":
		return Dark, true
	case "light":
		return Light, true
	}
	return Light, false
}

// Palette is the set of colors every style is derived from.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// DarkPalette is deep navy with purple and teal highlights.
var DarkPalette = Palette{
	Primary:   lipgloss.Color("#8B5CF6"), // Vivid Purple
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#F97316"), // Orange
	Success:   lipgloss.Color("#22C55E"), // Green
	Text:      lipgloss.Color("#F8FAFC"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	Bg:        lipgloss.Color("#0F172A"), // Deep Navy
	BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	Border:    lipgloss.Color("#334155"), // Slate
}

// LightPalette is paper white with the same accent hues, darkened for contrast.
var LightPalette = Palette{
	Primary:   lipgloss.Color("#6D28D9"),
	Secondary: lipgloss.Color("#0F766E"),
	Accent:    lipgloss.Color("#C2410C"),
	Success:   lipgloss.Color("#15803D"),
	Text:      lipgloss.Color("#0F172A"),
	TextDim:   lipgloss.Color("#475569"),
	Bg:        lipgloss.Color("#F8FAFC"),
	BgCard:    lipgloss.Color("#E2E8F0"),
	Border:    lipgloss.Color("#CBD5E1"),
}

// PaletteFor returns the stock palette of m.
func PaletteFor(m Mode) Palette {
	if m == Dark {
		return DarkPalette
	}
	return LightPalette
}

// Blend mixes a toward b in Lab space. t is clamped to [0, 1].
func Blend(a, b Palette, t float64) Palette {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return Palette{
		Primary:   blend(a.Primary, b.Primary, t),
		Secondary: blend(a.Secondary, b.Secondary, t),
		Accent:    blend(a.Accent, b.Accent, t),
		Success:   blend(a.Success, b.Success, t),
		Text:      blend(a.Text, b.Text, t),
		TextDim:   blend(a.TextDim, b.TextDim, t),
		Bg:        blend(a.Bg, b.Bg, t),
		BgCard:    blend(a.BgCard, b.BgCard, t),
		Border:    blend(a.Border, b.Border, t),
	}
}

func blend(a, b color.Color, t float64) color.Color {
	ca, okA := colorful.MakeColor(a)
	cb, okB := colorful.MakeColor(b)
	if !okA || !okB {
		if t < 0.5 {
			return a
		}
		return b
	}
	return lipgloss.Color(ca.BlendLab(cb, t).Clamped().Hex())
}
