package components

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vitae/internal/ui/theme"
)

// SkillBar displays a horizontal bar filled to a percentage string.
type SkillBar struct {
	Label      string
	Fill       string // rendered width, e.g. "83%"
	LabelWidth int
	Width      int
}

// ParsePercent converts "83%" to 0.83. Malformed values are 0; values
// are clamped to [0, 1].
func ParsePercent(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil || !strings.HasSuffix(s, "%") {
		return 0
	}
	return min(1, max(0, n/100))
}

// View renders the bar: label, filled and empty cells, then the width.
func (b SkillBar) View(st theme.Styles) string {
	label := st.Body.Width(b.LabelWidth).Render(b.Label) + "  "
	suffix := st.Subtitle.Render("  " + lipgloss.NewStyle().Width(4).Align(lipgloss.Right).Render(b.Fill))

	barWidth := b.Width - lipgloss.Width(label) - lipgloss.Width(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * ParsePercent(b.Fill))
	filled = min(max(filled, 0), barWidth)

	return label +
		st.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		st.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		suffix
}
