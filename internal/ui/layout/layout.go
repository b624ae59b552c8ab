package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vitae/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 16

	// HeaderHeight is the header box: border, one content row, border.
	HeaderHeight = 3
	FooterHeight = 3

	// MaxContentWidth caps the reading width on wide terminals.
	MaxContentWidth = 96
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the available height for screen content.
func ContentHeight(totalHeight int) int {
	h := totalHeight - HeaderHeight - FooterHeight
	if h < 0 {
		return 0
	}
	return h
}

// ContentWidth returns the reading width for a frame of the given width.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 4
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(st theme.Styles, width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(st.Palette.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// Header is the application header bar: the owner's name on the left,
// the screen title in the center and the theme toggle on the right.
type Header struct {
	Name      string
	Title     string
	Indicator theme.Indicator
}

func (h Header) toggleText() string {
	return h.Indicator.Glyph + " " + h.Indicator.Label
}

// View renders the header.
func (h Header) View(st theme.Styles, width int) string {
	left := st.Title.Render("  " + h.Name)
	center := st.Body.Render(h.Title)
	right := st.Indicator.Render(h.toggleText())

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := width - 4 // account for border padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}

	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	return st.Header.Width(width).Render(content)
}

// ToggleHit reports whether the cell (x, y), relative to the header's
// top-left corner, falls on the theme toggle.
func (h Header) ToggleHit(x, y, width int) bool {
	if y != 1 {
		return false
	}
	w := lipgloss.Width(h.toggleText())
	right := width - 3 // border plus trailing padding
	return x >= right-w && x < right
}

// RenderFooter renders the footer with key hints.
func RenderFooter(st theme.Styles, hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := st.Body.Bold(true).Render(h.Key) +
			" " +
			st.Subtitle.Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ")

	return st.Footer.Width(width).Render(content)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}
