package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vitae/internal/ui/theme"
)

// tabPad is the blank padding on each side of a tab label.
const tabPad = 2

// RippleState is a ripple spreading from Origin, Radius cells wide.
type RippleState struct {
	Origin int
	Radius int
}

// Tab is one button of the tab bar.
type Tab struct {
	Label  string
	Active bool
	Ripple *RippleState
}

// Width returns the rendered width of the tab.
func (t Tab) Width() int {
	return lipgloss.Width(t.Label) + 2*tabPad
}

// TabCenter returns the column at the middle of a tab labelled label,
// counted from the tab's left edge.
func TabCenter(label string) int {
	return tabPad + lipgloss.Width(label)/2
}

// View renders the tab. Cells within the ripple radius of its origin are
// drawn with the ripple style.
func (t Tab) View(st theme.Styles) string {
	base := st.TabInactive
	if t.Active {
		base = st.TabActive
	}
	text := []rune(strings.Repeat(" ", tabPad) + t.Label + strings.Repeat(" ", tabPad))
	if t.Ripple == nil {
		return base.Render(string(text))
	}

	var b strings.Builder
	for i, r := range text {
		d := i - t.Ripple.Origin
		if d < 0 {
			d = -d
		}
		if d < t.Ripple.Radius {
			b.WriteString(st.Ripple.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// TabBar is a horizontal row of tabs separated by a single space.
type TabBar struct {
	Tabs []Tab
}

// View renders the bar.
func (b TabBar) View(st theme.Styles) string {
	parts := make([]string, 0, len(b.Tabs))
	for _, t := range b.Tabs {
		parts = append(parts, t.View(st))
	}
	return strings.Join(parts, " ")
}

// HitTest maps column x, relative to the bar's left edge, to the tab
// under it and the column inside that tab.
func (b TabBar) HitTest(x int) (index, origin int, ok bool) {
	left := 0
	for i, t := range b.Tabs {
		w := t.Width()
		if x >= left && x < left+w {
			return i, x - left, true
		}
		left += w + 1
	}
	return -1, 0, false
}
