// Package page holds the résumé page model and the coordinator that owns
// tab activation and the animations tied to it.
package page

import "fmt"

// SkillsSection is the id of the section whose activation reveals the
// skill bars.
const SkillsSection = "skills"

// ZeroWidth is the rendered width of a skill bar before its reveal.
const ZeroWidth = "0%"

// Section is a content panel shown only while its tab is active.
type Section struct {
	ID     string
	Title  string
	Active bool
}

// TabButton selects the section named by Target.
type TabButton struct {
	Target string
	Label  string
	Active bool
}

// SkillBar fills to Target when revealed. Width is the currently rendered
// width; both are kept as the strings given in content, e.g. "83%".
type SkillBar struct {
	Section string
	Name    string
	Target  string
	Width   string
}

// Kind classifies reveal-on-scroll targets.
type Kind int

const (
	KindCard Kind = iota
	KindTimeline
	KindContact
	KindSection
)

func (k Kind) String() string {
	switch k {
	case KindCard:
		return "card"
	case KindTimeline:
		return "timeline"
	case KindContact:
		return "contact"
	case KindSection:
		return "section"
	}
	return "unknown"
}

// TargetID builds the id of the index-th reveal target of kind k.
func TargetID(k Kind, index int) string {
	return fmt.Sprintf("%s/%d", k, index)
}

// SectionTargetID is the reveal id of a whole section.
func SectionTargetID(id string) string {
	return "section/" + id
}

// RevealTarget is an element that starts hidden and offset and is
// revealed when it scrolls into view.
type RevealTarget struct {
	ID       string
	Kind     Kind
	Section  string
	Revealed bool
	// Entered is set by the staggered entrance on load (cards only).
	Entered bool
	// Reveals counts how many times the element has been revealed.
	Reveals int
}

// Ripple is a transient expanding highlight inside a tab button.
type Ripple struct {
	Origin int // column inside the button where it started
	Frame  int
	Frames int
}

// Radius returns how far the ripple has spread, in cells.
func (r Ripple) Radius() int {
	return r.Frame + 1
}
