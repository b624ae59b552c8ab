package viewer

import (
	"strings"

	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vitae/internal/page"
	"github.com/abhisek/vitae/internal/resume"
	"github.com/abhisek/vitae/internal/reveal"
	"github.com/abhisek/vitae/internal/tilt"
	"github.com/abhisek/vitae/internal/ui/components"
	"github.com/abhisek/vitae/internal/ui/layout"
	"github.com/abhisek/vitae/internal/ui/theme"
)

// document is the laid-out active section: its rendered lines and the
// rows every reveal target and card occupies.
type document struct {
	lines []string
	spans map[string]reveal.Span
	cards map[string]tilt.Rect
}

func newDocument() document {
	return document{
		spans: make(map[string]reveal.Span),
		cards: make(map[string]tilt.Rect),
	}
}

func (d *document) row() int { return len(d.lines) }

// add appends block and returns the span it occupies.
func (d *document) add(block string) reveal.Span {
	top := d.row()
	d.lines = append(d.lines, strings.Split(block, "\n")...)
	return reveal.Span{Top: top, Height: d.row() - top}
}

func (d *document) place(id, block string) reveal.Span {
	span := d.add(block)
	d.spans[id] = span
	return span
}

// layout renders the active section at the current width. Targets in
// inactive sections get no geometry, so the watcher treats them as out
// of view.
func (s *Screen) layout() {
	st := s.opts.Theme.Styles()
	dark := s.opts.Theme.Mode() == theme.Dark
	width := layout.ContentWidth(s.width)
	active, _ := s.coord.Active()

	doc := newDocument()
	counts := make(map[page.Kind]int)
	next := func(k page.Kind) (string, page.RevealTarget) {
		id := page.TargetID(k, counts[k])
		counts[k]++
		t, _ := s.coord.Target(id)
		return id, t
	}

	for _, sec := range s.resume.Sections {
		if sec.ID != active.ID {
			counts[page.KindTimeline] += len(sec.Timeline)
			counts[page.KindCard] += len(sec.Cards)
			counts[page.KindContact] += len(sec.Contacts)
			continue
		}
		start := doc.row()
		doc.add(st.Title.Render(active.Title))
		doc.add("")

		if sec.About != "" {
			doc.add(s.about(sec.About, dark, width))
		}
		for _, e := range sec.Timeline {
			id, t := next(page.KindTimeline)
			doc.place(id, components.TimelineItem{
				Title:   e.Title,
				Org:     e.Org,
				Period:  e.Period,
				Summary: e.Summary,
				Width:   width,
				Hidden:  !t.Revealed,
			}.View(st))
		}
		for _, c := range sec.Cards {
			id, t := next(page.KindCard)
			tr := s.tilts[id]
			out := components.Card{
				Title:  c.Title,
				Body:   c.Summary,
				Tags:   c.Tags,
				Width:  width,
				Hidden: !t.Revealed,
				Dim:    !t.Entered,
				Lifted: !tr.IsNeutral(),
				Lean:   tr.Lean(),
			}.View(st)
			span := doc.place(id, out)
			doc.cards[id] = tilt.Rect{X: contentLeft, Y: span.Top, W: lipgloss.Width(out), H: span.Height}
		}
		s.skillBars(&doc, st, sec, width)
		for _, c := range sec.Contacts {
			id, t := next(page.KindContact)
			doc.place(id, components.ContactItem{Label: c.Label, Value: c.Value, Hidden: !t.Revealed}.View(st))
		}

		doc.spans[page.SectionTargetID(sec.ID)] = reveal.Span{Top: start, Height: doc.row() - start}
	}

	s.doc = doc
	s.coord.Viewport.Resize(max(0, s.height-bodyTop), doc.row())
}

func (s *Screen) skillBars(doc *document, st theme.Styles, sec resume.Section, width int) {
	var bars []page.SkillBar
	labelWidth := 0
	for _, b := range s.coord.Skills() {
		if b.Section == sec.ID {
			bars = append(bars, b)
			labelWidth = max(labelWidth, lipgloss.Width(b.Name))
		}
	}
	for _, b := range bars {
		doc.add(components.SkillBar{
			Label:      b.Name,
			Fill:       b.Width,
			LabelWidth: labelWidth,
			Width:      width,
		}.View(st))
	}
	if len(bars) > 0 {
		doc.add("")
	}
}

func (s *Screen) about(md string, dark bool, width int) string {
	out, err := s.md.Render(md, dark, width)
	if err != nil {
		s.log.Debug("markdown render failed; showing plain text", zap.Error(err))
		return lipgloss.NewStyle().Width(width).Render(md) + "\n"
	}
	return strings.TrimRight(out, "\n") + "\n"
}
