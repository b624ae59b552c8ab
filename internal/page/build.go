package page

import "github.com/abhisek/vitae/internal/resume"

// Build derives the page model from r. Reveal targets are numbered per
// kind across the whole document, and every section with skill bars is
// itself a reveal target so scrolling it into view fills the bars.
func Build(r *resume.Resume) Content {
	var c Content
	counts := make(map[Kind]int)
	add := func(k Kind, section string) {
		c.Targets = append(c.Targets, RevealTarget{ID: TargetID(k, counts[k]), Kind: k, Section: section})
		counts[k]++
	}

	for _, s := range r.Sections {
		title := s.Title
		if title == "" {
			title = s.ID
		}
		c.Sections = append(c.Sections, Section{ID: s.ID, Title: title, Active: s.Active})

		if s.ID == SkillsSection || len(s.Skills) > 0 {
			c.Targets = append(c.Targets, RevealTarget{ID: SectionTargetID(s.ID), Kind: KindSection, Section: s.ID})
		}
		for range s.Timeline {
			add(KindTimeline, s.ID)
		}
		for range s.Cards {
			add(KindCard, s.ID)
		}
		for _, sk := range s.Skills {
			c.Skills = append(c.Skills, SkillBar{Section: s.ID, Name: sk.Name, Target: sk.Level, Width: ZeroWidth})
		}
		for range s.Contacts {
			add(KindContact, s.ID)
		}
	}
	return c
}
