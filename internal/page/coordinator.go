package page

import (
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vitae/internal/schedule"
	"github.com/abhisek/vitae/internal/ui/components"
)

// Timer keys owned by the coordinator. Per-item keys append "<index>".
const (
	settleKey   = "skills-settle"
	skillKey    = "skill/"
	rippleKey   = "ripple/"
	entranceKey = "entrance/"
)

// Timing holds the coordinator's delays.
type Timing struct {
	SkillStagger  time.Duration
	SkillSettle   time.Duration
	// SkillInitial delays the fill when the skills section is active at load.
	SkillInitial  time.Duration
	Ripple        time.Duration
	// EntranceDelay precedes the staggered card entrance at load.
	EntranceDelay time.Duration
	CardStagger   time.Duration
	Frame         time.Duration
}

// Content is the page model the coordinator takes ownership of.
type Content struct {
	Sections []Section
	Skills   []SkillBar
	Targets  []RevealTarget
}

// TabClickMsg is a click on the tab button at Index, Origin cells from
// the button's left edge. The keyboard router synthesizes the same msg.
type TabClickMsg struct {
	Index  int
	Origin int
}

// Coordinator owns which section is active and the timed effects that
// follow an activation.
type Coordinator struct {
	timers *schedule.Timers
	log    *zap.Logger
	timing Timing

	sections []Section
	tabs     []TabButton
	skills   []SkillBar
	targets  []RevealTarget
	ripples  map[int]*Ripple
	loaded   bool

	Viewport *Viewport
}

// NewCoordinator takes ownership of content. Exactly one section is left
// active: the first one marked active, else the first section.
func NewCoordinator(content Content, timers *schedule.Timers, log *zap.Logger, timing Timing) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Coordinator{
		timers:   timers,
		log:      log,
		timing:   timing,
		ripples:  make(map[int]*Ripple),
		Viewport: NewViewport(timers, timing.Frame),
	}
	c.load(content, "")
	return c
}

// load installs content, keeping prefer active when it still exists.
func (c *Coordinator) load(content Content, prefer string) {
	c.sections = append([]Section(nil), content.Sections...)
	c.skills = append([]SkillBar(nil), content.Skills...)
	c.targets = append([]RevealTarget(nil), content.Targets...)
	c.tabs = make([]TabButton, len(c.sections))

	active := c.indexOf(prefer)
	if active < 0 {
		for i, s := range c.sections {
			if s.Active {
				active = i
				break
			}
		}
	}
	if active < 0 && len(c.sections) > 0 {
		active = 0
	}
	for i, s := range c.sections {
		c.sections[i].Active = i == active
		c.tabs[i] = TabButton{Target: s.ID, Label: s.Title, Active: i == active}
	}
	for i := range c.skills {
		if c.skills[i].Width == "" {
			c.skills[i].Width = ZeroWidth
		}
	}
}

// Start runs the page-load sequence: the page is marked loaded, then
// after EntranceDelay the cards enter one after another. If the skills
// section starts active its bars fill after SkillInitial.
func (c *Coordinator) Start() tea.Cmd {
	c.loaded = true

	var cmds []tea.Cmd
	n := 0
	for i, t := range c.targets {
		if t.Kind != KindCard {
			continue
		}
		delay := c.timing.EntranceDelay + time.Duration(n)*c.timing.CardStagger
		cmds = append(cmds, c.timers.After(entranceKey+strconv.Itoa(i), delay, i))
		n++
	}
	if s, ok := c.Active(); ok && s.ID == SkillsSection {
		cmds = append(cmds, c.timers.After(settleKey, c.timing.SkillInitial, nil))
	}
	return tea.Batch(cmds...)
}

// Replace swaps in new content, keeping the active section when it still
// exists. Pending per-item effects are cancelled.
func (c *Coordinator) Replace(content Content) tea.Cmd {
	prev := ""
	if s, ok := c.Active(); ok {
		prev = s.ID
	}
	c.timers.CancelPrefix(skillKey)
	c.timers.CancelPrefix(rippleKey)
	c.timers.CancelPrefix(entranceKey)
	c.timers.Cancel(settleKey)
	c.ripples = make(map[int]*Ripple)

	c.load(content, prev)
	for i := range c.targets {
		c.targets[i].Entered = true
	}
	if s, ok := c.Active(); ok && s.ID == SkillsSection {
		return c.RevealSkills()
	}
	return nil
}

// Click activates the section bound to the tab at index.
func (c *Coordinator) Click(msg TabClickMsg) tea.Cmd {
	if msg.Index < 0 || msg.Index >= len(c.tabs) {
		return nil
	}
	return c.activate(c.tabs[msg.Index].Target, msg.Index, msg.Origin)
}

// Activate makes section id the only active section. Activating the
// already-active section replays the whole sequence. An unknown id is
// ignored and the current section stays active.
func (c *Coordinator) Activate(id string) tea.Cmd {
	tab := -1
	for i, t := range c.tabs {
		if t.Target == id {
			tab = i
			break
		}
	}
	origin := 0
	if tab >= 0 {
		origin = components.TabCenter(c.tabs[tab].Label)
	}
	return c.activate(id, tab, origin)
}

func (c *Coordinator) activate(id string, tab, origin int) tea.Cmd {
	idx := c.indexOf(id)
	if idx < 0 {
		c.log.Debug("activate: no such section", zap.String("section", id))
		return nil
	}

	for i := range c.sections {
		c.sections[i].Active = false
	}
	for i := range c.tabs {
		c.tabs[i].Active = false
	}
	c.sections[idx].Active = true
	if tab < 0 {
		tab = idx
	}
	c.tabs[tab].Active = true
	c.log.Debug("section activated", zap.String("section", id))

	var cmds []tea.Cmd
	if id == SkillsSection {
		cmds = append(cmds, c.timers.After(settleKey, c.timing.SkillSettle, nil))
	}
	// Only the active section is laid out, so its top edge is row 0.
	cmds = append(cmds, c.Viewport.ScrollTo(0))
	cmds = append(cmds, c.startRipple(tab, origin))
	return tea.Batch(cmds...)
}

// RevealSkills fills every skill bar to its target width, bar i after
// i × SkillStagger. Fills already pending keep their schedule, so a
// repeated call never holds a bar back.
func (c *Coordinator) RevealSkills() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(c.skills))
	for i := range c.skills {
		key := skillKey + strconv.Itoa(i)
		if c.timers.Pending(key) {
			continue
		}
		cmds = append(cmds, c.timers.After(key, time.Duration(i)*c.timing.SkillStagger, i))
	}
	return tea.Batch(cmds...)
}

// Reveal marks the target id revealed. Revealing a section target (the
// skills section) also reveals the skill bars, unless a settle delay is
// already pending; the bars then fill when it elapses. Unknown ids are
// ignored.
func (c *Coordinator) Reveal(id string) tea.Cmd {
	for i := range c.targets {
		if c.targets[i].ID != id {
			continue
		}
		c.targets[i].Revealed = true
		c.targets[i].Reveals++
		if c.targets[i].Kind == KindSection && !c.timers.Pending(settleKey) {
			return c.RevealSkills()
		}
		return nil
	}
	return nil
}

func (c *Coordinator) startRipple(tab, origin int) tea.Cmd {
	frames := 1
	if c.timing.Frame > 0 {
		frames = max(1, int(c.timing.Ripple/c.timing.Frame))
	}
	c.ripples[tab] = &Ripple{Origin: origin, Frames: frames}
	return c.timers.After(rippleKey+strconv.Itoa(tab), c.timing.Frame, tab)
}

// Handle applies a fired timer. It reports false for keys the
// coordinator does not own.
func (c *Coordinator) Handle(msg schedule.FiredMsg) (tea.Cmd, bool) {
	switch {
	case msg.Key == settleKey,
		msg.Key == scrollKey,
		strings.HasPrefix(msg.Key, skillKey),
		strings.HasPrefix(msg.Key, rippleKey),
		strings.HasPrefix(msg.Key, entranceKey):
	default:
		return nil, false
	}
	if !c.timers.Accept(msg) {
		return nil, true
	}

	switch {
	case msg.Key == settleKey:
		return c.RevealSkills(), true
	case msg.Key == scrollKey:
		return c.Viewport.step(), true
	case strings.HasPrefix(msg.Key, skillKey):
		if i, ok := msg.Payload.(int); ok && i < len(c.skills) {
			c.skills[i].Width = c.skills[i].Target
		}
	case strings.HasPrefix(msg.Key, rippleKey):
		tab, _ := msg.Payload.(int)
		r, ok := c.ripples[tab]
		if !ok {
			return nil, true
		}
		r.Frame++
		if r.Frame >= r.Frames {
			delete(c.ripples, tab)
			return nil, true
		}
		return c.timers.After(msg.Key, c.timing.Frame, tab), true
	case strings.HasPrefix(msg.Key, entranceKey):
		if i, ok := msg.Payload.(int); ok && i < len(c.targets) {
			c.targets[i].Entered = true
		}
	}
	return nil, true
}

// Sections returns a copy of the sections in display order.
func (c *Coordinator) Sections() []Section {
	return append([]Section(nil), c.sections...)
}

// Tabs returns a copy of the tab buttons in display order.
func (c *Coordinator) Tabs() []TabButton {
	return append([]TabButton(nil), c.tabs...)
}

// Skills returns a copy of the skill bars in display order.
func (c *Coordinator) Skills() []SkillBar {
	return append([]SkillBar(nil), c.skills...)
}

// Targets returns a copy of the reveal targets.
func (c *Coordinator) Targets() []RevealTarget {
	return append([]RevealTarget(nil), c.targets...)
}

// Target returns the reveal target id.
func (c *Coordinator) Target(id string) (RevealTarget, bool) {
	for _, t := range c.targets {
		if t.ID == id {
			return t, true
		}
	}
	return RevealTarget{}, false
}

// Ripple returns the ripple playing on tab, if any.
func (c *Coordinator) Ripple(tab int) (Ripple, bool) {
	r, ok := c.ripples[tab]
	if !ok {
		return Ripple{}, false
	}
	return *r, true
}

// Active returns the active section.
func (c *Coordinator) Active() (Section, bool) {
	i := c.ActiveIndex()
	if i < 0 {
		return Section{}, false
	}
	return c.sections[i], true
}

// ActiveIndex returns the index of the active tab button, or -1.
func (c *Coordinator) ActiveIndex() int {
	for i, t := range c.tabs {
		if t.Active {
			return i
		}
	}
	return -1
}

// Loaded reports whether the page-load sequence has finished.
func (c *Coordinator) Loaded() bool {
	return c.loaded
}

func (c *Coordinator) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, s := range c.sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}
