package page

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vitae/internal/schedule"
	"github.com/abhisek/vitae/internal/schedule/schedtest"
)

var testTiming = Timing{
	SkillStagger:  100 * time.Millisecond,
	SkillSettle:   300 * time.Millisecond,
	SkillInitial:  500 * time.Millisecond,
	Ripple:        600 * time.Millisecond,
	EntranceDelay: 200 * time.Millisecond,
	CardStagger:   100 * time.Millisecond,
	Frame:         50 * time.Millisecond,
}

func testContent() Content {
	return Content{
		Sections: []Section{
			{ID: "about", Title: "About"},
			{ID: "projects", Title: "Projects"},
			{ID: SkillsSection, Title: "Skills"},
		},
		Skills: []SkillBar{
			{Section: SkillsSection, Name: "Go", Target: "83%"},
			{Section: SkillsSection, Name: "SQL", Target: "50%"},
			{Section: SkillsSection, Name: "Shell", Target: "100%"},
		},
		Targets: []RevealTarget{
			{ID: "card/0", Kind: KindCard, Section: "projects"},
			{ID: "card/1", Kind: KindCard, Section: "projects"},
			{ID: "section/skills", Kind: KindSection, Section: SkillsSection},
		},
	}
}

func newTestCoordinator(t *testing.T, content Content) (*Coordinator, *schedtest.Clock) {
	t.Helper()
	clock := &schedtest.Clock{}
	timers := schedule.NewWithTick(clock.Tick)
	return NewCoordinator(content, timers, nil, testTiming), clock
}

// advance moves virtual time forward and feeds every due timer to c.
func advance(t *testing.T, c *Coordinator, clock *schedtest.Clock, d time.Duration) {
	t.Helper()
	clock.Advance(d, func(msg tea.Msg) {
		fired, ok := msg.(schedule.FiredMsg)
		require.True(t, ok, "unexpected message %T", msg)
		c.Handle(fired)
	})
}

func widths(c *Coordinator) []string {
	var out []string
	for _, s := range c.Skills() {
		out = append(out, s.Width)
	}
	return out
}

func assertSingleActive(t *testing.T, c *Coordinator) {
	t.Helper()
	activeSections, activeTabs := 0, 0
	var sectionID, tabTarget string
	for _, s := range c.Sections() {
		if s.Active {
			activeSections++
			sectionID = s.ID
		}
	}
	for _, b := range c.Tabs() {
		if b.Active {
			activeTabs++
			tabTarget = b.Target
		}
	}
	require.Equal(t, 1, activeSections, "active sections")
	require.Equal(t, 1, activeTabs, "active tabs")
	require.Equal(t, sectionID, tabTarget)
}

func TestInitialActive(t *testing.T) {
	c, _ := newTestCoordinator(t, testContent())
	assertSingleActive(t, c)
	s, _ := c.Active()
	assert.Equal(t, "about", s.ID)

	content := testContent()
	content.Sections[1].Active = true
	content.Sections[2].Active = true
	c, _ = newTestCoordinator(t, content)
	assertSingleActive(t, c)
	s, _ = c.Active()
	assert.Equal(t, "projects", s.ID)
}

func TestEmptyContent(t *testing.T) {
	c, _ := newTestCoordinator(t, Content{})
	assert.Equal(t, -1, c.ActiveIndex())
	assert.Nil(t, c.Activate("about"))
	assert.Nil(t, c.Step(Next))
}

func TestSkillBarsStartAtZero(t *testing.T) {
	c, _ := newTestCoordinator(t, testContent())
	assert.Equal(t, []string{"0%", "0%", "0%"}, widths(c))
}

func TestClickSequenceKeepsOneActive(t *testing.T) {
	c, clock := newTestCoordinator(t, testContent())
	for _, i := range []int{2, 0, 0, 1, 2, 2, 1, 0, 5, -1} {
		c.Click(TabClickMsg{Index: i, Origin: 1})
		assertSingleActive(t, c)
		advance(t, c, clock, 30*time.Millisecond)
	}
	assert.Equal(t, 0, c.ActiveIndex())
}

func TestActivateUnknownKeepsPrevious(t *testing.T) {
	c, _ := newTestCoordinator(t, testContent())
	c.Activate("projects")
	assert.Nil(t, c.Activate("publications"))
	assertSingleActive(t, c)
	s, _ := c.Active()
	assert.Equal(t, "projects", s.ID)
}

func TestActivateSkillsRevealsAfterSettle(t *testing.T) {
	c, clock := newTestCoordinator(t, testContent())
	c.Click(TabClickMsg{Index: 2})

	advance(t, c, clock, 299*time.Millisecond)
	assert.Equal(t, []string{"0%", "0%", "0%"}, widths(c), "bars must wait for layout to settle")

	advance(t, c, clock, time.Millisecond)
	assert.Equal(t, []string{"83%", "0%", "0%"}, widths(c))

	advance(t, c, clock, 100*time.Millisecond)
	assert.Equal(t, []string{"83%", "50%", "0%"}, widths(c))

	advance(t, c, clock, 100*time.Millisecond)
	assert.Equal(t, []string{"83%", "50%", "100%"}, widths(c))
}

func TestActivateOtherSectionLeavesBars(t *testing.T) {
	c, clock := newTestCoordinator(t, testContent())
	c.Activate("projects")
	advance(t, c, clock, 2*time.Second)
	assert.Equal(t, []string{"0%", "0%", "0%"}, widths(c))
}

func TestSkillsRevealSameForEveryTrigger(t *testing.T) {
	want := []string{"83%", "50%", "100%"}
	triggers := map[string]func(c *Coordinator){
		"click":     func(c *Coordinator) { c.Click(TabClickMsg{Index: 2, Origin: 3}) },
		"keyboard":  func(c *Coordinator) { c.Activate("projects"); c.Step(Next) },
		"intersect": func(c *Coordinator) { c.Reveal(SectionTargetID(SkillsSection)) },
		"activate":  func(c *Coordinator) { c.Activate(SkillsSection) },
	}
	for name, trigger := range triggers {
		t.Run(name, func(t *testing.T) {
			c, clock := newTestCoordinator(t, testContent())
			trigger(c)
			advance(t, c, clock, time.Second)
			assert.Equal(t, want, widths(c))
		})
	}
}

func TestRevealSkillsReentrant(t *testing.T) {
	c, clock := newTestCoordinator(t, testContent())

	c.RevealSkills()
	advance(t, c, clock, 150*time.Millisecond)
	assert.Equal(t, []string{"83%", "50%", "0%"}, widths(c))

	// A second trigger while bar 2 is pending leaves it on schedule.
	c.Activate(SkillsSection)
	c.Reveal(SectionTargetID(SkillsSection))
	advance(t, c, clock, time.Second)
	assert.Equal(t, []string{"83%", "50%", "100%"}, widths(c))
	assert.Equal(t, 0, clock.Len())
}

func TestRippleSelfRemoves(t *testing.T) {
	c, clock := newTestCoordinator(t, testContent())
	c.Click(TabClickMsg{Index: 1, Origin: 4})

	r, ok := c.Ripple(1)
	require.True(t, ok)
	assert.Equal(t, 4, r.Origin)
	assert.Equal(t, 12, r.Frames)

	advance(t, c, clock, 300*time.Millisecond)
	r, ok = c.Ripple(1)
	require.True(t, ok)
	assert.Equal(t, 6, r.Frame)

	advance(t, c, clock, 300*time.Millisecond)
	_, ok = c.Ripple(1)
	assert.False(t, ok)
}

func TestRippleRestartsOnReclick(t *testing.T) {
	c, clock := newTestCoordinator(t, testContent())
	c.Click(TabClickMsg{Index: 0, Origin: 1})
	advance(t, c, clock, 500*time.Millisecond)
	c.Click(TabClickMsg{Index: 0, Origin: 5})

	advance(t, c, clock, 200*time.Millisecond)
	r, ok := c.Ripple(0)
	require.True(t, ok, "restarted ripple must outlive the first one")
	assert.Equal(t, 5, r.Origin)
}

func TestStartLoadsThenStaggersCards(t *testing.T) {
	c, clock := newTestCoordinator(t, testContent())
	assert.False(t, c.Loaded())
	c.Start()
	assert.True(t, c.Loaded())

	advance(t, c, clock, 199*time.Millisecond)
	card0, _ := c.Target("card/0")
	assert.False(t, card0.Entered, "entrance waits for the load delay")

	advance(t, c, clock, time.Millisecond)
	card0, _ = c.Target("card/0")
	card1, _ := c.Target("card/1")
	assert.True(t, card0.Entered)
	assert.False(t, card1.Entered)

	advance(t, c, clock, 100*time.Millisecond)
	card1, _ = c.Target("card/1")
	assert.True(t, card1.Entered)
}

func TestStartWithSkillsActive(t *testing.T) {
	content := testContent()
	content.Sections[2].Active = true
	c, clock := newTestCoordinator(t, content)
	c.Start()
	// Already on screen: the intersection report must not fill early.
	c.Reveal(SectionTargetID(SkillsSection))

	advance(t, c, clock, 499*time.Millisecond)
	assert.Equal(t, []string{"0%", "0%", "0%"}, widths(c))

	advance(t, c, clock, time.Second)
	assert.Equal(t, []string{"83%", "50%", "100%"}, widths(c))
}

func TestSettleThenIntersectionFillsOnSchedule(t *testing.T) {
	c, clock := newTestCoordinator(t, testContent())
	start := clock.Now()
	filled := make(map[int]time.Duration)

	// A click on Skills and the section entering view land in one update.
	c.Activate(SkillsSection)
	c.Reveal(SectionTargetID(SkillsSection))

	clock.Advance(2*time.Second, func(msg tea.Msg) {
		fired, ok := msg.(schedule.FiredMsg)
		require.True(t, ok)
		c.Handle(fired)
		for i, b := range c.Skills() {
			if _, seen := filled[i]; !seen && b.Width == b.Target {
				filled[i] = clock.Now() - start
			}
		}
	})

	assert.Equal(t, map[int]time.Duration{
		0: 300 * time.Millisecond,
		1: 400 * time.Millisecond,
		2: 500 * time.Millisecond,
	}, filled)
}

func TestRepeatedRevealKeepsPendingFills(t *testing.T) {
	c, clock := newTestCoordinator(t, testContent())
	c.RevealSkills()
	advance(t, c, clock, 50*time.Millisecond)
	c.RevealSkills()

	advance(t, c, clock, 50*time.Millisecond)
	assert.Equal(t, []string{"83%", "50%", "0%"}, widths(c), "bar 1 keeps its original slot")
}

func TestRevealCountsEachCrossing(t *testing.T) {
	c, _ := newTestCoordinator(t, testContent())
	c.Reveal("card/1")
	c.Reveal("card/1")
	c.Reveal("missing")
	card, _ := c.Target("card/1")
	assert.True(t, card.Revealed)
	assert.Equal(t, 2, card.Reveals)
}

func TestReplaceKeepsActiveSection(t *testing.T) {
	c, clock := newTestCoordinator(t, testContent())
	c.Activate("projects")

	content := testContent()
	content.Sections = append([]Section{{ID: "intro", Title: "Intro", Active: true}}, content.Sections...)
	c.Replace(content)
	assertSingleActive(t, c)
	s, _ := c.Active()
	assert.Equal(t, "projects", s.ID)

	content.Sections = content.Sections[:1]
	c.Replace(content)
	s, _ = c.Active()
	assert.Equal(t, "intro", s.ID)

	advance(t, c, clock, time.Second)
	assertSingleActive(t, c)
}

func TestHandleIgnoresForeignKeys(t *testing.T) {
	c, _ := newTestCoordinator(t, testContent())
	_, handled := c.Handle(schedule.FiredMsg{Key: "theme/transition"})
	assert.False(t, handled)
}
