package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjacentTab(t *testing.T) {
	tests := []struct {
		name   string
		active int
		count  int
		dir    Direction
		want   int
		ok     bool
	}{
		{"next", 0, 3, Next, 1, true},
		{"previous", 2, 3, Previous, 1, true},
		{"left at first", 0, 3, Previous, 0, false},
		{"right at last", 2, 3, Next, 2, false},
		{"single tab", 0, 1, Next, 0, false},
		{"nothing active", -1, 3, Next, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AdjacentTab(tt.active, tt.count, tt.dir)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestStepStaysInRange(t *testing.T) {
	c, _ := newTestCoordinator(t, testContent())

	assert.Nil(t, c.Step(Previous))
	assert.Equal(t, 0, c.ActiveIndex())

	c.Step(Next)
	c.Step(Next)
	assert.Equal(t, 2, c.ActiveIndex())

	assert.Nil(t, c.Step(Next))
	assert.Equal(t, 2, c.ActiveIndex())
	assertSingleActive(t, c)
}

func TestStepStartsRipple(t *testing.T) {
	c, _ := newTestCoordinator(t, testContent())
	c.Step(Next)
	r, ok := c.Ripple(1)
	assert.True(t, ok)
	// Two cells of padding, then half of the eight-cell label.
	assert.Equal(t, 6, r.Origin)
}

func TestActivateCentersRippleOnWideLabel(t *testing.T) {
	c, _ := newTestCoordinator(t, Content{Sections: []Section{
		{ID: "about", Title: "About"},
		{ID: "cv", Title: "Résumé"},
	}})
	c.Activate("cv")
	r, ok := c.Ripple(1)
	assert.True(t, ok)
	assert.Equal(t, 5, r.Origin, "origin counts cells, not bytes")
}
