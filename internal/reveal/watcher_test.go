package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	vp := Span{Top: 10, Height: 20}
	tests := []struct {
		name string
		el   Span
		want float64
	}{
		{"fully inside", Span{Top: 12, Height: 5}, 1},
		{"above", Span{Top: 0, Height: 10}, 0},
		{"below", Span{Top: 30, Height: 4}, 0},
		{"half past bottom", Span{Top: 28, Height: 4}, 0.5},
		{"clipped at top", Span{Top: 5, Height: 10}, 0.5},
		{"zero height", Span{Top: 15, Height: 0}, 0},
		{"taller than viewport", Span{Top: 0, Height: 40}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.el, vp), 1e-9)
		})
	}
}

func TestUpdateReportsCrossingOnce(t *testing.T) {
	w := NewWatcher(DefaultThreshold)
	w.Observe("card/0")
	geo := map[string]Span{"card/0": {Top: 30, Height: 10}}

	// Below the fold.
	assert.Empty(t, w.Update(geo, Span{Top: 0, Height: 20}))
	// 1 of 10 rows visible: exactly the threshold.
	assert.Equal(t, []string{"card/0"}, w.Update(geo, Span{Top: 11, Height: 20}))
	// Still inside: no new crossing.
	assert.Empty(t, w.Update(geo, Span{Top: 15, Height: 20}))
	assert.Empty(t, w.Update(geo, Span{Top: 25, Height: 20}))
}

func TestUpdateReentryReportsAgain(t *testing.T) {
	w := NewWatcher(0.1)
	w.Observe("timeline/0")
	geo := map[string]Span{"timeline/0": {Top: 0, Height: 4}}

	assert.Equal(t, []string{"timeline/0"}, w.Update(geo, Span{Top: 0, Height: 10}))
	assert.Empty(t, w.Update(geo, Span{Top: 20, Height: 10}))
	assert.Equal(t, []string{"timeline/0"}, w.Update(geo, Span{Top: 0, Height: 10}))
}

func TestUpdateMissingGeometryLeaves(t *testing.T) {
	w := NewWatcher(0.1)
	w.Observe("section/skills")
	vp := Span{Top: 0, Height: 10}

	assert.Equal(t, []string{"section/skills"}, w.Update(map[string]Span{"section/skills": {Height: 5}}, vp))
	assert.Empty(t, w.Update(map[string]Span{}, vp))
	assert.Equal(t, []string{"section/skills"}, w.Update(map[string]Span{"section/skills": {Height: 5}}, vp))
}

func TestUpdateOrderAndUnobserved(t *testing.T) {
	w := NewWatcher(0)
	w.Observe("b")
	w.Observe("a")
	w.Observe("b")
	geo := map[string]Span{
		"a":     {Top: 0, Height: 1},
		"b":     {Top: 1, Height: 1},
		"other": {Top: 0, Height: 1},
	}
	assert.Equal(t, []string{"b", "a"}, w.Update(geo, Span{Height: 5}))
	assert.Equal(t, []string{"b", "a"}, w.Observed())

	w.Reset()
	assert.Empty(t, w.Observed())
}

func TestObservations(t *testing.T) {
	w := NewWatcher(0.5)
	w.Observe("x")
	obs := w.Observations(map[string]Span{"x": {Top: 8, Height: 4}}, Span{Height: 10})
	assert.Len(t, obs, 1)
	assert.True(t, obs[0].Intersecting)
	assert.InDelta(t, 0.5, obs[0].Ratio, 1e-9)
}
