// Package reveal watches laid-out elements against the viewport and
// reports when each one enters it.
package reveal

// DefaultThreshold is the visible fraction at which an element counts as
// having entered the viewport.
const DefaultThreshold = 0.1

// Span is a vertical extent in document rows.
type Span struct {
	Top, Height int
}

// Bottom returns the first row below s.
func (s Span) Bottom() int {
	return s.Top + s.Height
}

// Observation is the visibility of one element after a geometry update.
type Observation struct {
	ID           string
	Ratio        float64
	Intersecting bool
}

// Watcher tracks which observed elements are currently past the
// threshold. Only crossings are reported, never steady state.
type Watcher struct {
	threshold float64
	order     []string
	inside    map[string]bool
}

// NewWatcher returns a Watcher. A threshold outside (0, 1] uses
// DefaultThreshold.
func NewWatcher(threshold float64) *Watcher {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Watcher{
		threshold: threshold,
		inside:    make(map[string]bool),
	}
}

// Observe registers id. Registering twice is a no-op.
func (w *Watcher) Observe(id string) {
	if _, ok := w.inside[id]; ok {
		return
	}
	w.order = append(w.order, id)
	w.inside[id] = false
}

// Observed returns the registered ids in registration order.
func (w *Watcher) Observed() []string {
	return append([]string(nil), w.order...)
}

// Reset forgets every registration.
func (w *Watcher) Reset() {
	w.order = nil
	w.inside = make(map[string]bool)
}

// Ratio returns the fraction of el visible inside viewport.
func Ratio(el, viewport Span) float64 {
	if el.Height <= 0 || viewport.Height <= 0 {
		return 0
	}
	top := max(el.Top, viewport.Top)
	bottom := min(el.Bottom(), viewport.Bottom())
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(el.Height)
}

// Update evaluates every observed element against viewport and returns
// the ids that crossed the threshold while entering, in registration
// order. An element missing from geometry counts as not visible, so it
// may be reported again when it reappears.
func (w *Watcher) Update(geometry map[string]Span, viewport Span) []string {
	var entered []string
	for _, id := range w.order {
		ratio := 0.0
		if el, ok := geometry[id]; ok {
			ratio = Ratio(el, viewport)
		}
		now := ratio >= w.threshold
		if now && !w.inside[id] {
			entered = append(entered, id)
		}
		w.inside[id] = now
	}
	return entered
}

// Observations returns the current visibility of every observed element.
func (w *Watcher) Observations(geometry map[string]Span, viewport Span) []Observation {
	obs := make([]Observation, 0, len(w.order))
	for _, id := range w.order {
		ratio := 0.0
		if el, ok := geometry[id]; ok {
			ratio = Ratio(el, viewport)
		}
		obs = append(obs, Observation{ID: id, Ratio: ratio, Intersecting: ratio > 0})
	}
	return obs
}
