// Package lightbox models the gallery overlay as a small explicit state
// machine: closed, or open at an index into a fixed-size image list. The
// handlers drive transitions; rendering stays in templates.
package lightbox

// SwipeThresholdPx is the minimum horizontal drag that counts as a swipe.
// Shorter drags are no-ops.
const SwipeThresholdPx = 50

// LoadState tracks the displayed image's lifecycle. It resets to Loading
// whenever the index changes.
type LoadState string

const (
	Loading LoadState = "loading"
	Loaded  LoadState = "loaded"
	Errored LoadState = "errored"
)

// State is a lightbox position over N images. The zero value is closed.
type State struct {
	Open  bool
	Index int
	Count int
	Image LoadState
}

// Opened returns a lightbox opened at index i over n images. Out-of-range
// indices clamp into [0, n); n <= 0 stays closed.
func Opened(i, n int) State {
	if n <= 0 {
		return State{}
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return State{Open: true, Index: i, Count: n, Image: Loading}
}

// Closed returns the closed state. Closing always releases the scroll lock;
// templates key the body class off State.Open alone so an unmount cannot leak
// a locked scroll.
func Closed() State {
	return State{}
}

// Next advances to (i+1) mod N. A closed or empty lightbox is unchanged.
func (s State) Next() State {
	if !s.Open || s.Count <= 0 {
		return s
	}
	s.Index = (s.Index + 1) % s.Count
	s.Image = Loading
	return s
}

// Prev moves to (i-1+N) mod N. A closed or empty lightbox is unchanged.
func (s State) Prev() State {
	if !s.Open || s.Count <= 0 {
		return s
	}
	s.Index = (s.Index - 1 + s.Count) % s.Count
	s.Image = Loading
	return s
}

// Swipe applies a horizontal drag of dx pixels. A drag left (negative dx) of
// at least the threshold advances; a drag right goes back; anything shorter
// leaves the state untouched.
func (s State) Swipe(dx int) State {
	if !s.Open {
		return s
	}
	switch {
	case dx <= -SwipeThresholdPx:
		return s.Next()
	case dx >= SwipeThresholdPx:
		return s.Prev()
	default:
		return s
	}
}

// WithImage records the displayed image's load outcome without moving.
func (s State) WithImage(ls LoadState) State {
	if s.Open {
		s.Image = ls
	}
	return s
}
