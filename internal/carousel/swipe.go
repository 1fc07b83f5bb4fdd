package carousel

import "math"

// SwipeThreshold is the horizontal distance, in pixels, a gesture must
// exceed to count as a swipe
const SwipeThreshold = 50

// Swipe tracks one horizontal touch gesture at a time
type Swipe struct {
	startX float64
	active bool
}

// Start records where the gesture began
func (s *Swipe) Start(x float64) {
	s.startX = x
	s.active = true
}

// End resolves the gesture: +1 for a leftward swipe (next), -1 for a
// rightward swipe (previous), 0 for a tap, jitter or an End without Start.
func (s *Swipe) End(x float64) int {
	if !s.active {
		return 0
	}
	s.active = false
	delta := s.startX - x
	if math.Abs(delta) <= SwipeThreshold {
		return 0
	}
	if delta > 0 {
		return 1
	}
	return -1
}

// Active reports whether a gesture is in progress
func (s *Swipe) Active() bool {
	return s.active
}

// Reset discards any gesture in progress
func (s *Swipe) Reset() {
	s.active = false
}
