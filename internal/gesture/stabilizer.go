package gesture

// StabilityFrames is the debounce threshold: a changed raw gesture must
// repeat for more than this many consecutive frames beyond its first
// observation before it is confirmed.
const StabilityFrames = 4

// Stabilizer is a debounce state machine over raw per-frame gestures.
// A new gesture is only confirmed after it has been the raw
// classification for enough consecutive frames, which gives one
// threshold-width of hysteresis and suppresses single-frame flicker.
type Stabilizer struct {
	lastRaw   Gesture
	count     int
	confirmed Gesture
}

// NewStabilizer creates a Stabilizer with both the raw and confirmed
// gesture initialized to Idle.
func NewStabilizer() *Stabilizer {
	return &Stabilizer{
		lastRaw:   Idle,
		confirmed: Idle,
	}
}

// Observe feeds one frame's raw gesture into the state machine and
// returns the confirmed gesture after the transition rule:
//   - same raw as last frame: increment the run counter
//   - different raw: restart the run with a zeroed counter
//   - counter past StabilityFrames: commit the run's gesture
func (s *Stabilizer) Observe(raw Gesture) Gesture {
	if raw == s.lastRaw {
		s.count++
	} else {
		s.lastRaw = raw
		s.count = 0
	}

	if s.count > StabilityFrames {
		s.confirmed = s.lastRaw
	}

	return s.confirmed
}

// Confirmed returns the currently confirmed gesture.
func (s *Stabilizer) Confirmed() Gesture {
	return s.confirmed
}

// Reset returns the stabilizer to its initial idle state.
func (s *Stabilizer) Reset() {
	s.lastRaw = Idle
	s.count = 0
	s.confirmed = Idle
}
