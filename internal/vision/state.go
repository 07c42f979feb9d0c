// Package vision holds the per-tick vision state: the confirmed gesture,
// the continuous openness factor and the tracked hand's world position.
// Exactly one producer (the app pipeline) publishes a new Snapshot per
// tick; every consumer reads that same immutable snapshot for the
// remainder of the tick, so all animators see a consistent frame.
package vision

import (
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ayusman/deodar/internal/gesture"
)

// Snapshot is the immutable vision state for one tick.
type Snapshot struct {
	// Detected is true when a hand was present this tick.
	Detected bool
	// Raw is this frame's unstabilized classification.
	Raw gesture.Gesture
	// Confirmed is the debounced gesture; it only changes after the
	// stabilizer commits.
	Confirmed gesture.Gesture
	// Openness is the continuous 0..1 factor: 0 fully assembled,
	// 1 fully exploded. Smoothed, never jumps.
	Openness float64
	// RotateVel is the signed rotation steering velocity in [-1,1].
	RotateVel float64
	// HandPos is the smoothed world-space hand position.
	HandPos mgl64.Vec3
	// Timestamp is when the snapshot was published.
	Timestamp time.Time
}

// State is the shared holder the pipeline publishes snapshots into.
type State struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewState creates a State holding an idle snapshot.
func NewState() *State {
	return &State{
		snap: Snapshot{
			Raw:       gesture.Idle,
			Confirmed: gesture.Idle,
			Timestamp: time.Now(),
		},
	}
}

// Publish replaces the current snapshot.
func (s *State) Publish(snap Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Latest returns the most recently published snapshot.
func (s *State) Latest() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
