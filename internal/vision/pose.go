package vision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ayusman/deodar/internal/detector"
	"github.com/ayusman/deodar/internal/gesture"
)

// Visible-plane mapping constants. The hand's normalized image position
// is projected onto the plane a viewer-facing camera sees at a fixed
// distance, so one hand-width of motion sweeps the whole formation.
const (
	cameraDistance = 8.0
	fovDegrees     = 50.0
	viewAspect     = 16.0 / 9.0

	// positionSmoothing is the per-frame lerp rate toward the projected
	// hand position.
	positionSmoothing = 0.2

	// Openness smoothing rates. The factor is double smoothed: the
	// target drifts at gesture-specific rates, then the factor chases
	// the target.
	opennessRate     = 0.1
	victoryDriftRate = 0.1
	idleDriftRate    = 0.05
	lossDecayRate    = 0.1

	// Openness drift anchors: victory parks the target halfway while a
	// photo is presented; with no deliberate gesture the formation
	// drifts toward a semi-assembled rest state.
	victoryAnchor = 0.5
	idleAnchor    = 0.2
)

// PoseMapper converts the tracked hand's landmarks into a smoothed
// world-space position and maintains the continuous openness factor
// driven by the confirmed gesture.
type PoseMapper struct {
	pos    mgl64.Vec3
	hasPos bool
	target float64
	factor float64
	planeW float64
	planeH float64
}

// NewPoseMapper creates a PoseMapper with the fixed visible-plane size
// derived from the camera distance and field of view.
func NewPoseMapper() *PoseMapper {
	planeH := 2 * cameraDistance * math.Tan(fovDegrees/2*math.Pi/180)
	return &PoseMapper{
		planeH: planeH,
		planeW: planeH * viewAspect,
	}
}

// Update advances the mapper by one frame. A nil hand means no hand was
// detected this frame: the position holds its last value and the
// openness factor decays toward zero.
func (m *PoseMapper) Update(hand *detector.HandLandmarks, confirmed gesture.Gesture) {
	if hand == nil {
		m.factor += (0 - m.factor) * lossDecayRate
		return
	}

	m.trackPosition(hand)
	m.updateOpenness(confirmed)
}

// trackPosition projects the middle knuckle onto the visible plane and
// exponentially smooths toward it. X is mirrored so moving the hand
// right moves the mapped point right from the viewer's perspective.
func (m *PoseMapper) trackPosition(hand *detector.HandLandmarks) {
	ref := hand.Points[detector.MiddleMCP]
	target := mgl64.Vec3{
		(0.5 - ref.X) * m.planeW,
		(0.5 - ref.Y) * m.planeH,
		0,
	}

	if !m.hasPos {
		m.pos = target
		m.hasPos = true
		return
	}

	m.pos = m.pos.Add(target.Sub(m.pos).Mul(positionSmoothing))
}

// updateOpenness drives the internal target from the confirmed gesture,
// then smooths the factor toward it. Fist and palm pin the target hard;
// victory and idle only nudge it, so brief gestures never cause jumps.
func (m *PoseMapper) updateOpenness(confirmed gesture.Gesture) {
	switch confirmed {
	case gesture.ClosedFist:
		m.target = 0
	case gesture.OpenPalm:
		m.target = 1
	case gesture.Victory:
		m.target += (victoryAnchor - m.target) * victoryDriftRate
	default:
		m.target += (idleAnchor - m.target) * idleDriftRate
	}

	m.factor += (m.target - m.factor) * opennessRate
}

// Position returns the smoothed world-space hand position. After hand
// loss it keeps returning the last tracked value rather than snapping
// to the origin.
func (m *PoseMapper) Position() mgl64.Vec3 {
	return m.pos
}

// Openness returns the continuous openness factor in [0,1].
func (m *PoseMapper) Openness() float64 {
	return m.factor
}
