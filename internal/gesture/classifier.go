package gesture

import (
	"github.com/ayusman/deodar/internal/detector"
)

// Rotation steering constants.
const (
	// rotateDeadzoneBase is the minimum deadzone half-width around image
	// center inside which no rotation is produced.
	rotateDeadzoneBase = 0.1
	// rotateDeadzoneScale shrinks the deadzone as sensitivity grows:
	// half-width = max(base, scale/sensitivity).
	rotateDeadzoneScale = 0.2
	// rotateSlope converts distance past the deadzone into velocity,
	// before the sensitivity multiplier and the [-1,1] clamp.
	rotateSlope = 2.5
)

// Result is the raw per-frame classification. It has no memory; feed it
// to a Stabilizer before acting on it.
type Result struct {
	Gesture Gesture
	// RotateVel is the signed rotation velocity in [-1,1]. Only
	// meaningful when Gesture == Rotate; zero otherwise.
	RotateVel float64
}

// rule pairs a predicate with the gesture it yields. Rules are evaluated
// top-down and the first match wins, so priority is the list order.
// Adding a gesture means adding a rule, not a branch.
type rule struct {
	name  string
	match func(hand *detector.HandLandmarks) bool
	out   Gesture
}

// Classifier fuses the recognizer's coarse label with geometric rules
// into one raw gesture per frame.
type Classifier struct {
	rules       []rule
	sensitivity float64
}

// NewClassifier creates a Classifier with the default rule order:
// summon (pinch or victory-family label), open palm, closed fist.
// Anything else with a hand present is rotation.
func NewClassifier() *Classifier {
	return &Classifier{
		sensitivity: 1.0,
		rules: []rule{
			{
				name: "summon",
				match: func(h *detector.HandLandmarks) bool {
					switch h.Label {
					case detector.LabelVictory, detector.LabelThumbUp, detector.LabelPointingUp:
						return true
					}
					return IsPinchOK(h)
				},
				out: Victory,
			},
			{
				name: "open-palm",
				match: func(h *detector.HandLandmarks) bool {
					return h.Label == detector.LabelOpenPalm
				},
				out: OpenPalm,
			},
			{
				name: "closed-fist",
				match: func(h *detector.HandLandmarks) bool {
					return h.Label == detector.LabelClosedFist || IsClosedFist(h)
				},
				out: ClosedFist,
			},
		},
	}
}

// SetSensitivity sets the rotation sensitivity. Values are clamped to
// the supported [0.5, 3.0] range.
func (c *Classifier) SetSensitivity(s float64) {
	if s < 0.5 {
		s = 0.5
	}
	if s > 3.0 {
		s = 3.0
	}
	c.sensitivity = s
}

// Sensitivity returns the current rotation sensitivity.
func (c *Classifier) Sensitivity() float64 {
	return c.sensitivity
}

// Classify produces the raw gesture for one frame from the detected
// hands. Only the first hand is considered; no hands means Idle.
func (c *Classifier) Classify(hands []detector.HandLandmarks) Result {
	if len(hands) == 0 {
		return Result{Gesture: Idle}
	}

	hand := &hands[0]

	for _, r := range c.rules {
		if r.match(hand) {
			return Result{Gesture: r.out}
		}
	}

	return Result{
		Gesture:   Rotate,
		RotateVel: c.rotateVelocity(hand),
	}
}

// rotateVelocity derives a signed steering velocity from the index
// knuckle's horizontal offset from image center. Inside the deadzone the
// velocity is zero; past it, it grows linearly with distance, scaled by
// sensitivity and clamped to [-1,1].
func (c *Classifier) rotateVelocity(hand *detector.HandLandmarks) float64 {
	dx := hand.Points[detector.IndexMCP].X - 0.5

	deadzone := rotateDeadzoneScale / c.sensitivity
	if deadzone < rotateDeadzoneBase {
		deadzone = rotateDeadzoneBase
	}

	mag := dx
	if mag < 0 {
		mag = -mag
	}
	if mag <= deadzone {
		return 0
	}

	vel := (mag - deadzone) * rotateSlope * c.sensitivity
	if vel > 1 {
		vel = 1
	}
	if dx < 0 {
		vel = -vel
	}
	return vel
}
