package gesture

import (
	"testing"

	"github.com/ayusman/deodar/internal/detector"
)

// pinchHand builds a hand with a known scale reference (0.2) so the
// rule thresholds can be exercised with exact distances.
func pinchHand(middleTipY float64) detector.HandLandmarks {
	lm := detector.HandLandmarks{}

	lm.Points[detector.Wrist] = detector.Point3D{X: 0.5, Y: 0.5}
	lm.Points[detector.IndexMCP] = detector.Point3D{X: 0.7, Y: 0.5}

	// Thumb tip and index tip 0.05 apart (0.25 scale units).
	lm.Points[detector.ThumbTip] = detector.Point3D{X: 0.6, Y: 0.4}
	lm.Points[detector.IndexTip] = detector.Point3D{X: 0.6, Y: 0.45}

	// Middle tip straight below the wrist at the requested distance.
	lm.Points[detector.MiddleTip] = detector.Point3D{X: 0.5, Y: middleTipY}

	// Remaining tips extended so the fist rule stays out of the way.
	lm.Points[detector.RingTip] = detector.Point3D{X: 0.5, Y: 0.2}
	lm.Points[detector.PinkyTip] = detector.Point3D{X: 0.45, Y: 0.22}

	return lm
}

func TestIsClosedFist_FistPreset(t *testing.T) {
	hand := detector.ClosedFistLandmarks()

	if !IsClosedFist(&hand) {
		t.Error("expected curled fingertips to classify as a closed fist")
	}
}

func TestIsClosedFist_OpenPalmPreset(t *testing.T) {
	hand := detector.OpenPalmLandmarks()

	if IsClosedFist(&hand) {
		t.Error("expected extended fingers not to classify as a closed fist")
	}
}

func TestIsClosedFist_NilHand(t *testing.T) {
	if IsClosedFist(nil) {
		t.Error("expected nil hand not to classify as a closed fist")
	}
}

func TestIsClosedFist_DegenerateScale(t *testing.T) {
	// Wrist and index knuckle at the same point: no scale reference.
	hand := detector.HandLandmarks{}

	if IsClosedFist(&hand) {
		t.Error("expected zero-scale hand not to classify as a closed fist")
	}
}

func TestIsPinchOK_PinchPreset(t *testing.T) {
	hand := detector.PinchLandmarks()

	if !IsPinchOK(&hand) {
		t.Error("expected thumb-to-index pinch to classify as pinch/OK")
	}
}

func TestIsPinchOK_FistPreset(t *testing.T) {
	// In a fist the thumb tip also ends up near the index tip; the
	// middle-finger guard must reject it.
	hand := detector.ClosedFistLandmarks()

	if IsPinchOK(&hand) {
		t.Error("expected a closed fist not to classify as pinch/OK")
	}
}

func TestIsPinchOK_MiddleExtended(t *testing.T) {
	// Middle tip 0.25 from the wrist = 1.25 scale units, clear of the
	// 0.9 guard; thumb-index gap is 0.25 scale units, inside 0.5.
	hand := pinchHand(0.25)

	if !IsPinchOK(&hand) {
		t.Error("expected pinch with extended middle finger to classify as pinch/OK")
	}
}

func TestIsPinchOK_MiddleCurled(t *testing.T) {
	// Middle tip only 0.1 from the wrist = 0.5 scale units, inside the
	// 0.9 guard: the "pinch" is really a fist shape.
	hand := pinchHand(0.4)

	if IsPinchOK(&hand) {
		t.Error("expected pinch with curled middle finger to be rejected")
	}
}
