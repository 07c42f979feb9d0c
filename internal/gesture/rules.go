package gesture

import (
	"github.com/ayusman/deodar/internal/detector"
)

// Geometric rule thresholds, expressed as multiples of the hand's scale
// reference (wrist to index knuckle distance).
const (
	// fistRatioMax: fingertips count as curled when their mean distance
	// from the wrist falls below one scale unit.
	fistRatioMax = 1.0
	// pinchDistMax: thumb tip and index tip must be closer than half a
	// scale unit to count as a closed pinch.
	pinchDistMax = 0.5
	// pinchMiddleMin: the middle fingertip must stay clear of the wrist,
	// otherwise the "pinch" is really a fist with the thumb tucked in.
	pinchMiddleMin = 0.9
)

// handScale returns the wrist to index knuckle distance used as the
// scale reference for all geometric rules. All rules use image-plane
// distances only; z is too noisy at this range to be useful.
func handScale(hand *detector.HandLandmarks) float64 {
	return detector.Distance2D(hand.Points[detector.Wrist], hand.Points[detector.IndexMCP])
}

// IsClosedFist reports whether the four non-thumb fingertips curl back
// near the wrist: the mean wrist-to-fingertip distance, divided by the
// scale reference, falls below fistRatioMax.
func IsClosedFist(hand *detector.HandLandmarks) bool {
	if hand == nil {
		return false
	}

	scale := handScale(hand)
	if scale <= 0 {
		return false
	}

	wrist := hand.Points[detector.Wrist]
	tips := [4]int{detector.IndexTip, detector.MiddleTip, detector.RingTip, detector.PinkyTip}

	var sum float64
	for _, tip := range tips {
		sum += detector.Distance2D(wrist, hand.Points[tip])
	}
	avg := sum / float64(len(tips))

	return avg/scale < fistRatioMax
}

// IsPinchOK reports whether the hand forms a pinch/OK sign: thumb tip
// touching the index tip while the middle fingertip stays extended. The
// middle-finger guard keeps a full fist (where the thumb also ends up
// near the index tip) from being misread as a pinch.
func IsPinchOK(hand *detector.HandLandmarks) bool {
	if hand == nil {
		return false
	}

	scale := handScale(hand)
	if scale <= 0 {
		return false
	}

	pinch := detector.Distance2D(hand.Points[detector.ThumbTip], hand.Points[detector.IndexTip])
	if pinch >= pinchDistMax*scale {
		return false
	}

	middle := detector.Distance2D(hand.Points[detector.MiddleTip], hand.Points[detector.Wrist])
	return middle > pinchMiddleMin*scale
}
