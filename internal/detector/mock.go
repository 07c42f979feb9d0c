package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results, and serves as the
// fallback when the MediaPipe service is unavailable (it then simply
// never reports a hand, leaving pointer control in charge).
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// OpenPalmLandmarks returns a preset HandLandmarks representing an open
// palm. All fingers are extended outward; the recognizer label is set.
func OpenPalmLandmarks() HandLandmarks {
	lm := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
		Label:      LabelOpenPalm,
	}

	lm.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb extended to the side
	lm.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	lm.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.70, Z: 0.03}
	lm.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.65, Z: 0.03}
	lm.Points[ThumbTip] = Point3D{X: 0.73, Y: 0.60, Z: 0.03}

	// Index finger extended upward
	lm.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	lm.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	lm.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	lm.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	// Middle finger extended upward
	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	lm.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	lm.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28, Z: 0.0}

	// Ring finger extended upward
	lm.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: 0.0}
	lm.Points[RingPIP] = Point3D{X: 0.43, Y: 0.55, Z: 0.0}
	lm.Points[RingDIP] = Point3D{X: 0.42, Y: 0.45, Z: 0.0}
	lm.Points[RingTip] = Point3D{X: 0.42, Y: 0.35, Z: 0.0}

	// Pinky finger extended upward
	lm.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	lm.Points[PinkyPIP] = Point3D{X: 0.37, Y: 0.60, Z: 0.0}
	lm.Points[PinkyDIP] = Point3D{X: 0.35, Y: 0.50, Z: 0.0}
	lm.Points[PinkyTip] = Point3D{X: 0.34, Y: 0.42, Z: 0.0}

	return lm
}

// ClosedFistLandmarks returns a preset HandLandmarks representing a
// closed fist: all fingertips curled back near the wrist. The recognizer
// label is deliberately left empty so the geometric fist rule is what
// classifies it.
func ClosedFistLandmarks() HandLandmarks {
	lm := HandLandmarks{
		Handedness: "Right",
		Score:      0.93,
		Label:      LabelNone,
	}

	lm.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb folded across the curled fingers
	lm.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.76, Z: 0.01}
	lm.Points[ThumbMCP] = Point3D{X: 0.57, Y: 0.73, Z: 0.02}
	lm.Points[ThumbIP] = Point3D{X: 0.56, Y: 0.71, Z: 0.01}
	lm.Points[ThumbTip] = Point3D{X: 0.54, Y: 0.70, Z: 0.0}

	// Index finger curled, tip near palm
	lm.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: -0.02}
	lm.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.66, Z: -0.05}
	lm.Points[IndexDIP] = Point3D{X: 0.53, Y: 0.69, Z: -0.04}
	lm.Points[IndexTip] = Point3D{X: 0.52, Y: 0.72, Z: -0.02}

	// Middle finger curled
	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: -0.02}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.64, Z: -0.05}
	lm.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.68, Z: -0.04}
	lm.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.71, Z: -0.02}

	// Ring finger curled
	lm.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: -0.02}
	lm.Points[RingPIP] = Point3D{X: 0.45, Y: 0.66, Z: -0.05}
	lm.Points[RingDIP] = Point3D{X: 0.46, Y: 0.69, Z: -0.04}
	lm.Points[RingTip] = Point3D{X: 0.47, Y: 0.72, Z: -0.02}

	// Pinky finger curled
	lm.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.72, Z: -0.02}
	lm.Points[PinkyPIP] = Point3D{X: 0.41, Y: 0.70, Z: -0.05}
	lm.Points[PinkyDIP] = Point3D{X: 0.43, Y: 0.72, Z: -0.04}
	lm.Points[PinkyTip] = Point3D{X: 0.45, Y: 0.74, Z: -0.02}

	return lm
}

// PinchLandmarks returns a preset HandLandmarks representing an OK/pinch
// sign: thumb tip touching index tip while the remaining fingers stay
// extended (the extended middle finger is what distinguishes it from a
// fist). The recognizer label is left empty so the geometric pinch rule
// carries the classification.
func PinchLandmarks() HandLandmarks {
	lm := HandLandmarks{
		Handedness: "Right",
		Score:      0.94,
		Label:      LabelNone,
	}

	lm.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb reaching toward the index tip
	lm.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	lm.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.68, Z: 0.02}
	lm.Points[ThumbIP] = Point3D{X: 0.59, Y: 0.60, Z: 0.02}
	lm.Points[ThumbTip] = Point3D{X: 0.60, Y: 0.52, Z: 0.02}

	// Index finger curved down to meet the thumb
	lm.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	lm.Points[IndexPIP] = Point3D{X: 0.58, Y: 0.58, Z: 0.0}
	lm.Points[IndexDIP] = Point3D{X: 0.60, Y: 0.53, Z: 0.0}
	lm.Points[IndexTip] = Point3D{X: 0.61, Y: 0.50, Z: 0.0}

	// Middle finger extended
	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	lm.Points[MiddlePIP] = Point3D{X: 0.51, Y: 0.54, Z: 0.0}
	lm.Points[MiddleDIP] = Point3D{X: 0.52, Y: 0.46, Z: 0.0}
	lm.Points[MiddleTip] = Point3D{X: 0.52, Y: 0.40, Z: 0.0}

	// Ring finger extended
	lm.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: 0.0}
	lm.Points[RingPIP] = Point3D{X: 0.44, Y: 0.56, Z: 0.0}
	lm.Points[RingDIP] = Point3D{X: 0.44, Y: 0.50, Z: 0.0}
	lm.Points[RingTip] = Point3D{X: 0.44, Y: 0.45, Z: 0.0}

	// Pinky finger extended
	lm.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	lm.Points[PinkyPIP] = Point3D{X: 0.39, Y: 0.60, Z: 0.0}
	lm.Points[PinkyDIP] = Point3D{X: 0.38, Y: 0.55, Z: 0.0}
	lm.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.50, Z: 0.0}

	return lm
}
