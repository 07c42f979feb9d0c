// Package detector provides hand landmark detection interfaces and types
// for the Deodar gesture-controlled formation engine.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Coarse gesture labels emitted by the MediaPipe gesture recognizer.
// An empty label means the recognizer had no confident category.
const (
	LabelNone       = ""
	LabelOpenPalm   = "Open_Palm"
	LabelClosedFist = "Closed_Fist"
	LabelVictory    = "Victory"
	LabelThumbUp    = "Thumb_Up"
	LabelPointingUp = "Pointing_Up"
)

// Point3D represents a landmark position in normalized image space.
// X and Y are in [0,1]; Z is a relative depth estimate.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks detected by MediaPipe
// together with the recognizer's coarse categorical label for the hand.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
	Label      string                `json:"label"` // coarse gesture category, may be empty
}

// Distance2D returns the image-plane distance between two landmarks.
// Depth is deliberately ignored; the geometric gesture rules operate on
// the projected hand shape only.
func Distance2D(a, b Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
