// Package gesture turns raw per-frame hand landmarks into a stable
// discrete control gesture. Classification fuses the MediaPipe
// recognizer's coarse label with geometric rules over the landmark
// geometry; a debounce stabilizer then suppresses single-frame
// misclassifications before a gesture change is honored downstream.
package gesture

// Gesture is the discrete control gesture driving the formation.
type Gesture string

const (
	// Idle means no hand is detected.
	Idle Gesture = "idle"
	// OpenPalm drives the formation toward fully exploded.
	OpenPalm Gesture = "open_palm"
	// ClosedFist drives the formation toward fully assembled.
	ClosedFist Gesture = "closed_fist"
	// Rotate is the default with a hand present: the hand's horizontal
	// offset steers formation rotation.
	Rotate Gesture = "rotate"
	// Victory summons a photo out of the formation. Pinch/OK, thumbs up
	// and pointing up all collapse into this gesture; they share the
	// same control meaning.
	Victory Gesture = "victory"
)
