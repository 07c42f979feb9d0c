package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ayusman/deodar/internal/gesture"
)

// Summon lifecycle constants.
const (
	// summonMinInterval is the minimum seconds between summon
	// transitions; victory edges inside it are ignored.
	summonMinInterval = 1.0
	// summonIdleTimeout dismisses the presented photo after this many
	// seconds without a victory gesture.
	summonIdleTimeout = 4.0

	// Progress rates (1/s): presenting eases in, dismissal pulls back
	// noticeably faster.
	summonAppearRate  = 2.0
	summonDismissRate = 5.0

	// summonEpsilon frees the slot once a dismissed animation has
	// effectively settled back into the formation.
	summonEpsilon = 0.01

	// Viewer-facing presentation pose.
	presentHeight = 1.6
	presentDist   = 4.2
	presentScale  = 1.4

	// arcAmplitude is the "lift and settle" height bump along the path.
	arcAmplitude = 0.6
)

// Summoner is the finite-state machine that pops one photo out of the
// formation to a viewer-facing pose on a victory edge, and returns it on
// dismissal. At most one photo is summoned at a time.
type Summoner struct {
	active  bool
	visible bool
	index   int
	next    int

	progress float64
	idleTime float64
	lastEdge float64

	origin    mgl64.Vec3
	originRot mgl64.Quat

	wasVictory bool
}

// NewSummoner creates a Summoner in its idle state.
func NewSummoner() *Summoner {
	return &Summoner{
		lastEdge:  -summonMinInterval,
		originRot: mgl64.QuatIdent(),
	}
}

// Update advances the lifecycle by one frame. elapsed is the engine's
// running clock in seconds. Gallery mode forces an immediate return to
// idle; summon transitions are only evaluated outside it.
func (s *Summoner) Update(confirmed gesture.Gesture, galleryMode bool, photos *PhotoSet, explode, elapsed, dt float64) {
	if galleryMode {
		s.active = false
		s.visible = false
		s.progress = 0
		s.wasVictory = confirmed == gesture.Victory
		return
	}

	isVictory := confirmed == gesture.Victory

	if s.active {
		s.updatePresenting(confirmed, isVictory, elapsed, dt)
	} else if isVictory && !s.wasVictory && !s.visible && elapsed-s.lastEdge >= summonMinInterval {
		s.summon(photos, explode, elapsed)
	}

	s.wasVictory = isVictory
}

// summon activates the next slot round-robin and snapshots its current
// tree-formation transform (explode offset included) as the animation
// origin.
func (s *Summoner) summon(photos *PhotoSet, explode, elapsed float64) {
	s.index = s.next % photos.Count()
	s.next = (s.index + 1) % photos.Count()

	s.origin, _ = photos.TreeTarget(s.index, explode, elapsed)
	s.originRot = photos.OutwardRotation(s.index)

	s.active = true
	s.visible = true
	s.progress = 0
	s.idleTime = 0
	s.lastEdge = elapsed
}

func (s *Summoner) updatePresenting(confirmed gesture.Gesture, isVictory bool, elapsed, dt float64) {
	if s.visible {
		switch {
		case confirmed == gesture.ClosedFist || confirmed == gesture.OpenPalm:
			s.dismiss(elapsed)
		case isVictory:
			s.idleTime = 0
		default:
			s.idleTime += dt
			if s.idleTime >= summonIdleTimeout {
				s.dismiss(elapsed)
			}
		}
	}

	if s.visible {
		s.progress = damp(s.progress, 1, summonAppearRate, dt)
	} else {
		s.progress = damp(s.progress, 0, summonDismissRate, dt)
		if s.progress < summonEpsilon {
			s.active = false
			s.progress = 0
		}
	}
}

func (s *Summoner) dismiss(elapsed float64) {
	s.visible = false
	s.lastEdge = elapsed
}

// Reset forces the lifecycle back to idle and clamps the round-robin
// cursor to the given slot count. Called when the photo set is
// replaced: a summoned slot may no longer exist.
func (s *Summoner) Reset(slots int) {
	s.active = false
	s.visible = false
	s.progress = 0
	s.idleTime = 0
	if slots > 0 {
		s.next %= slots
	} else {
		s.next = 0
	}
}

// Active reports whether a photo is currently summoned and which slot.
func (s *Summoner) Active() (int, bool) {
	return s.index, s.active
}

// Visible reports whether the summoned photo is in its presenting state
// (false while it is animating back after dismissal).
func (s *Summoner) Visible() bool {
	return s.visible
}

// Progress returns the raw animation progress in [0,1].
func (s *Summoner) Progress() float64 {
	return s.progress
}

// Transform computes the summoned photo's transform for the current
// frame. Position interpolates in cylindrical coordinates between the
// snapshot origin and the viewer-facing pose, taking the shorter
// angular arc, with a sin(progress·π) height bump for a lift-and-settle
// feel. Orientation slerps from facing outward to facing the viewer.
// Returns false when nothing is summoned.
func (s *Summoner) Transform() (PhotoTransform, bool) {
	if !s.active {
		return PhotoTransform{}, false
	}

	e := easeOutCubic(s.progress)

	r0 := math.Hypot(s.origin.X(), s.origin.Z())
	a0 := math.Atan2(s.origin.Z(), s.origin.X())
	h0 := s.origin.Y()

	r1 := presentDist
	a1 := math.Pi / 2 // straight ahead of the viewer on +Z
	h1 := presentHeight

	r := lerp(r0, r1, e)
	a := a0 + shortestArc(a1-a0)*e
	h := lerp(h0, h1, e) + math.Sin(e*math.Pi)*arcAmplitude

	return PhotoTransform{
		Pos:   mgl64.Vec3{r * math.Cos(a), h, r * math.Sin(a)},
		Rot:   mgl64.QuatSlerp(s.originRot.Normalize(), mgl64.QuatIdent(), e),
		Scale: lerp(leafScale, presentScale, e),
	}, true
}
