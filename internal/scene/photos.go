package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Photo formation constants.
const (
	// PlaceholderCount is the slot count used before any photos load.
	PlaceholderCount = 24

	// Tree spiral: photos sit on the cone surface; the radius shrinks
	// with height by a power law so the taper reads as organic rather
	// than strictly conical.
	photoTreeBase = 0.4
	photoTreeSpan = 6.4
	photoTaperPow = 0.72
	photoPush     = 2.2
	photoNormalUp = 0.25
	photoBobGate  = 0.1
	photoBobAmp   = 0.18
	photoBobFreq  = 1.5

	// Gallery carousel.
	galleryRadius = 4.5
	galleryHeight = 2.2
	galleryWobble = 0.12
	galleryFront  = math.Pi / 2
	galleryFocus  = 1.6

	// Scale states.
	leafScale  = 0.55
	viewScale  = 1.0
	breathAmp  = 0.06
	breathFreq = 2.0
	hoverBoost = 1.25

	// Transform smoothing rates (1/s); snap closes faster.
	photoFollowRate = 4.0
	photoSnapRate   = 10.0
)

// PhotoTransform is one photo object's blended transform for a frame.
type PhotoTransform struct {
	Pos   mgl64.Vec3
	Rot   mgl64.Quat
	Scale float64
}

// PhotoSet choreographs the photo objects: each index owns a fixed slot
// on the tree spiral and in the gallery circle, and its rendered
// transform is recomputed every frame from the explode factor, the
// gallery blend and the rotation offset, then exponentially smoothed.
type PhotoSet struct {
	urls []string
	cur  []PhotoTransform
	init []bool
}

// NewPhotoSet creates a set for the given photo URLs. With no photos
// loaded it falls back to PlaceholderCount empty slots so the formation
// (and the summon lifecycle) still has geometry to work with.
func NewPhotoSet(urls []string) *PhotoSet {
	p := &PhotoSet{}
	p.SetPhotos(urls)
	return p
}

// SetPhotos replaces the photo slots. Smoothed state is rebuilt; the
// first Update after a reload seeds transforms at their targets.
func (p *PhotoSet) SetPhotos(urls []string) {
	n := len(urls)
	if n == 0 {
		urls = make([]string, PlaceholderCount)
		n = PlaceholderCount
	}

	p.urls = urls
	p.cur = make([]PhotoTransform, n)
	p.init = make([]bool, n)
}

// Count returns the number of photo slots.
func (p *PhotoSet) Count() int {
	return len(p.urls)
}

// URL returns the opaque photo handle for a slot (may be empty for
// placeholder slots).
func (p *PhotoSet) URL(i int) string {
	return p.urls[i]
}

// slotAngle is the fixed spiral angle of slot i.
func (p *PhotoSet) slotAngle(i int) float64 {
	return float64(i) * goldenAngle
}

// TreeTarget computes slot i's tree-formation position and outward
// normal for the given explode factor. The summon lifecycle snapshots
// this as its animation origin, explode offset included.
func (p *PhotoSet) TreeTarget(i int, explode, elapsed float64) (mgl64.Vec3, mgl64.Vec3) {
	n := float64(p.Count())
	t := (float64(i) + 0.5) / n

	h := photoTreeBase + t*photoTreeSpan
	r := treeBaseRadius * math.Pow(1-h/(photoTreeBase+photoTreeSpan+0.4), photoTaperPow)
	a := p.slotAngle(i)

	// Outward normal tilts slightly upward to follow the taper.
	normal := mgl64.Vec3{math.Cos(a), photoNormalUp, math.Sin(a)}.Normalize()

	pos := mgl64.Vec3{r * math.Cos(a), h, r * math.Sin(a)}
	pos = pos.Add(normal.Mul(explode * photoPush))

	if explode > photoBobGate {
		pos = mgl64.Vec3{
			pos.X(),
			pos.Y() + math.Sin(elapsed*photoBobFreq+float64(i))*photoBobAmp*explode,
			pos.Z(),
		}
	}

	return pos, normal
}

// galleryTarget computes slot i's carousel position for the given
// rotation offset.
func (p *PhotoSet) galleryTarget(i int, rotation, elapsed float64) (mgl64.Vec3, float64) {
	a := p.galleryAngle(i, rotation)
	pos := mgl64.Vec3{
		galleryRadius * math.Cos(a),
		galleryHeight + math.Sin(elapsed*0.8+float64(i)*1.3)*galleryWobble,
		galleryRadius * math.Sin(a),
	}
	return pos, a
}

func (p *PhotoSet) galleryAngle(i int, rotation float64) float64 {
	return 2*math.Pi*float64(i)/float64(p.Count()) + rotation
}

// focusIndex returns the slot currently nearest the gallery's front
// angle; that photo gets the focus scale-up.
func (p *PhotoSet) focusIndex(rotation float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i := range p.urls {
		d := math.Abs(shortestArc(p.galleryAngle(i, rotation) - galleryFront))
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// Update recomputes and smooths every slot's transform.
//
// Orientation and scale follow a fixed priority: deep in gallery mode
// photos face the carousel axis with the front photo emphasized; an
// exploded tree faces the viewer with a breathing scale (and a boost for
// the hovered photo); otherwise photos lie on the tree surface at leaf
// scale. isSnap selects the faster follow rate so snapping back to the
// assembled tree doesn't leave photos trailing behind.
func (p *PhotoSet) Update(explode, galleryLerp, rotation, elapsed, dt float64, isSnap bool, hoverIndex int) {
	rate := photoFollowRate
	if isSnap {
		rate = photoSnapRate
	}
	k := 1 - math.Exp(-rate*dt)

	focus := -1
	if galleryLerp > 0.5 {
		focus = p.focusIndex(rotation)
	}

	for i := range p.urls {
		treePos, _ := p.TreeTarget(i, explode, elapsed)
		galPos, galAngle := p.galleryTarget(i, rotation, elapsed)

		pos := mgl64.Vec3{
			lerp(treePos.X(), galPos.X(), galleryLerp),
			lerp(treePos.Y(), galPos.Y(), galleryLerp),
			lerp(treePos.Z(), galPos.Z(), galleryLerp),
		}

		var rot mgl64.Quat
		var scale float64

		switch {
		case galleryLerp > 0.5:
			// Face the carousel axis.
			rot = mgl64.QuatRotate(math.Pi/2-galAngle+math.Pi, mgl64.Vec3{0, 1, 0})
			scale = viewScale
			if i == focus {
				scale = galleryFocus
			}
		case explode > 0.5:
			// Face the viewer, breathe, and grow when pointed at.
			rot = mgl64.QuatIdent()
			scale = viewScale + breathAmp*math.Sin(elapsed*breathFreq+float64(i))
			if i == hoverIndex {
				scale *= hoverBoost
			}
		default:
			// Docked on the tree surface, facing outward, compact.
			rot = mgl64.QuatRotate(math.Pi/2-p.slotAngle(i), mgl64.Vec3{0, 1, 0})
			scale = leafScale
		}

		if !p.init[i] {
			p.cur[i] = PhotoTransform{Pos: pos, Rot: rot, Scale: scale}
			p.init[i] = true
			continue
		}

		c := &p.cur[i]
		c.Pos = c.Pos.Add(pos.Sub(c.Pos).Mul(k))
		c.Rot = mgl64.QuatSlerp(c.Rot.Normalize(), rot.Normalize(), k)
		c.Scale = lerp(c.Scale, scale, k)
	}
}

// Transforms returns the smoothed per-slot transforms for the current
// frame. The slice is reused between frames; callers must not retain it.
func (p *PhotoSet) Transforms() []PhotoTransform {
	return p.cur
}

// OutwardRotation returns the tree-surface orientation for slot i,
// used by the summon lifecycle as its slerp origin.
func (p *PhotoSet) OutwardRotation(i int) mgl64.Quat {
	return mgl64.QuatRotate(math.Pi/2-p.slotAngle(i), mgl64.Vec3{0, 1, 0})
}
