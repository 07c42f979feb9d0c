package scene

import "math"

// Explode blending time constants. Closing snaps shut (95% of the gap
// in about 0.2s) while opening unfolds slowly (about 1.7s): assembly
// should feel decisive, explosion gradual.
const (
	closeTimeConst = 0.067
	openTimeConst  = 0.567
)

// Blender combines manual slider input and the vision-derived openness
// factor into the single authoritative explode factor. It is the only
// writer of that value; everything downstream reads it once per frame.
type Blender struct {
	value float64
	snap  bool
}

// NewBlender creates a Blender starting fully assembled.
func NewBlender() *Blender {
	return &Blender{}
}

// Update advances the explode factor by one frame and returns it.
//
// Without a hand the manual value is the target. With a hand the target
// is max(manual, openness): vision may push the formation further open
// but never overrides a manual "more open" request downward. A victory
// gesture only drifts the openness factor toward its halfway anchor, so
// manual=1 plus victory keeps the target pinned at 1.
func (b *Blender) Update(manual float64, handDetected bool, openness float64, dt float64) float64 {
	target := clamp01(manual)
	if handDetected && openness > target {
		target = clamp01(openness)
	}

	b.snap = target < b.value

	tau := openTimeConst
	if b.snap {
		tau = closeTimeConst
	}

	b.value += (target - b.value) * (1 - math.Exp(-dt/tau))
	b.value = clamp01(b.value)

	return b.value
}

// Value returns the current explode factor in [0,1].
func (b *Blender) Value() float64 {
	return b.value
}

// IsSnap is true exactly while the factor is closing (target below the
// current value). Consumers use it to pick a faster catch-up profile
// for position following.
func (b *Blender) IsSnap() bool {
	return b.snap
}
