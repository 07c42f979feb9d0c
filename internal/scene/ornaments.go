package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ornament drift constants. Once the formation opens past the
// threshold, ornaments pick up slow oscillatory position and rotation
// drift whose amplitude grows with the explode factor.
const (
	ornamentExpansion = 3.0
	ornamentDriftGate = 0.2
	ornamentDriftAmp  = 0.45
	ornamentSpinAmp   = 0.6
	goldenAngle       = 2.39996322972865332
)

// OrnamentInstance is the per-frame transform of one ornament.
type OrnamentInstance struct {
	Pos mgl64.Vec3
	// Rot is the Euler rotation (radians) applied by the renderer.
	Rot mgl64.Vec3
}

// OrnamentSet places ornaments on a spiral around the tree cone and
// animates them with per-index seeded drift: decorrelated between
// instances but deterministic in elapsed time.
type OrnamentSet struct {
	src   []mgl64.Vec3
	phase []float64
	freq  []float64
	out   []OrnamentInstance
}

// NewOrnamentSet creates count ornaments wound around the tree surface.
func NewOrnamentSet(count int) *OrnamentSet {
	s := &OrnamentSet{
		src:   make([]mgl64.Vec3, count),
		phase: make([]float64, count),
		freq:  make([]float64, count),
		out:   make([]OrnamentInstance, count),
	}

	for i := range s.src {
		t := (float64(i) + 0.5) / float64(count)
		h := t * treeHeight * 0.95
		r := treeBaseRadius * (1 - h/treeHeight) * 1.02
		a := float64(i) * goldenAngle

		s.src[i] = mgl64.Vec3{r * math.Cos(a), h, r * math.Sin(a)}

		// Per-index seeding: phases walk the golden angle, frequencies
		// spread over a band so no two instances beat together.
		s.phase[i] = float64(i) * goldenAngle
		s.freq[i] = 0.6 + 0.35*math.Mod(float64(i)*0.377, 1.0)
	}

	return s
}

// Update recomputes every instance transform for the frame.
func (s *OrnamentSet) Update(explode, elapsed float64) {
	for i, src := range s.src {
		radial := mgl64.Vec3{src.X(), 0, src.Z()}
		if l := radial.Len(); l > 1e-9 {
			radial = radial.Mul(1 / l)
		}

		pos := src.Add(radial.Mul(explode * ornamentExpansion))
		rot := mgl64.Vec3{}

		if explode > ornamentDriftGate {
			amp := ornamentDriftAmp * explode
			f := s.freq[i]
			p := s.phase[i]

			pos = pos.Add(mgl64.Vec3{
				math.Sin(elapsed*f+p) * amp,
				math.Sin(elapsed*f*0.7+p*1.3) * amp * 0.6,
				math.Cos(elapsed*f*0.9+p) * amp,
			})

			spin := ornamentSpinAmp * explode
			rot = mgl64.Vec3{
				math.Sin(elapsed*f*0.5+p) * spin,
				elapsed*f*0.3 + p,
				math.Cos(elapsed*f*0.4+p) * spin,
			}
		}

		s.out[i] = OrnamentInstance{Pos: pos, Rot: rot}
	}
}

// Instances returns the per-frame ornament transforms. The slice is
// reused between frames; callers must not retain it.
func (s *OrnamentSet) Instances() []OrnamentInstance {
	return s.out
}

// Count returns the number of ornament instances.
func (s *OrnamentSet) Count() int {
	return len(s.src)
}
