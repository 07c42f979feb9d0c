package scene

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Particle cloud geometry. Source positions fill a tapered cone (the
// tree silhouette); the explode factor pushes every particle outward
// along its horizontal radial direction and stretches the cloud
// vertically.
const (
	treeHeight        = 7.0
	treeBaseRadius    = 2.6
	particleExpansion = 3.5
	particleVertGain  = 0.5
)

// ParticleCloud holds the fixed source positions of the tree-shaped
// particle cloud and computes rendered positions per frame.
type ParticleCloud struct {
	src []mgl64.Vec3
	out []mgl64.Vec3
}

// NewParticleCloud generates count particles distributed over the tree
// cone, deterministic for a given seed.
func NewParticleCloud(count int, seed int64) *ParticleCloud {
	rng := rand.New(rand.NewSource(seed))

	c := &ParticleCloud{
		src: make([]mgl64.Vec3, count),
		out: make([]mgl64.Vec3, count),
	}

	for i := range c.src {
		h := rng.Float64() * treeHeight
		// Radius shrinks linearly toward the apex; sqrt keeps the disc
		// fill uniform instead of clustering at the trunk.
		maxR := treeBaseRadius * (1 - h/treeHeight)
		r := maxR * math.Sqrt(rng.Float64())
		a := rng.Float64() * 2 * math.Pi

		c.src[i] = mgl64.Vec3{r * math.Cos(a), h, r * math.Sin(a)}
	}

	copy(c.out, c.src)
	return c
}

// Update recomputes the rendered positions for the given explode factor.
func (c *ParticleCloud) Update(explode float64) {
	for i, src := range c.src {
		radial := mgl64.Vec3{src.X(), 0, src.Z()}
		if l := radial.Len(); l > 1e-9 {
			radial = radial.Mul(1 / l)
		}

		pushed := src.Add(radial.Mul(explode * particleExpansion))
		c.out[i] = mgl64.Vec3{
			pushed.X(),
			src.Y() * (1 + explode*particleVertGain),
			pushed.Z(),
		}
	}
}

// Positions returns the rendered particle positions for the current
// frame. The slice is reused between frames; callers must not retain it.
func (c *ParticleCloud) Positions() []mgl64.Vec3 {
	return c.out
}

// Count returns the number of particles in the cloud.
func (c *ParticleCloud) Count() int {
	return len(c.src)
}
