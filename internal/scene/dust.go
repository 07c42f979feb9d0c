package scene

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Dust dynamics constants. The dust is a small spring-mass particle set
// with persistent velocity: it drifts once the formation opens, seeks
// the tracked hand (or pointer) when close enough, and springs back
// toward its rest shell. Attraction reaches wider and pulls harder when
// a real hand is tracked than when only a pointer is available.
const (
	dustTargetGain = 0.8

	dustDriftGate = 0.1
	dustDriftMag  = 0.012

	dustHandRange     = 3.5
	dustHandStrength  = 0.025
	dustPointRange    = 2.0
	dustPointStrength = 0.012

	dustSpringBase  = 0.018
	dustSpringDecay = 0.010

	// Friction interpolates between strong damping while compact and a
	// more fluid feel while exploded.
	dustFrictionCompact  = 0.90
	dustFrictionExploded = 0.96
)

// DustCloud simulates the attraction-seeking dust particles with
// semi-implicit Euler integration on the wall-clock delta.
type DustCloud struct {
	rest []mgl64.Vec3
	pos  []mgl64.Vec3
	vel  []mgl64.Vec3
	rng  *rand.Rand
}

// NewDustCloud scatters count dust particles on a loose shell around
// the tree, deterministic for a given seed (the per-frame drift is not).
func NewDustCloud(count int, seed int64) *DustCloud {
	rng := rand.New(rand.NewSource(seed))

	d := &DustCloud{
		rest: make([]mgl64.Vec3, count),
		pos:  make([]mgl64.Vec3, count),
		vel:  make([]mgl64.Vec3, count),
		rng:  rng,
	}

	for i := range d.rest {
		h := rng.Float64() * treeHeight * 1.2
		r := treeBaseRadius * (0.8 + rng.Float64()*0.9)
		a := rng.Float64() * 2 * math.Pi

		d.rest[i] = mgl64.Vec3{r * math.Cos(a), h, r * math.Sin(a)}
		d.pos[i] = d.rest[i]
	}

	return d
}

// Update advances the simulation by dt seconds. attractor is the point
// the dust seeks, considered only while attract is set; handTracked
// selects the wider/stronger attraction profile. No fixed timestep:
// dt is normalized to 60 Hz reference frames so behavior matches
// across refresh rates.
func (d *DustCloud) Update(explode float64, attractor mgl64.Vec3, handTracked, attract bool, dt float64) {
	steps := dt * 60

	attractRange := dustPointRange
	attractStrength := dustPointStrength
	if handTracked {
		attractRange = dustHandRange
		attractStrength = dustHandStrength
	}

	spring := dustSpringBase - explode*dustSpringDecay
	friction := math.Pow(lerp(dustFrictionCompact, dustFrictionExploded, explode), steps)

	for i := range d.pos {
		target := d.rest[i].Mul(1 + explode*dustTargetGain)

		// Random drift keeps the cloud alive once the formation opens.
		if explode > dustDriftGate {
			d.vel[i] = d.vel[i].Add(mgl64.Vec3{
				(d.rng.Float64() - 0.5) * dustDriftMag,
				(d.rng.Float64() - 0.5) * dustDriftMag,
				(d.rng.Float64() - 0.5) * dustDriftMag,
			}.Mul(steps))
		}

		if attract {
			toAttractor := attractor.Sub(d.pos[i])
			if dist := toAttractor.Len(); dist > 1e-9 && dist < attractRange {
				pull := attractStrength * (1 - dist/attractRange)
				d.vel[i] = d.vel[i].Add(toAttractor.Mul(pull / dist * steps))
			}
		}

		d.vel[i] = d.vel[i].Add(target.Sub(d.pos[i]).Mul(spring * steps))
		d.vel[i] = d.vel[i].Mul(friction)
		d.pos[i] = d.pos[i].Add(d.vel[i].Mul(steps))
	}
}

// Positions returns the current dust positions. The slice is reused
// between frames; callers must not retain it.
func (d *DustCloud) Positions() []mgl64.Vec3 {
	return d.pos
}

// Count returns the number of dust particles.
func (d *DustCloud) Count() int {
	return len(d.pos)
}
