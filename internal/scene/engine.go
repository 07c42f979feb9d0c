package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/ayusman/deodar/internal/gesture"
	"github.com/ayusman/deodar/internal/vision"
)

// Engine-level constants.
const (
	DefaultParticleCount = 3000
	DefaultOrnamentCount = 48
	DefaultDustCount     = 200

	// galleryLerpRate drives the tree/gallery blend toward the mode
	// flag; the blend never jumps.
	galleryLerpRate = 2.0

	// Rotation: a slow ambient turn plus gesture steering.
	autoRotateSpeed = 0.05
	rotateGestGain  = 1.2
)

// Frame is the engine's per-step output consumed by the renderer. The
// heavyweight particle/ornament/dust buffers are exposed through the
// engine accessors instead of being copied into every frame.
type Frame struct {
	Explode     float64         `json:"explode"`
	GalleryLerp float64         `json:"gallery_lerp"`
	Rotation    float64         `json:"rotation"`
	Gesture     gesture.Gesture `json:"gesture"`
	IsSnap      bool            `json:"is_snap"`
	HandPos     [3]float64      `json:"hand_pos"`
	Detected    bool            `json:"detected"`
	Photos      []PhotoFrame    `json:"photos"`
	Summon      *SummonFrame    `json:"summon,omitempty"`
}

// PhotoFrame is one photo object's transform on the wire.
type PhotoFrame struct {
	URL   string     `json:"url,omitempty"`
	Pos   [3]float64 `json:"pos"`
	Rot   [4]float64 `json:"rot"` // quaternion w,x,y,z
	Scale float64    `json:"scale"`
}

// SummonFrame is the summoned photo's overlay state on the wire.
type SummonFrame struct {
	Index   int        `json:"index"`
	URL     string     `json:"url,omitempty"`
	Pos     [3]float64 `json:"pos"`
	Rot     [4]float64 `json:"rot"`
	Scale   float64    `json:"scale"`
	Opacity float64    `json:"opacity"`
	Visible bool       `json:"visible"`
}

// Engine is the frame-driven choreographer. One Step per rendered frame:
// it blends the control inputs into the explode factor and recomputes
// target transforms for every animated family. Single-threaded by
// design; all cross-thread input goes through Controls and the vision
// snapshot.
type Engine struct {
	controls  *Controls
	blender   *Blender
	particles *ParticleCloud
	ornaments *OrnamentSet
	dust      *DustCloud
	photos    *PhotoSet
	summoner  *Summoner

	galleryLerp float64
	rotation    float64
	elapsed     float64
}

// NewEngine creates an Engine with default population counts and the
// given controls holder.
func NewEngine(controls *Controls) *Engine {
	return &Engine{
		controls:  controls,
		blender:   NewBlender(),
		particles: NewParticleCloud(DefaultParticleCount, 1),
		ornaments: NewOrnamentSet(DefaultOrnamentCount),
		dust:      NewDustCloud(DefaultDustCount, 2),
		photos:    NewPhotoSet(nil),
		summoner:  NewSummoner(),
	}
}

// SetPhotos replaces the photo slots (opaque URL handles). The summon
// lifecycle is forced idle: a presented slot may not exist in the new
// set, and its snapshot origin no longer matches any slot geometry.
func (e *Engine) SetPhotos(urls []string) {
	e.photos.SetPhotos(urls)
	e.summoner.Reset(e.photos.Count())
}

// Step advances the whole scene by dt seconds using the tick's vision
// snapshot, and returns the wire frame.
func (e *Engine) Step(snap vision.Snapshot, dt float64) *Frame {
	in := e.controls.Consume()
	e.elapsed += dt

	explode := e.blender.Update(in.Manual, snap.Detected, snap.Openness, dt)

	galleryTarget := 0.0
	if in.GalleryMode {
		galleryTarget = 1.0
	}
	e.galleryLerp = clamp01(damp(e.galleryLerp, galleryTarget, galleryLerpRate, dt))

	e.rotation += autoRotateSpeed*dt + snap.RotateVel*rotateGestGain*dt + in.RotateDelta

	// Dust seeks the hand when tracked, the pointer while it is
	// active, and nothing otherwise.
	attractor := in.Pointer
	attract := in.PointerActive
	if snap.Detected {
		attractor = snap.HandPos
		attract = true
	}

	e.particles.Update(explode)
	e.ornaments.Update(explode, e.elapsed)
	e.dust.Update(explode, attractor, snap.Detected, attract, dt)
	e.photos.Update(explode, e.galleryLerp, e.rotation, e.elapsed, dt, e.blender.IsSnap(), in.HoverIndex)
	e.summoner.Update(snap.Confirmed, in.GalleryMode, e.photos, explode, e.elapsed, dt)

	return e.buildFrame(snap, explode)
}

func (e *Engine) buildFrame(snap vision.Snapshot, explode float64) *Frame {
	f := &Frame{
		Explode:     explode,
		GalleryLerp: e.galleryLerp,
		Rotation:    e.rotation,
		Gesture:     snap.Confirmed,
		IsSnap:      e.blender.IsSnap(),
		HandPos:     vec3Array(snap.HandPos),
		Detected:    snap.Detected,
		Photos:      make([]PhotoFrame, e.photos.Count()),
	}

	for i, t := range e.photos.Transforms() {
		f.Photos[i] = PhotoFrame{
			URL:   e.photos.URL(i),
			Pos:   vec3Array(t.Pos),
			Rot:   quatArray(t.Rot),
			Scale: t.Scale,
		}
	}

	if t, ok := e.summoner.Transform(); ok {
		idx, _ := e.summoner.Active()
		f.Summon = &SummonFrame{
			Index:   idx,
			URL:     e.photos.URL(idx),
			Pos:     vec3Array(t.Pos),
			Rot:     quatArray(t.Rot),
			Scale:   t.Scale,
			Opacity: easeOutCubic(e.summoner.Progress()),
			Visible: e.summoner.Visible(),
		}
	}

	return f
}

// Particles exposes the particle cloud for an in-process renderer.
func (e *Engine) Particles() *ParticleCloud {
	return e.particles
}

// Ornaments exposes the ornament set for an in-process renderer.
func (e *Engine) Ornaments() *OrnamentSet {
	return e.ornaments
}

// Dust exposes the dust cloud for an in-process renderer.
func (e *Engine) Dust() *DustCloud {
	return e.dust
}

// Photos exposes the photo set.
func (e *Engine) Photos() *PhotoSet {
	return e.photos
}

// Summoner exposes the summon lifecycle.
func (e *Engine) Summoner() *Summoner {
	return e.summoner
}

// Explode returns the current explode factor.
func (e *Engine) Explode() float64 {
	return e.blender.Value()
}

// GalleryLerp returns the current tree/gallery blend weight.
func (e *Engine) GalleryLerp() float64 {
	return e.galleryLerp
}

func vec3Array(v mgl64.Vec3) [3]float64 {
	return [3]float64{v.X(), v.Y(), v.Z()}
}

func quatArray(q mgl64.Quat) [4]float64 {
	return [4]float64{q.W, q.X(), q.Y(), q.Z()}
}
