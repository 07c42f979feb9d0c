package scene

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// dragRotateSensitivity converts pointer-drag pixels into radians of
// formation rotation.
const dragRotateSensitivity = 0.005

// Input is the manual control state consumed by one engine step.
// RotateDelta is the rotation accumulated from drag events since the
// previous step.
type Input struct {
	Manual        float64
	GalleryMode   bool
	Sensitivity   float64
	RotateDelta   float64
	Pointer       mgl64.Vec3
	PointerActive bool
	HoverIndex    int
}

// Controls is the thread-safe holder for manual input. HTTP handlers
// and the tray write into it; the engine drains it once per step.
type Controls struct {
	mu          sync.Mutex
	manual      float64
	gallery     bool
	sensitivity float64
	rotateDelta float64
	pointer     mgl64.Vec3
	pointerOn   bool
	hover       int
}

// NewControls creates Controls with neutral defaults.
func NewControls() *Controls {
	return &Controls{
		sensitivity: 1.0,
		hover:       -1,
	}
}

// SetManual sets the manual explode slider value, clamped to [0,1].
func (c *Controls) SetManual(v float64) {
	c.mu.Lock()
	c.manual = clamp01(v)
	c.mu.Unlock()
}

// SetGalleryMode toggles the gallery carousel formation.
func (c *Controls) SetGalleryMode(on bool) {
	c.mu.Lock()
	c.gallery = on
	c.mu.Unlock()
}

// SetSensitivity sets the rotation sensitivity, clamped to [0.5, 3.0].
func (c *Controls) SetSensitivity(s float64) {
	if s < 0.5 {
		s = 0.5
	}
	if s > 3.0 {
		s = 3.0
	}
	c.mu.Lock()
	c.sensitivity = s
	c.mu.Unlock()
}

// AddRotateDrag accumulates a pointer-drag delta, given in pixels.
func (c *Controls) AddRotateDrag(pixels float64) {
	c.mu.Lock()
	c.rotateDelta += pixels * dragRotateSensitivity
	c.mu.Unlock()
}

// SetPointer updates the pointer's projected world position and whether
// it is currently active (used as the dust attractor fallback).
func (c *Controls) SetPointer(p mgl64.Vec3, active bool) {
	c.mu.Lock()
	c.pointer = p
	c.pointerOn = active
	c.mu.Unlock()
}

// SetHover sets the index of the photo the pointer is over (-1 none).
func (c *Controls) SetHover(i int) {
	c.mu.Lock()
	c.hover = i
	c.mu.Unlock()
}

// Manual returns the current manual explode value.
func (c *Controls) Manual() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.manual
}

// GalleryMode returns the current gallery toggle.
func (c *Controls) GalleryMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gallery
}

// Sensitivity returns the current rotation sensitivity.
func (c *Controls) Sensitivity() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sensitivity
}

// Consume returns the control state for one engine step and drains the
// accumulated drag delta.
func (c *Controls) Consume() Input {
	c.mu.Lock()
	defer c.mu.Unlock()

	in := Input{
		Manual:        c.manual,
		GalleryMode:   c.gallery,
		Sensitivity:   c.sensitivity,
		RotateDelta:   c.rotateDelta,
		Pointer:       c.pointer,
		PointerActive: c.pointerOn,
		HoverIndex:    c.hover,
	}
	c.rotateDelta = 0
	return in
}
