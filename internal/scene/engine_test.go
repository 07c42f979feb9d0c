package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ayusman/deodar/internal/gesture"
	"github.com/ayusman/deodar/internal/vision"
)

func idleSnap() vision.Snapshot {
	return vision.Snapshot{Raw: gesture.Idle, Confirmed: gesture.Idle}
}

func TestEngine_StepProducesFrame(t *testing.T) {
	e := NewEngine(NewControls())

	frame := e.Step(idleSnap(), tick)

	if frame == nil {
		t.Fatal("expected a frame")
	}
	if len(frame.Photos) != PlaceholderCount {
		t.Errorf("expected %d photo transforms, got %d", PlaceholderCount, len(frame.Photos))
	}
	if frame.Explode < 0 || frame.Explode > 1 {
		t.Errorf("explode factor out of range: %f", frame.Explode)
	}
	if frame.Summon != nil {
		t.Error("expected no summon overlay at rest")
	}
}

func TestEngine_ManualExplode(t *testing.T) {
	controls := NewControls()
	e := NewEngine(controls)
	controls.SetManual(1)

	var frame *Frame
	for i := 0; i < 300; i++ {
		frame = e.Step(idleSnap(), tick)
	}

	if frame.Explode < 0.95 {
		t.Errorf("expected explode factor near 1 under manual control, got %f", frame.Explode)
	}
}

func TestEngine_GalleryBlendFollowsMode(t *testing.T) {
	controls := NewControls()
	e := NewEngine(controls)

	controls.SetGalleryMode(true)
	var frame *Frame
	for i := 0; i < 300; i++ {
		frame = e.Step(idleSnap(), tick)
	}
	if frame.GalleryLerp < 0.95 {
		t.Errorf("expected gallery blend near 1, got %f", frame.GalleryLerp)
	}

	controls.SetGalleryMode(false)
	for i := 0; i < 300; i++ {
		frame = e.Step(idleSnap(), tick)
	}
	if frame.GalleryLerp > 0.05 {
		t.Errorf("expected gallery blend to return near 0, got %f", frame.GalleryLerp)
	}
}

func TestEngine_AutoRotation(t *testing.T) {
	e := NewEngine(NewControls())

	a := e.Step(idleSnap(), tick).Rotation
	b := e.Step(idleSnap(), tick).Rotation

	if b <= a {
		t.Errorf("expected ambient rotation to advance: %f then %f", a, b)
	}
}

func TestEngine_GestureSteering(t *testing.T) {
	plain := NewEngine(NewControls())
	steered := NewEngine(NewControls())

	snap := idleSnap()
	snap.Detected = true
	snap.RotateVel = 1

	var plainRot, steeredRot float64
	for i := 0; i < 60; i++ {
		plainRot = plain.Step(idleSnap(), tick).Rotation
		steeredRot = steered.Step(snap, tick).Rotation
	}

	if steeredRot <= plainRot {
		t.Errorf("expected gesture steering to add rotation: %f vs %f", plainRot, steeredRot)
	}
}

func TestEngine_DragRotation(t *testing.T) {
	controls := NewControls()
	e := NewEngine(controls)

	before := e.Step(idleSnap(), tick).Rotation
	controls.AddRotateDrag(200)
	after := e.Step(idleSnap(), tick).Rotation

	delta := after - before
	want := 200 * dragRotateSensitivity
	if delta < want {
		t.Errorf("expected drag to add at least %f rotation, got %f", want, delta)
	}
}

func TestEngine_SetPhotosResizesFrame(t *testing.T) {
	e := NewEngine(NewControls())

	e.SetPhotos([]string{"a", "b", "c"})
	frame := e.Step(idleSnap(), tick)

	if len(frame.Photos) != 3 {
		t.Fatalf("expected 3 photo transforms, got %d", len(frame.Photos))
	}
	if frame.Photos[2].URL != "c" {
		t.Errorf("expected slot 2 URL %q, got %q", "c", frame.Photos[2].URL)
	}
}

func TestEngine_SetPhotosWhilePresenting(t *testing.T) {
	// Shrinking the photo library while a high slot is summoned must
	// not leave the summoner pointing past the new set.
	e := NewEngine(NewControls())

	victory := idleSnap()
	victory.Confirmed = gesture.Victory
	fist := idleSnap()
	fist.Confirmed = gesture.ClosedFist

	// Walk the round-robin past the shrunken size: summon, dismiss,
	// let the animation settle and the minimum interval lapse.
	for cycle := 0; cycle < 5; cycle++ {
		e.Step(victory, tick)
		for i := 0; i < int(2.0/tick); i++ {
			e.Step(fist, tick)
		}
		for i := 0; i < int((summonMinInterval+0.5)/tick); i++ {
			e.Step(idleSnap(), tick)
		}
	}

	frame := e.Step(victory, tick)
	if frame.Summon == nil || frame.Summon.Index != 5 {
		t.Fatalf("expected slot 5 summoned, got %+v", frame.Summon)
	}

	e.SetPhotos([]string{"a", "b", "c"})

	frame = e.Step(idleSnap(), tick)
	if frame.Summon != nil {
		t.Errorf("expected summon forced idle after reload, got %+v", frame.Summon)
	}
	if len(frame.Photos) != 3 {
		t.Errorf("expected 3 photo transforms, got %d", len(frame.Photos))
	}
}

func TestEngine_DustIgnoresInactivePointer(t *testing.T) {
	controls := NewControls()
	e := NewEngine(controls)

	start := e.Dust().Positions()[0]
	attractor := start.Add(mgl64.Vec3{1, 0, 0})

	// Pointer parked near the cloud but not active: no pull.
	controls.SetPointer(attractor, false)
	for i := 0; i < 120; i++ {
		e.Step(idleSnap(), tick)
	}
	if got := e.Dust().Positions()[0]; got != start {
		t.Fatalf("expected dust at rest with inactive pointer, moved %v -> %v", start, got)
	}

	controls.SetPointer(attractor, true)
	before := attractor.Sub(e.Dust().Positions()[0]).Len()
	for i := 0; i < 120; i++ {
		e.Step(idleSnap(), tick)
	}
	after := attractor.Sub(e.Dust().Positions()[0]).Len()
	if after >= before {
		t.Errorf("expected active pointer to pull dust in: before %f, after %f", before, after)
	}
}

func TestEngine_GalleryRoundTripRestoresTreeTargets(t *testing.T) {
	controls := NewControls()
	e := NewEngine(controls)

	controls.SetGalleryMode(true)
	for i := 0; i < 300; i++ {
		e.Step(idleSnap(), tick)
	}
	if e.GalleryLerp() < 0.95 {
		t.Fatalf("gallery blend did not open: %f", e.GalleryLerp())
	}

	controls.SetGalleryMode(false)
	for i := 0; i < 900; i++ {
		e.Step(idleSnap(), tick)
	}
	if e.GalleryLerp() > 0.01 {
		t.Fatalf("gallery blend did not settle: %f", e.GalleryLerp())
	}

	// Every photo must be back within epsilon of its tree slot at the
	// same explode factor (still 0 here, so targets are static).
	for i, tr := range e.Photos().Transforms() {
		want, _ := e.Photos().TreeTarget(i, e.Explode(), 0)
		if tr.Pos.Sub(want).Len() > 0.05 {
			t.Errorf("slot %d: expected position near %v, got %v", i, want, tr.Pos)
		}
		if diff := tr.Scale - leafScale; diff > 0.05 || diff < -0.05 {
			t.Errorf("slot %d: expected leaf scale, got %f", i, tr.Scale)
		}
	}
}

func TestEngine_SummonOverlay(t *testing.T) {
	e := NewEngine(NewControls())

	snap := idleSnap()
	snap.Confirmed = gesture.Victory
	frame := e.Step(snap, tick)

	if frame.Summon == nil {
		t.Fatal("expected summon overlay after a victory edge")
	}
	if frame.Summon.Index != 0 {
		t.Errorf("expected slot 0 summoned, got %d", frame.Summon.Index)
	}
	if !frame.Summon.Visible {
		t.Error("expected summoned photo visible")
	}
	if frame.Summon.Opacity < 0 || frame.Summon.Opacity > 1 {
		t.Errorf("summon opacity out of range: %f", frame.Summon.Opacity)
	}
}

func TestEngine_VictoryWithManualFullOpenHoldsSteady(t *testing.T) {
	// Manual at 1 while a victory is presented: the summon drifts the
	// openness anchor but the manual target keeps the formation pinned
	// open, with no oscillation.
	controls := NewControls()
	e := NewEngine(controls)
	controls.SetManual(1)

	snap := idleSnap()
	snap.Detected = true
	snap.Confirmed = gesture.Victory
	snap.Openness = 0.5

	for i := 0; i < 300; i++ {
		e.Step(snap, tick)
	}

	prev := e.Explode()
	for i := 0; i < 120; i++ {
		v := e.Step(snap, tick).Explode
		if v < prev {
			t.Fatalf("frame %d: explode factor oscillated from %f to %f", i, prev, v)
		}
		prev = v
	}
	if prev < 0.95 {
		t.Errorf("expected explode factor pinned near 1, got %f", prev)
	}
}
