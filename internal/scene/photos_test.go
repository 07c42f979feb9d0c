package scene

import (
	"math"
	"testing"
)

func TestPhotoSet_PlaceholderSlots(t *testing.T) {
	p := NewPhotoSet(nil)

	if p.Count() != PlaceholderCount {
		t.Errorf("expected %d placeholder slots, got %d", PlaceholderCount, p.Count())
	}
	if p.URL(0) != "" {
		t.Errorf("expected empty placeholder URL, got %q", p.URL(0))
	}
}

func TestPhotoSet_SetPhotos(t *testing.T) {
	p := NewPhotoSet(nil)

	p.SetPhotos([]string{"a", "b", "c"})

	if p.Count() != 3 {
		t.Errorf("expected 3 slots, got %d", p.Count())
	}
	if p.URL(1) != "b" {
		t.Errorf("expected slot 1 to hold %q, got %q", "b", p.URL(1))
	}
}

func TestPhotoSet_TreeTaper(t *testing.T) {
	// The spiral climbs with the slot index while the radius shrinks
	// toward the apex.
	p := NewPhotoSet(nil)

	lowPos, _ := p.TreeTarget(0, 0, 0)
	highPos, _ := p.TreeTarget(p.Count()-1, 0, 0)

	if highPos.Y() <= lowPos.Y() {
		t.Errorf("expected height to grow with slot index: %f vs %f", lowPos.Y(), highPos.Y())
	}

	lowR := math.Hypot(lowPos.X(), lowPos.Z())
	highR := math.Hypot(highPos.X(), highPos.Z())
	if highR >= lowR {
		t.Errorf("expected radius to shrink toward the apex: %f vs %f", lowR, highR)
	}
}

func TestPhotoSet_ExplodePushesOutward(t *testing.T) {
	p := NewPhotoSet(nil)

	docked, _ := p.TreeTarget(3, 0, 0)
	pushed, _ := p.TreeTarget(3, 1, 0)

	dockedR := math.Hypot(docked.X(), docked.Z())
	pushedR := math.Hypot(pushed.X(), pushed.Z())

	if pushedR <= dockedR {
		t.Errorf("expected explode to push the photo outward: %f vs %f", dockedR, pushedR)
	}
}

func TestPhotoSet_AssembledIsStill(t *testing.T) {
	// Below the bob gate the tree target must not depend on time.
	p := NewPhotoSet(nil)

	a, _ := p.TreeTarget(5, 0, 0)
	b, _ := p.TreeTarget(5, 0, 42.0)

	if a != b {
		t.Errorf("expected assembled target independent of time: %v vs %v", a, b)
	}
}

func TestPhotoSet_ExplodedBobs(t *testing.T) {
	p := NewPhotoSet(nil)

	a, _ := p.TreeTarget(5, 1, 0)
	b, _ := p.TreeTarget(5, 1, 0.7)

	if a.Y() == b.Y() {
		t.Error("expected exploded photos to bob over time")
	}
}

func TestPhotoSet_FirstUpdateSeedsAtTargets(t *testing.T) {
	// The first Update after a reload must not animate from garbage.
	p := NewPhotoSet(nil)

	p.Update(0, 0, 0, 0, tick, false, -1)

	for i, tr := range p.Transforms() {
		if tr.Scale != leafScale {
			t.Fatalf("slot %d: expected docked scale %f, got %f", i, leafScale, tr.Scale)
		}
		pos, _ := p.TreeTarget(i, 0, 0)
		if tr.Pos != pos {
			t.Fatalf("slot %d: expected seeded position %v, got %v", i, pos, tr.Pos)
		}
	}
}

func TestPhotoSet_GalleryFocusScale(t *testing.T) {
	// Rotation π/2 puts slot 0 exactly at the carousel's front angle.
	p := NewPhotoSet(nil)

	p.Update(0, 1, math.Pi/2, 0, tick, false, -1)

	transforms := p.Transforms()
	if transforms[0].Scale != galleryFocus {
		t.Errorf("expected front photo scale %f, got %f", galleryFocus, transforms[0].Scale)
	}
	if transforms[1].Scale != viewScale {
		t.Errorf("expected off-front photo scale %f, got %f", viewScale, transforms[1].Scale)
	}
}

func TestPhotoSet_HoverBoost(t *testing.T) {
	// Exploded tree, slot 2 hovered: it breathes like the rest but
	// scaled up by the boost factor.
	p := NewPhotoSet(nil)

	p.Update(1, 0, 0, 0, tick, false, 2)

	transforms := p.Transforms()
	base := viewScale + breathAmp*math.Sin(float64(2))
	want := base * hoverBoost
	if math.Abs(transforms[2].Scale-want) > 1e-9 {
		t.Errorf("expected hovered scale %f, got %f", want, transforms[2].Scale)
	}
}

func TestPhotoSet_TransformsConvergeToTargets(t *testing.T) {
	// After the explode factor settles, repeated updates converge every
	// slot back onto its tree target.
	p := NewPhotoSet(nil)

	// Start exploded, then snap home.
	p.Update(1, 0, 0, 0, tick, false, -1)
	for i := 0; i < 600; i++ {
		p.Update(0, 0, 0, 0, tick, true, -1)
	}

	for i, tr := range p.Transforms() {
		want, _ := p.TreeTarget(i, 0, 0)
		if tr.Pos.Sub(want).Len() > 0.01 {
			t.Fatalf("slot %d: expected position near %v, got %v", i, want, tr.Pos)
		}
		if math.Abs(tr.Scale-leafScale) > 0.01 {
			t.Fatalf("slot %d: expected scale near %f, got %f", i, leafScale, tr.Scale)
		}
	}
}

func TestPhotoSet_FocusIndexNearestFront(t *testing.T) {
	p := NewPhotoSet([]string{"a", "b", "c", "d"})

	// Slot 2 sits at angle π; rotation −π/2 brings it to the front.
	if got := p.focusIndex(-math.Pi / 2); got != 2 {
		t.Errorf("expected focus on slot 2, got %d", got)
	}
}
