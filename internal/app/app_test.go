package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ayusman/deodar/internal/detector"
	"github.com/ayusman/deodar/internal/gesture"
	"github.com/ayusman/deodar/internal/scene"
	"github.com/ayusman/deodar/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	a := New(Config{})
	a.SetDetector(detector.NewMockDetector())
	t.Cleanup(a.Shutdown)
	return a
}

func TestApp_PublishTickStabilizesGesture(t *testing.T) {
	a := newTestApp(t)

	hands := []detector.HandLandmarks{detector.OpenPalmLandmarks()}
	for i := 0; i < gesture.StabilityFrames+2; i++ {
		a.publishTick(hands)
	}

	snap := a.VisionState().Latest()
	if !snap.Detected {
		t.Error("expected hand detected in snapshot")
	}
	if snap.Raw != gesture.OpenPalm {
		t.Errorf("expected raw %s, got %s", gesture.OpenPalm, snap.Raw)
	}
	if snap.Confirmed != gesture.OpenPalm {
		t.Errorf("expected confirmed %s after debounce, got %s", gesture.OpenPalm, snap.Confirmed)
	}
}

func TestApp_PublishTickHoldsThroughFlicker(t *testing.T) {
	a := newTestApp(t)

	palm := []detector.HandLandmarks{detector.OpenPalmLandmarks()}
	fist := []detector.HandLandmarks{detector.ClosedFistLandmarks()}

	for i := 0; i < gesture.StabilityFrames+2; i++ {
		a.publishTick(palm)
	}

	// A short fist run must not flip the confirmed gesture.
	for i := 0; i < gesture.StabilityFrames; i++ {
		a.publishTick(fist)
	}

	if got := a.VisionState().Latest().Confirmed; got != gesture.OpenPalm {
		t.Errorf("expected confirmed %s through flicker, got %s", gesture.OpenPalm, got)
	}
}

func TestApp_PublishTickNoHand(t *testing.T) {
	a := newTestApp(t)

	a.publishTick(nil)

	snap := a.VisionState().Latest()
	if snap.Detected {
		t.Error("expected no hand detected")
	}
	if snap.Raw != gesture.Idle {
		t.Errorf("expected raw %s, got %s", gesture.Idle, snap.Raw)
	}
}

func TestApp_StopTrackingPublishesIdle(t *testing.T) {
	a := newTestApp(t)

	hands := []detector.HandLandmarks{detector.OpenPalmLandmarks()}
	for i := 0; i < gesture.StabilityFrames+2; i++ {
		a.publishTick(hands)
	}

	a.StopTracking()

	snap := a.VisionState().Latest()
	if snap.Detected || snap.Confirmed != gesture.Idle {
		t.Errorf("expected idle snapshot after stop, got %+v", snap)
	}
	if a.IsTracking() {
		t.Error("expected tracking stopped")
	}
}

func TestApp_SceneLoopDeliversFrames(t *testing.T) {
	a := newTestApp(t)

	frames := make(chan *scene.Frame, 1)
	a.OnFrame(func(f *scene.Frame) {
		select {
		case frames <- f:
		default:
		}
	})

	a.StartScene()
	a.StartScene() // idempotent
	defer a.StopScene()

	select {
	case f := <-frames:
		if len(f.Photos) != scene.PlaceholderCount {
			t.Errorf("expected %d photo transforms, got %d", scene.PlaceholderCount, len(f.Photos))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no frame delivered by the scene loop")
	}

	a.StopScene()
	a.StopScene() // idempotent
}

func TestApp_LoadSettingsAppliesControls(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "deodar-app-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	st, err := store.New(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer st.Close()

	if err := st.Settings().SetFloat(store.SettingSensitivity, 2.5); err != nil {
		t.Fatalf("failed to set setting: %v", err)
	}
	if err := st.Settings().SetFloat(store.SettingManual, 0.4); err != nil {
		t.Fatalf("failed to set setting: %v", err)
	}

	a := New(Config{Store: st})
	a.SetDetector(detector.NewMockDetector())
	defer a.Shutdown()

	a.LoadSettings()

	if got := a.Controls().Sensitivity(); got != 2.5 {
		t.Errorf("expected sensitivity 2.5, got %f", got)
	}
	if got := a.Controls().Manual(); got != 0.4 {
		t.Errorf("expected manual 0.4, got %f", got)
	}
}

func TestApp_LoadPhotosMarksPending(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "deodar-app-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	st, err := store.New(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer st.Close()

	for _, p := range []*store.Photo{
		{ID: "a", URL: "u-a", SortOrder: 0},
		{ID: "b", URL: "u-b", SortOrder: 1},
	} {
		if err := st.Photos().Create(p); err != nil {
			t.Fatalf("failed to create photo: %v", err)
		}
	}

	a := New(Config{Store: st})
	a.SetDetector(detector.NewMockDetector())
	defer a.Shutdown()

	if err := a.LoadPhotos(); err != nil {
		t.Fatalf("LoadPhotos() error = %v", err)
	}

	// The scene goroutine is the only engine writer; the reload sits
	// pending until it runs.
	a.applyPendingPhotos()

	frames := make(chan *scene.Frame, 1)
	a.OnFrame(func(f *scene.Frame) {
		select {
		case frames <- f:
		default:
		}
	})
	a.StartScene()
	defer a.StopScene()

	select {
	case f := <-frames:
		if len(f.Photos) != 2 {
			t.Errorf("expected 2 photo transforms after reload, got %d", len(f.Photos))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no frame delivered by the scene loop")
	}
}
