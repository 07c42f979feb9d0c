// Package app wires the Deodar pipeline together: camera capture, hand
// detection, gesture classification and stabilization, pose mapping,
// and the scene engine that choreographs the formation.
package app

import (
	"log"
	"sync"

	"github.com/ayusman/deodar/internal/capture"
	"github.com/ayusman/deodar/internal/detector"
	"github.com/ayusman/deodar/internal/gesture"
	"github.com/ayusman/deodar/internal/scene"
	"github.com/ayusman/deodar/internal/store"
	"github.com/ayusman/deodar/internal/vision"
)

// Pipeline timing constants.
const (
	// IdleFPS is the detection rate while no motion is present.
	IdleFPS = 5
	// ActiveFPS is the detection rate during active tracking.
	ActiveFPS = 15
	// IdleTimeoutMs is how long after the last motion the pipeline
	// falls back to idle rate.
	IdleTimeoutMs = 2000
	// SceneFPS is the scene engine step rate.
	SceneFPS = 60
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	CameraID     int
	MotionThresh float64
}

// App orchestrates the vision pipeline and the scene engine.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	classifier *gesture.Classifier
	stabilizer *gesture.Stabilizer
	pose       *vision.PoseMapper
	state      *vision.State
	controls   *scene.Controls
	engine     *scene.Engine

	// loaded is false when the landmark detector failed to initialize;
	// gesture input is then silently disabled and manual/pointer
	// control stays in charge.
	loaded bool

	onFrame func(*scene.Frame)

	mu            sync.Mutex
	trackStopCh   chan struct{}
	sceneStopCh   chan struct{}
	pendingPhotos []string
	photosDirty   bool
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // 1% pixel change
	}

	controls := scene.NewControls()

	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		motion:     capture.NewMotionDetector(motionThreshold),
		classifier: gesture.NewClassifier(),
		stabilizer: gesture.NewStabilizer(),
		pose:       vision.NewPoseMapper(),
		state:      vision.NewState(),
		controls:   controls,
		engine:     scene.NewEngine(controls),
	}

	// Try MediaPipe first; on failure degrade to the mock detector,
	// which never reports a hand, leaving pointer/manual control active.
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		a.loaded = true
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), gesture input disabled", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// Loaded reports whether the landmark detector initialized.
func (a *App) Loaded() bool {
	return a.loaded
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
	a.loaded = true
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// LoadPhotos loads the photo library from the store into the engine.
func (a *App) LoadPhotos() error {
	if a.config.Store == nil {
		return nil
	}

	urls, err := a.config.Store.Photos().URLs()
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.pendingPhotos = urls
	a.photosDirty = true
	a.mu.Unlock()

	log.Printf("Loaded %d photos from library", len(urls))
	return nil
}

// LoadSettings applies persisted settings to the controls.
func (a *App) LoadSettings() {
	if a.config.Store == nil {
		return
	}

	settings := a.config.Store.Settings()
	a.controls.SetSensitivity(settings.GetFloat(store.SettingSensitivity, 1.0))
	a.controls.SetManual(settings.GetFloat(store.SettingManual, 0))
}

// OnFrame registers the callback invoked with every scene frame.
// Must be set before StartScene.
func (a *App) OnFrame(fn func(*scene.Frame)) {
	a.onFrame = fn
}

// StartTracking opens the camera and starts the vision pipeline.
// Idempotent: a second call while running is a no-op.
func (a *App) StartTracking() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.trackStopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(IdleFPS)
	a.trackStopCh = make(chan struct{})
	go a.runPipeline(a.trackStopCh)

	log.Println("Tracking pipeline started")
	return nil
}

// StopTracking halts the vision pipeline and releases the camera.
// Idempotent; the device handle is always released.
func (a *App) StopTracking() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.trackStopCh != nil {
		close(a.trackStopCh)
		a.trackStopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Reset()
	a.stabilizer.Reset()

	// Downstream consumers must not keep acting on a stale hand.
	a.state.Publish(vision.Snapshot{
		Raw:       gesture.Idle,
		Confirmed: gesture.Idle,
	})

	log.Println("Tracking pipeline stopped")
}

// IsTracking reports whether the vision pipeline is running.
func (a *App) IsTracking() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.trackStopCh != nil
}

// StartScene starts the scene engine loop. Idempotent.
func (a *App) StartScene() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.sceneStopCh != nil {
		return
	}

	a.sceneStopCh = make(chan struct{})
	go a.runScene(a.sceneStopCh)
}

// StopScene halts the scene engine loop. Idempotent.
func (a *App) StopScene() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.sceneStopCh != nil {
		close(a.sceneStopCh)
		a.sceneStopCh = nil
	}
}

// Shutdown stops everything and releases all resources.
func (a *App) Shutdown() {
	a.StopScene()
	a.StopTracking()

	a.motion.Close()

	a.mu.Lock()
	d := a.detector
	a.mu.Unlock()
	if d != nil {
		if err := d.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.detector
}

// Controls returns the manual control holder.
func (a *App) Controls() *scene.Controls {
	return a.controls
}

// VisionState returns the shared vision snapshot holder.
func (a *App) VisionState() *vision.State {
	return a.state
}

// Stabilizer returns the gesture stabilizer.
func (a *App) Stabilizer() *gesture.Stabilizer {
	return a.stabilizer
}
