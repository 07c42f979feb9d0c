package app

import (
	"log"
	"time"

	"github.com/ayusman/deodar/internal/detector"
	"github.com/ayusman/deodar/internal/vision"
)

// runPipeline is the vision loop: it reads camera frames, gates
// detection on motion, classifies and stabilizes the gesture, maps the
// hand pose, and publishes exactly one vision snapshot per tick.
//
// Pipeline logic:
//  1. Start at idle rate (5 FPS)
//  2. On motion, switch to active rate (15 FPS)
//  3. Run hand detection and gesture classification
//  4. After 2s without motion, fall back to idle rate
func (a *App) runPipeline(stopCh chan struct{}) {
	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			frame, err := a.camera.ReadFrame()
			if err != nil {
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()
				if !activeMode {
					activeMode = true
					a.camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode && time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
				activeMode = false
				a.camera.SetFPS(IdleFPS)
				frameInterval = time.Second / time.Duration(IdleFPS)
				ticker.Reset(frameInterval)
				log.Println("Switched to idle mode")
			}

			if !activeMode {
				// Idle mode skips detection, so the tick publishes as a
				// lost hand: a gesture held perfectly still decays once
				// the motion timeout lapses. MotionThresh tunes how much
				// movement keeps the pipeline active.
				frame.Close()
				a.publishTick(nil)
				continue
			}

			hands, err := a.Detector().Detect(frame)
			frame.Close()
			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				// Reuse the prior output rather than stalling the loop.
				continue
			}

			a.publishTick(hands)
		}
	}
}

// publishTick runs one classification/stabilization/mapping step and
// publishes the resulting snapshot. hands may be nil or empty: a frame
// without a hand is a valid tick, and the continuous outputs decay.
func (a *App) publishTick(hands []detector.HandLandmarks) {
	a.classifier.SetSensitivity(a.controls.Sensitivity())

	result := a.classifier.Classify(hands)
	confirmed := a.stabilizer.Observe(result.Gesture)

	var hand *detector.HandLandmarks
	if len(hands) > 0 {
		hand = &hands[0]
	}
	a.pose.Update(hand, confirmed)

	a.state.Publish(vision.Snapshot{
		Detected:  hand != nil,
		Raw:       result.Gesture,
		Confirmed: confirmed,
		Openness:  a.pose.Openness(),
		RotateVel: result.RotateVel,
		HandPos:   a.pose.Position(),
		Timestamp: time.Now(),
	})
}

// runScene is the frame loop: one engine step per tick at the scene
// rate, using the wall-clock delta, fanning each frame out to the
// registered callback.
func (a *App) runScene(stopCh chan struct{}) {
	ticker := time.NewTicker(time.Second / SceneFPS)
	defer ticker.Stop()

	last := time.Now()

	for {
		select {
		case <-stopCh:
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt <= 0 {
				continue
			}

			a.applyPendingPhotos()

			frame := a.engine.Step(a.state.Latest(), dt)

			if a.onFrame != nil {
				a.onFrame(frame)
			}
		}
	}
}

// applyPendingPhotos swaps a reloaded photo set into the engine from
// within the scene goroutine, which is the only place the engine may be
// touched.
func (a *App) applyPendingPhotos() {
	a.mu.Lock()
	dirty := a.photosDirty
	urls := a.pendingPhotos
	a.photosDirty = false
	a.pendingPhotos = nil
	a.mu.Unlock()

	if dirty {
		a.engine.SetPhotos(urls)
	}
}
