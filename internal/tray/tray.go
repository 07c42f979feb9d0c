// Package tray provides the system tray interface for the Deodar scene
// controller.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray application.
type Tray struct {
	onToggle   func(tracking bool)
	onSettings func()
	onQuit     func()
	tracking   bool
	mu         sync.RWMutex

	// Menu items stored for later updates
	menuToggle  *systray.MenuItem
	menuGesture *systray.MenuItem
}

// New creates a new Tray instance with tracking enabled by default.
func New() *Tray {
	return &Tray{
		tracking: true,
	}
}

// OnToggle sets the callback invoked when camera tracking is toggled.
func (t *Tray) OnToggle(fn func(tracking bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnSettings sets the callback invoked when the settings menu item is
// clicked.
func (t *Tray) OnSettings(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSettings = fn
}

// OnQuit sets the callback invoked when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("Deodar")
	systray.SetTooltip("Deodar Gesture Scene")

	t.menuToggle = systray.AddMenuItem("● Tracking", "Toggle camera tracking")
	systray.AddSeparator()

	t.menuGesture = systray.AddMenuItem("Gesture: idle", "Current confirmed gesture")
	t.menuGesture.Disable()
	systray.AddSeparator()

	menuSettings := systray.AddMenuItem("Open Scene...", "Open the scene in a browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Deodar")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuSettings.ClickedCh:
				t.handleSettings()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
}

// handleToggle handles the tracking toggle menu item click.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.tracking = !t.tracking
	tracking := t.tracking

	if tracking {
		t.menuToggle.SetTitle("● Tracking")
	} else {
		t.menuToggle.SetTitle("○ Paused")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(tracking)
	}
}

// handleSettings handles the settings menu item click.
func (t *Tray) handleSettings() {
	t.mu.RLock()
	callback := t.onSettings
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetGesture updates the confirmed gesture readout in the menu.
func (t *Tray) SetGesture(name string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuGesture != nil {
		if name == "" {
			t.menuGesture.SetTitle("Gesture: idle")
		} else {
			t.menuGesture.SetTitle("Gesture: " + name)
		}
	}
}

// IsTracking returns the current tracking toggle state.
func (t *Tray) IsTracking() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tracking
}
