package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/ayusman/deodar/internal/app"
	"github.com/ayusman/deodar/internal/gesture"
	"github.com/ayusman/deodar/internal/scene"
	"github.com/ayusman/deodar/internal/server"
	"github.com/ayusman/deodar/internal/store"
	"github.com/ayusman/deodar/internal/tray"
)

const listenAddr = ":8080"

func main() {
	fmt.Println("Deodar - Gesture-Driven Particle Scene")

	// Initialize the store
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dbDir := filepath.Join(homeDir, ".deodar")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dbDir, "deodar.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	cameraID := st.Settings().GetInt(store.SettingCameraID, 0)

	application := app.New(app.Config{
		Store:    st,
		CameraID: cameraID,
	})
	defer application.Shutdown()

	application.LoadSettings()
	if err := application.LoadPhotos(); err != nil {
		log.Printf("Failed to load photo library: %v", err)
	}

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	// Configure and start server
	srv := server.New(server.Config{
		StaticDir:       webDir,
		Store:           st,
		Camera:          application.Camera(),
		Controls:        application.Controls(),
		Tracker:         application,
		OnPhotosChanged: func() { application.LoadPhotos() },
	})

	// The tray owns the main goroutine; quitting it ends the process.
	t := tray.New()

	hub := srv.SceneHub()
	lastGesture := gesture.Idle
	application.OnFrame(func(frame *scene.Frame) {
		hub.Broadcast(frame)
		if frame.Gesture != lastGesture {
			lastGesture = frame.Gesture
			t.SetGesture(string(lastGesture))
		}
	})

	application.StartScene()
	if err := application.StartTracking(); err != nil {
		log.Printf("Camera unavailable (%v), manual control only", err)
	}

	go func() {
		fmt.Printf("Starting server on %s\n", listenAddr)
		if err := srv.ListenAndServe(listenAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	t.OnToggle(func(tracking bool) {
		if tracking {
			if err := application.StartTracking(); err != nil {
				log.Printf("Failed to start tracking: %v", err)
			}
		} else {
			application.StopTracking()
		}
	})
	t.OnSettings(func() {
		openBrowser("http://localhost" + listenAddr)
	})
	t.OnQuit(func() {
		application.Shutdown()
	})
	t.Run()
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		return
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.deodar/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".deodar", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
