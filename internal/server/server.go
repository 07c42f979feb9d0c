// Package server provides the HTTP surface of Deodar: the control and
// photo APIs, the scene frame WebSocket and the camera preview stream.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/deodar/internal/capture"
	"github.com/ayusman/deodar/internal/scene"
	"github.com/ayusman/deodar/internal/server/api"
	"github.com/ayusman/deodar/internal/store"
)

// Tracker is the subset of the app the server needs to toggle camera
// tracking from the control API.
type Tracker interface {
	StartTracking() error
	StopTracking()
	IsTracking() bool
}

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	Camera    capture.Camera
	Controls  *scene.Controls
	Tracker   Tracker
	// OnPhotosChanged is invoked after the photo library is mutated so
	// the engine can reload its slots.
	OnPhotosChanged func()
}

// Server represents the Deodar HTTP server.
type Server struct {
	config Config
	mux    *http.ServeMux
	scene  *SceneHub
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		scene:  NewSceneHub(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// SceneHub returns the hub frames are broadcast through; wire the app's
// frame callback to its Broadcast method.
func (s *Server) SceneHub() *SceneHub {
	return s.scene
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Store != nil {
		photosHandler := api.NewPhotosHandler(s.config.Store, s.config.OnPhotosChanged)
		s.mux.Handle("/api/photos", photosHandler)
		s.mux.Handle("/api/photos/", photosHandler)
	}

	if s.config.Controls != nil {
		controlHandler := api.NewControlHandler(s.config.Controls, s.config.Store, s.config.Tracker)
		s.mux.Handle("/api/control", controlHandler)
	}

	s.mux.Handle("/api/scene", s.scene)

	if s.config.Camera != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Camera))
	}

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
