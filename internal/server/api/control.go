package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ayusman/deodar/internal/scene"
	"github.com/ayusman/deodar/internal/store"
)

// Tracker toggles camera tracking from the control API.
type Tracker interface {
	StartTracking() error
	StopTracking()
	IsTracking() bool
}

// ControlHandler handles HTTP requests for the manual scene controls.
type ControlHandler struct {
	controls *scene.Controls
	store    *store.Store
	tracker  Tracker
}

// NewControlHandler creates a new ControlHandler. store and tracker may
// be nil; the corresponding fields are then ignored.
func NewControlHandler(controls *scene.Controls, s *store.Store, tracker Tracker) *ControlHandler {
	return &ControlHandler{controls: controls, store: s, tracker: tracker}
}

type controlState struct {
	Manual      float64 `json:"manual"`
	GalleryMode bool    `json:"gallery_mode"`
	Sensitivity float64 `json:"sensitivity"`
	Tracking    bool    `json:"tracking"`
}

// controlRequest is a partial update: only the fields present in the
// request body are applied.
type controlRequest struct {
	Manual        *float64    `json:"manual"`
	GalleryMode   *bool       `json:"gallery_mode"`
	Sensitivity   *float64    `json:"sensitivity"`
	RotateDelta   *float64    `json:"rotate_delta"`
	Pointer       *[3]float64 `json:"pointer"`
	PointerActive *bool       `json:"pointer_active"`
	Hover         *int        `json:"hover"`
	Tracking      *bool       `json:"tracking"`
}

// ServeHTTP implements the http.Handler interface.
func (h *ControlHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPost:
		h.post(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ControlHandler) state() controlState {
	state := controlState{
		Manual:      h.controls.Manual(),
		GalleryMode: h.controls.GalleryMode(),
		Sensitivity: h.controls.Sensitivity(),
	}
	if h.tracker != nil {
		state.Tracking = h.tracker.IsTracking()
	}
	return state
}

// get handles GET /api/control and returns the current control state.
func (h *ControlHandler) get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.state())
}

// post handles POST /api/control and applies a partial update.
func (h *ControlHandler) post(w http.ResponseWriter, r *http.Request) {
	var req controlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Manual != nil {
		h.controls.SetManual(*req.Manual)
		if h.store != nil {
			h.store.Settings().SetFloat(store.SettingManual, h.controls.Manual())
		}
	}
	if req.GalleryMode != nil {
		h.controls.SetGalleryMode(*req.GalleryMode)
	}
	if req.Sensitivity != nil {
		h.controls.SetSensitivity(*req.Sensitivity)
		if h.store != nil {
			h.store.Settings().SetFloat(store.SettingSensitivity, h.controls.Sensitivity())
		}
	}
	if req.RotateDelta != nil {
		h.controls.AddRotateDrag(*req.RotateDelta)
	}
	if req.Pointer != nil || req.PointerActive != nil {
		active := true
		if req.PointerActive != nil {
			active = *req.PointerActive
		}
		var p mgl64.Vec3
		if req.Pointer != nil {
			p = mgl64.Vec3{req.Pointer[0], req.Pointer[1], req.Pointer[2]}
		}
		h.controls.SetPointer(p, active)
	}
	if req.Hover != nil {
		h.controls.SetHover(*req.Hover)
	}
	if req.Tracking != nil && h.tracker != nil {
		if *req.Tracking {
			if err := h.tracker.StartTracking(); err != nil {
				writeError(w, http.StatusInternalServerError, "Failed to start tracking")
				return
			}
		} else {
			h.tracker.StopTracking()
		}
	}

	writeJSON(w, http.StatusOK, h.state())
}
