// Package api provides the HTTP API handlers for Deodar.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/deodar/internal/store"
)

// PhotosHandler handles HTTP requests for the photo library.
type PhotosHandler struct {
	store    *store.Store
	onChange func()
}

// NewPhotosHandler creates a new PhotosHandler with the given store.
// onChange, if non-nil, is invoked after every successful mutation.
func NewPhotosHandler(s *store.Store, onChange func()) *PhotosHandler {
	return &PhotosHandler{store: s, onChange: onChange}
}

// ServeHTTP implements the http.Handler interface and routes requests
// to the appropriate methods.
func (h *PhotosHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/photos or /api/photos/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/photos")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type createPhotoRequest struct {
	URL       string `json:"url"`
	Label     string `json:"label"`
	SortOrder int    `json:"sort_order"`
}

type updatePhotoRequest struct {
	URL       string `json:"url"`
	Label     string `json:"label"`
	SortOrder *int   `json:"sort_order"`
}

type photoResponse struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Label     string `json:"label"`
	SortOrder int    `json:"sort_order"`
	CreatedAt string `json:"created_at"`
}

type listPhotosResponse struct {
	Photos []photoResponse `json:"photos"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toResponse converts a store.Photo to a photoResponse.
func toResponse(p *store.Photo) photoResponse {
	return photoResponse{
		ID:        p.ID,
		URL:       p.URL,
		Label:     p.Label,
		SortOrder: p.SortOrder,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func (h *PhotosHandler) changed() {
	if h.onChange != nil {
		h.onChange()
	}
}

// list handles GET /api/photos and returns the whole library.
func (h *PhotosHandler) list(w http.ResponseWriter, r *http.Request) {
	photos, err := h.store.Photos().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list photos")
		return
	}

	response := listPhotosResponse{
		Photos: make([]photoResponse, 0, len(photos)),
	}
	for _, p := range photos {
		response.Photos = append(response.Photos, toResponse(p))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/photos/{id}.
func (h *PhotosHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	photo, err := h.store.Photos().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Photo not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get photo")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(photo))
}

// create handles POST /api/photos.
func (h *PhotosHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "URL is required")
		return
	}

	photo := &store.Photo{
		ID:        uuid.New().String(),
		URL:       req.URL,
		Label:     req.Label,
		SortOrder: req.SortOrder,
	}

	if err := h.store.Photos().Create(photo); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create photo")
		return
	}

	h.changed()
	writeJSON(w, http.StatusCreated, toResponse(photo))
}

// update handles PUT /api/photos/{id}.
func (h *PhotosHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	photo, err := h.store.Photos().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Photo not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get photo")
		return
	}

	var req updatePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.URL != "" {
		photo.URL = req.URL
	}
	if req.Label != "" {
		photo.Label = req.Label
	}
	if req.SortOrder != nil {
		photo.SortOrder = *req.SortOrder
	}

	if err := h.store.Photos().Update(photo); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update photo")
		return
	}

	h.changed()
	writeJSON(w, http.StatusOK, toResponse(photo))
}

// delete handles DELETE /api/photos/{id}.
func (h *PhotosHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Photos().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Photo not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete photo")
		return
	}

	h.changed()
	w.WriteHeader(http.StatusNoContent)
}
