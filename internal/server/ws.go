package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ayusman/deodar/internal/scene"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// SceneHub fans scene frames out to the connected rendering clients
// over WebSocket. The scene loop pushes; the hub never pulls.
type SceneHub struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewSceneHub creates an empty hub.
func NewSceneHub() *SceneHub {
	return &SceneHub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *SceneHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep the connection alive by reading (and discarding) messages.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Broadcast sends one scene frame to every connected client. A frame
// that fails to reach a client is dropped for that client; the next
// frame supersedes it anyway.
func (h *SceneHub) Broadcast(frame *scene.Frame) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.clients) == 0 {
		return
	}

	msg, err := json.Marshal(frame)
	if err != nil {
		return
	}

	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// ClientCount returns the number of connected clients.
func (h *SceneHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
