package events

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/brandonecarr/bidwars/utils"
)

// Hub fans events out to websocket clients grouped by session code.
// Slow or dead connections are dropped rather than blocking a broadcast.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]map[*websocket.Conn]bool // key: session code
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		conns: make(map[string]map[*websocket.Conn]bool),
	}
}

// Register adds a client connection to a session's broadcast group
func (h *Hub) Register(sessionCode string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conns[sessionCode] == nil {
		h.conns[sessionCode] = make(map[*websocket.Conn]bool)
	}
	h.conns[sessionCode][conn] = true
}

// Unregister removes a client connection and closes it
func (h *Hub) Unregister(sessionCode string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if group, ok := h.conns[sessionCode]; ok {
		delete(group, conn)
		if len(group) == 0 {
			delete(h.conns, sessionCode)
		}
	}
	conn.Close()
}

// Publish sends an event to every client of the session. Write failures
// evict the connection.
func (h *Hub) Publish(sessionCode, eventType string, payload map[string]any) {
	event := Event{Type: eventType, Payload: payload}

	h.mu.Lock()
	defer h.mu.Unlock()

	group := h.conns[sessionCode]
	for conn := range group {
		if err := conn.WriteJSON(event); err != nil {
			utils.Warn("dropping websocket client", map[string]any{
				"session": sessionCode,
				"event":   eventType,
				"error":   err.Error(),
			})
			conn.Close()
			delete(group, conn)
		}
	}
}

// ClientCount returns the number of clients connected for a session
func (h *Hub) ClientCount(sessionCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[sessionCode])
}
