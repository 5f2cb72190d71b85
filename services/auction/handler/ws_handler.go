package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/brandonecarr/bidwars/internal/auctionerrors"
	"github.com/brandonecarr/bidwars/internal/events"
	"github.com/brandonecarr/bidwars/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WSHandler upgrades clients onto a session's event stream
type WSHandler struct {
	hub     *events.Hub
	service SessionServiceInterface
}

func NewWSHandler(hub *events.Hub, service SessionServiceInterface) *WSHandler {
	return &WSHandler{hub: hub, service: service}
}

// StreamHandler handles GET /ws/:code
func (h *WSHandler) StreamHandler(c *gin.Context) {
	code := utils.NormalizeSessionCode(c.Param("code"))
	if _, err := h.service.State(code); err != nil {
		utils.JSONError(c, http.StatusNotFound, auctionerrors.ErrNotFound, "game not found")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("StreamHandler: upgrade failed", map[string]any{"code": code, "error": err.Error()})
		return
	}

	h.hub.Register(code, conn)
	utils.Info("StreamHandler: client connected", map[string]any{"code": code})

	// Clients only listen; the read loop exists to notice disconnects.
	go func() {
		defer h.hub.Unregister(code, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
