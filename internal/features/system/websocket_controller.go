package system

import (
	"github.com/gofiber/contrib/websocket"
)

type WebSocketController struct {
	hub *ProgressHub
}

func NewWebSocketController(hub *ProgressHub) *WebSocketController {
	return &WebSocketController{
		hub: hub,
	}
}

// HandleSyncProgress keeps the connection registered with the hub for the
// lifetime of the socket. Inbound messages are ignored; the stream is
// server-to-client only.
func (h *WebSocketController) HandleSyncProgress(c *websocket.Conn) {
	h.hub.Register(c)
	defer func() {
		h.hub.Unregister(c)
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
