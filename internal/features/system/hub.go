package system

import (
	"sync"

	"go-contacthub/internal/features/gsync"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// ProgressHub fans sync progress events out to every connected websocket
// client. Writes are serialized per hub; a failed write drops the client.
type ProgressHub struct {
	logger *zap.Logger

	clients map[*websocket.Conn]bool
	mu      sync.Mutex
}

func NewProgressHub(logger *zap.Logger) *ProgressHub {
	return &ProgressHub{
		logger:  logger,
		clients: make(map[*websocket.Conn]bool),
	}
}

func (h *ProgressHub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
}

func (h *ProgressHub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

// PublishProgress implements gsync.ProgressPublisher.
func (h *ProgressHub) PublishProgress(event gsync.ProgressEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			h.logger.Debug("dropping websocket client", zap.Error(err))
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// ClientCount is exposed for the health endpoint.
func (h *ProgressHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
