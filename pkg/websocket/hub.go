package websocket

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Hub owns the set of connected push channels. It is constructed in main
// and injected wherever broadcasts originate; there is no package-level
// registry.
type Hub struct {
	clients    map[*Client]bool
	Register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("push channel registered",
				zap.Uint64("userID", client.UserID),
				zap.String("role", client.Role),
			)
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Info("push channel closed", zap.Uint64("userID", client.UserID))
		}
	}
}

// ClientCount reports the number of registered channels.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastAll delivers an envelope to every connected channel,
// fire-and-forget. Channels with a full send buffer are dropped.
func (h *Hub) BroadcastAll(messageType string, data interface{}) {
	h.broadcast(messageType, data, func(*Client) bool { return true })
}

// BroadcastToRole delivers an envelope only to channels whose verified
// role matches.
func (h *Hub) BroadcastToRole(role string, messageType string, data interface{}) {
	h.broadcast(messageType, data, func(c *Client) bool { return c.Role == role })
}

func (h *Hub) broadcast(messageType string, data interface{}, match func(*Client) bool) {
	payload, err := json.Marshal(Envelope{Type: messageType, Data: data})
	if err != nil {
		h.logger.Error("failed to serialize push envelope", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if !match(client) {
			continue
		}
		select {
		case client.Send <- payload:
		default:
			delete(h.clients, client)
			close(client.Send)
		}
	}
}
