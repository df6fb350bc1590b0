package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/rfnaufal/snake-spectacle/internal/domain"
)

// Message types
const (
	MessageTypeScoreSubmitted = "score_submitted"
	MessageTypeLeaderboard    = "leaderboard"
	MessageTypePing           = "ping"
	MessageTypePong           = "pong"
	MessageTypeError          = "error"
)

// Message represents a WebSocket message sent to spectators
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub maintains the set of connected spectators and fans out leaderboard
// activity to them. There is a single broadcast group: every spectator sees
// every score.
type Hub struct {
	// Connected clients
	clients map[*Client]bool

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Outbound messages to all clients
	broadcast chan *Message

	mu sync.RWMutex

	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewHub creates a new Hub
func NewHub(logger *slog.Logger) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	h.logger.Info("spectator hub started")
	for {
		select {
		case <-h.ctx.Done():
			h.logger.Info("spectator hub stopping")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug("spectator connected", "client_id", client.id)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Debug("spectator disconnected", "client_id", client.id)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// Stop stops the hub
func (h *Hub) Stop() {
	h.cancel()
}

// broadcastMessage sends a message to every connected spectator
func (h *Hub) broadcastMessage(message *Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("failed to marshal message", "error", err)
		return
	}

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Client's buffer is full, skip
			h.logger.Warn("client buffer full, skipping", "client_id", client.id)
		}
	}
}

// BroadcastScore announces a freshly accepted leaderboard entry
func (h *Hub) BroadcastScore(entry domain.LeaderboardEntry) {
	message := &Message{
		Type:      MessageTypeScoreSubmitted,
		Data:      entry,
		Timestamp: time.Now(),
	}

	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("broadcast channel full, dropping message")
	}
}

// BroadcastLeaderboard pushes a full leaderboard snapshot
func (h *Hub) BroadcastLeaderboard(entries []domain.LeaderboardEntry) {
	message := &Message{
		Type:      MessageTypeLeaderboard,
		Data:      entries,
		Timestamp: time.Now(),
	}

	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("broadcast channel full, dropping message")
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// GetTotalConnections returns the total number of connected spectators
func (h *Hub) GetTotalConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
