package handlers

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/ternarybob/arbor"

	"github.com/crictourney/pavilion/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// wsEvent is the envelope pushed to subscribers
type wsEvent struct {
	Type           string                     `json:"type"`
	ConversationID string                     `json:"conversation_id"`
	Message        models.ConversationMessage `json:"message"`
}

// WebSocketHandler pushes conversation messages to subscribed browser
// clients. A client subscribes to a single conversation by connecting to
// /ws?conversation={id}; clients without a conversation filter receive
// every message.
type WebSocketHandler struct {
	logger      arbor.ILogger
	clients     map[*websocket.Conn]string
	clientMutex map[*websocket.Conn]*sync.Mutex
	mu          sync.RWMutex
}

func NewWebSocketHandler(logger arbor.ILogger) *WebSocketHandler {
	return &WebSocketHandler{
		logger:      logger,
		clients:     make(map[*websocket.Conn]string),
		clientMutex: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// ServeWebSocket handles GET /ws requests
func (h *WebSocketHandler) ServeWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to upgrade websocket connection")
		return
	}

	conversationID := r.URL.Query().Get("conversation")

	h.mu.Lock()
	h.clients[conn] = conversationID
	h.clientMutex[conn] = &sync.Mutex{}
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Debug().
		Str("conversation_id", conversationID).
		Int("client_count", count).
		Msg("WebSocket client connected")

	// Read loop exists only to detect disconnects, inbound frames are ignored
	go h.readLoop(conn)
}

func (h *WebSocketHandler) readLoop(conn *websocket.Conn) {
	defer h.remove(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *WebSocketHandler) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	delete(h.clientMutex, conn)
	count := len(h.clients)
	h.mu.Unlock()

	conn.Close()
	h.logger.Debug().Int("client_count", count).Msg("WebSocket client disconnected")
}

// Publish sends a conversation message to every subscriber of that
// conversation. Implements interfaces.ConversationPublisher.
func (h *WebSocketHandler) Publish(conversationID string, msg models.ConversationMessage) {
	event := wsEvent{
		Type:           "conversation_message",
		ConversationID: conversationID,
		Message:        msg,
	}

	h.mu.RLock()
	targets := make([]*websocket.Conn, 0, len(h.clients))
	mutexes := make([]*sync.Mutex, 0, len(h.clients))
	for conn, filter := range h.clients {
		if filter == "" || filter == conversationID {
			targets = append(targets, conn)
			mutexes = append(mutexes, h.clientMutex[conn])
		}
	}
	h.mu.RUnlock()

	for i, conn := range targets {
		mutexes[i].Lock()
		err := conn.WriteJSON(event)
		mutexes[i].Unlock()
		if err != nil {
			h.logger.Debug().Err(err).Msg("WebSocket write failed, dropping client")
			h.remove(conn)
		}
	}
}

// ClientCount returns the number of connected clients
func (h *WebSocketHandler) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
