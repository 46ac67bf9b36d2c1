package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/crictourney/pavilion/internal/interfaces"
	"github.com/crictourney/pavilion/internal/services/conversation"
)

// ConversationHandler handles conversation-related HTTP requests
type ConversationHandler struct {
	manager     *conversation.Manager
	authService interfaces.AuthService
	logger      arbor.ILogger
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(
	manager *conversation.Manager,
	authService interfaces.AuthService,
	logger arbor.ILogger,
) *ConversationHandler {
	return &ConversationHandler{
		manager:     manager,
		authService: authService,
		logger:      logger,
	}
}

// CreateHandler handles POST /api/conversations requests
func (h *ConversationHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	conv := h.manager.Create()
	h.logger.Info().Str("conversation_id", conv.ID()).Msg("Conversation created")

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"id":          conv.ID(),
		"messages":    conv.Messages(),
		"suggestions": conv.Suggestions(),
	})
}

// MessagesHandler dispatches GET and POST /api/conversations/{id}/messages
func (h *ConversationHandler) MessagesHandler(w http.ResponseWriter, r *http.Request) {
	conv, ok := h.lookup(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"id":       conv.ID(),
			"state":    conv.State(),
			"messages": conv.Messages(),
		})
	case http.MethodPost:
		h.submit(w, r, conv)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type submitRequest struct {
	Text string `json:"text"`
}

func (h *ConversationHandler) submit(w http.ResponseWriter, r *http.Request, conv *conversation.Conversation) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode submit request")
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !conv.AllowSubmit() {
		WriteError(w, http.StatusTooManyRequests, "Too many submissions, slow down")
		return
	}

	actor := h.authService.CurrentActor(r.Context(), BearerToken(r))

	reply := conv.Submit(r.Context(), req.Text, actor)
	if reply == nil {
		// Blank input is silently ignored, the log is unchanged
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"id":       conv.ID(),
			"state":    conv.State(),
			"messages": conv.Messages(),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"id":          conv.ID(),
		"state":       conv.State(),
		"message":     reply,
		"suggestions": conv.Suggestions(),
	})
}

// SuggestionsHandler handles GET /api/conversations/{id}/suggestions requests
func (h *ConversationHandler) SuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	conv, ok := h.lookup(w, r)
	if !ok {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": conv.Suggestions(),
	})
}

func (h *ConversationHandler) lookup(w http.ResponseWriter, r *http.Request) (*conversation.Conversation, bool) {
	id := PathSegment(r, "/api/conversations/", 0)
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Conversation id is required")
		return nil, false
	}

	conv, err := h.manager.Get(id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Conversation not found")
		return nil, false
	}
	return conv, true
}
