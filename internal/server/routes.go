package server

import (
	"net/http"
	"strings"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// WebSocket route
	mux.HandleFunc("/ws", s.app.WSHandler.ServeWebSocket)

	// API routes - Conversations
	mux.HandleFunc("/api/conversations", s.app.ConversationHandler.CreateHandler) // POST - open a conversation
	mux.HandleFunc("/api/conversations/", s.handleConversationRoutes)             // GET/POST /{id}/messages, GET /{id}/suggestions

	// API routes - Assistant (stateless, no conversation log)
	mux.HandleFunc("/api/assistant/query", s.app.AssistantHandler.QueryHandler)

	// API routes - Corpus
	mux.HandleFunc("/api/corpus/topics", s.app.CorpusHandler.TopicsHandler)
	mux.HandleFunc("/api/corpus/stats", s.app.CorpusHandler.StatsHandler)

	// API routes - Schedule
	mux.HandleFunc("/api/schedule", s.app.ScheduleHandler.ScheduleHandler)

	// API routes - System
	mux.HandleFunc("/api/version", s.app.StatusHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.StatusHandler.HealthHandler)
	mux.HandleFunc("/api/status", s.app.StatusHandler.StatusEndpointHandler)

	return mux
}

// handleConversationRoutes dispatches /api/conversations/{id}/... subpaths
func (s *Server) handleConversationRoutes(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/conversations/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")

	if len(parts) != 2 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}

	switch parts[1] {
	case "messages":
		s.app.ConversationHandler.MessagesHandler(w, r)
	case "suggestions":
		s.app.ConversationHandler.SuggestionsHandler(w, r)
	default:
		http.NotFound(w, r)
	}
}
