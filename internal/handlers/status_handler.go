package handlers

import (
	"net/http"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/crictourney/pavilion/internal/common"
	"github.com/crictourney/pavilion/internal/interfaces"
	"github.com/crictourney/pavilion/internal/services/conversation"
)

// StatusHandler serves version, health and status endpoints
type StatusHandler struct {
	corpusService interfaces.CorpusService
	manager       *conversation.Manager
	websocket     *WebSocketHandler
	logger        arbor.ILogger
	startedAt     time.Time
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(
	corpusService interfaces.CorpusService,
	manager *conversation.Manager,
	websocket *WebSocketHandler,
	logger arbor.ILogger,
) *StatusHandler {
	return &StatusHandler{
		corpusService: corpusService,
		manager:       manager,
		websocket:     websocket,
		logger:        logger,
		startedAt:     time.Now(),
	}
}

// VersionHandler handles GET /api/version requests
func (h *StatusHandler) VersionHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"service": "pavilion",
		"version": common.Version,
		"build":   common.Build,
		"commit":  common.GitCommit,
	})
}

// HealthHandler handles GET /api/health requests
func (h *StatusHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// StatusEndpointHandler handles GET /api/status requests
func (h *StatusHandler) StatusEndpointHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	stats := h.corpusService.Stats()

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"service":           "pavilion",
		"version":           common.Version,
		"uptime":            time.Since(h.startedAt).Round(time.Second).String(),
		"conversations":     h.manager.Count(),
		"websocket_clients": h.websocket.ClientCount(),
		"corpus":            stats,
	})
}
