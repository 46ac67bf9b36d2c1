package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/crictourney/pavilion/internal/interfaces"
)

// CorpusHandler exposes read-only views of the knowledge corpus
type CorpusHandler struct {
	corpusService interfaces.CorpusService
	logger        arbor.ILogger
}

// NewCorpusHandler creates a new corpus handler
func NewCorpusHandler(corpusService interfaces.CorpusService, logger arbor.ILogger) *CorpusHandler {
	return &CorpusHandler{
		corpusService: corpusService,
		logger:        logger,
	}
}

// TopicsHandler handles GET /api/corpus/topics requests
func (h *CorpusHandler) TopicsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	topics := h.corpusService.Topics()
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"topics": topics,
		"count":  len(topics),
	})
}

// StatsHandler handles GET /api/corpus/stats requests
func (h *CorpusHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, h.corpusService.Stats())
}
