package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ternarybob/arbor"

	"github.com/crictourney/pavilion/internal/interfaces"
)

// AssistantHandler handles stateless assistant query requests
type AssistantHandler struct {
	assistantService interfaces.AssistantService
	authService      interfaces.AuthService
	logger           arbor.ILogger
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(
	assistantService interfaces.AssistantService,
	authService interfaces.AuthService,
	logger arbor.ILogger,
) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
		authService:      authService,
		logger:           logger,
	}
}

type queryRequest struct {
	Query string `json:"query"`
}

// QueryHandler handles POST /api/assistant/query requests. Unlike the
// conversation endpoints it keeps no history, each call is answered in
// isolation.
func (h *AssistantHandler) QueryHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode query request")
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Query == "" {
		WriteError(w, http.StatusBadRequest, "Query field is required")
		return
	}

	actor := h.authService.CurrentActor(r.Context(), BearerToken(r))

	h.logger.Info().
		Int("query_length", len(req.Query)).
		Str("authenticated", strconv.FormatBool(actor.Authenticated)).
		Msg("Processing assistant query")

	response := h.assistantService.Query(r.Context(), req.Query, actor)
	WriteJSON(w, http.StatusOK, response)
}
