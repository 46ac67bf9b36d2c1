package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/crictourney/pavilion/internal/interfaces"
	"github.com/crictourney/pavilion/internal/models"
)

// ScheduleHandler proxies match schedules from the scheduler collaborator
type ScheduleHandler struct {
	scheduleService interfaces.ScheduleService
	authService     interfaces.AuthService
	logger          arbor.ILogger
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(
	scheduleService interfaces.ScheduleService,
	authService interfaces.AuthService,
	logger arbor.ILogger,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		authService:     authService,
		logger:          logger,
	}
}

// ScheduleHandler handles GET /api/schedule?tournament={id} requests
func (h *ScheduleHandler) ScheduleHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	tournamentID := r.URL.Query().Get("tournament")
	if tournamentID == "" {
		WriteError(w, http.StatusBadRequest, "Tournament query parameter is required")
		return
	}

	actor := h.authService.CurrentActor(r.Context(), BearerToken(r))

	matches, err := h.scheduleService.ForTournament(r.Context(), actor, tournamentID)
	if err != nil {
		h.logger.Warn().Err(err).Str("tournament_id", tournamentID).Msg("Schedule fetch failed")
		matches = nil
	}
	if matches == nil {
		matches = []models.Match{}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"tournament": tournamentID,
		"matches":    matches,
		"count":      len(matches),
	})
}
