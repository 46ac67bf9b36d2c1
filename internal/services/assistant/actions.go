package assistant

import (
	"context"

	"github.com/ternarybob/arbor"

	"github.com/crictourney/pavilion/internal/interfaces"
	"github.com/crictourney/pavilion/internal/models"
)

const (
	loginRequiredAnswer = "You need to be signed in for that. Please log in and try again."

	tournamentsFoundAnswer = "Here are the available tournaments you can join:"
	noTournamentsAnswer    = "No tournaments are open for registration right now."

	registrationPickAnswer = "Pick a tournament below to register your team:"

	teamsFoundAnswer = "Here are your teams:"
	noTeamsAnswer    = "You haven't registered any teams yet."

	schedulePickAnswer = "Select a tournament below to view its schedule:"

	paymentHistoryAnswer = "You can review all your past transactions on the Payment History page."
)

// ActionHandler resolves actionable queries against the external
// collaborators. Every path returns a valid Response: collaborator failures
// degrade to an empty entity list with a "nothing found" answer and are only
// visible in the logs.
type ActionHandler struct {
	tournamentService interfaces.TournamentService
	teamService       interfaces.TeamService
	logger            arbor.ILogger
}

// NewActionHandler creates a new actionable-query handler
func NewActionHandler(
	tournamentService interfaces.TournamentService,
	teamService interfaces.TeamService,
	logger arbor.ILogger,
) *ActionHandler {
	return &ActionHandler{
		tournamentService: tournamentService,
		teamService:       teamService,
		logger:            logger,
	}
}

// Handle resolves one actionable query for the given actor. When the actor is
// not authenticated no collaborator is called; the response redirects to the
// login view.
func (h *ActionHandler) Handle(ctx context.Context, action ActionKind, actor models.ActorContext) *models.Response {
	if !actor.Authenticated {
		return &models.Response{
			AnswerText:  loginRequiredAnswer,
			Interactive: false,
			Action:      &models.ActionDescriptor{Type: models.ActionRedirect, URL: "/login"},
			EntityType:  models.EntityNone,
		}
	}

	switch action {
	case ActionListTournaments:
		return h.tournamentList(ctx, actor, tournamentsFoundAnswer)
	case ActionStartTeamRegistration:
		return h.tournamentList(ctx, actor, registrationPickAnswer)
	case ActionShowSchedule:
		// The schedule itself is fetched as a follow-up keyed by tournament id
		return h.tournamentList(ctx, actor, schedulePickAnswer)
	case ActionListMyTeams:
		return h.myTeams(ctx, actor)
	case ActionShowPaymentHistory:
		return &models.Response{
			AnswerText:  paymentHistoryAnswer,
			Interactive: true,
			Action:      &models.ActionDescriptor{Type: models.ActionRedirect, URL: "/payment-history"},
			EntityType:  models.EntityNone,
		}
	default:
		h.logger.Warn().Str("action", string(action)).Msg("Unknown action kind, treating as empty result")
		return &models.Response{
			AnswerText:  noMatchAnswer,
			Interactive: false,
			EntityType:  models.EntityNone,
		}
	}
}

func (h *ActionHandler) tournamentList(ctx context.Context, actor models.ActorContext, foundAnswer string) *models.Response {
	tournaments, err := h.tournamentService.ListAll(ctx, actor)
	if err != nil {
		// Degrade to an empty list; the conversation never shows raw errors
		h.logger.Warn().Err(err).Msg("Tournament collaborator call failed")
		tournaments = nil
	}

	answer := foundAnswer
	if len(tournaments) == 0 {
		answer = noTournamentsAnswer
		tournaments = []models.Tournament{}
	}

	return &models.Response{
		AnswerText:  answer,
		Interactive: true,
		Action:      &models.ActionDescriptor{Type: models.ActionShowEntities},
		EntityType:  models.EntityTournaments,
		Tournaments: tournaments,
	}
}

func (h *ActionHandler) myTeams(ctx context.Context, actor models.ActorContext) *models.Response {
	teams, err := h.teamService.ListMine(ctx, actor)
	if err != nil {
		h.logger.Warn().Err(err).Str("user_id", actor.UserID).Msg("Team collaborator call failed")
		teams = nil
	}

	answer := teamsFoundAnswer
	if len(teams) == 0 {
		answer = noTeamsAnswer
		teams = []models.Team{}
	}

	return &models.Response{
		AnswerText:  answer,
		Interactive: true,
		Action:      &models.ActionDescriptor{Type: models.ActionShowEntities},
		EntityType:  models.EntityTeams,
		Teams:       teams,
	}
}
