package interfaces

import (
	"context"

	"github.com/crictourney/pavilion/internal/models"
)

// AuthService resolves the current actor from an opaque session token.
// CurrentActor never fails: any error or absent session yields an
// unauthenticated ActorContext.
type AuthService interface {
	CurrentActor(ctx context.Context, token string) models.ActorContext
}

// TournamentService is the remote tournament collaborator
type TournamentService interface {
	ListAll(ctx context.Context, actor models.ActorContext) ([]models.Tournament, error)
}

// TeamService is the remote team collaborator
type TeamService interface {
	ListMine(ctx context.Context, actor models.ActorContext) ([]models.Team, error)
}

// ScheduleService is the remote scheduler collaborator. The assistant never
// fetches schedules eagerly; the UI calls ForTournament as a follow-up keyed
// by tournament id.
type ScheduleService interface {
	ForTournament(ctx context.Context, actor models.ActorContext, tournamentID string) ([]models.Match, error)
}
