package clients

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/crictourney/pavilion/internal/common"
	"github.com/crictourney/pavilion/internal/models"
)

// TeamClient lists the actor's registered teams from the team service.
type TeamClient struct {
	http   *httpClient
	logger arbor.ILogger
}

func NewTeamClient(cfg common.CollaboratorConfig, logger arbor.ILogger) *TeamClient {
	return &TeamClient{
		http:   newHTTPClient(cfg.TeamServiceURL, cfg.RequestTimeout.Duration(), logger),
		logger: logger,
	}
}

// ListMine returns the teams the actor has registered. The team service
// scopes the result by the bearer token, so no user id is passed explicitly.
func (c *TeamClient) ListMine(ctx context.Context, actor models.ActorContext) ([]models.Team, error) {
	var teams []models.Team
	if err := c.http.getJSON(ctx, "/teams/my", actor.Token, &teams); err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}
