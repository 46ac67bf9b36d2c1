package clients

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ternarybob/arbor"

	"github.com/crictourney/pavilion/internal/common"
	"github.com/crictourney/pavilion/internal/models"
)

// ScheduleClient fetches match schedules from the scheduler service.
type ScheduleClient struct {
	http   *httpClient
	logger arbor.ILogger
}

func NewScheduleClient(cfg common.CollaboratorConfig, logger arbor.ILogger) *ScheduleClient {
	return &ScheduleClient{
		http:   newHTTPClient(cfg.SchedulerServiceURL, cfg.RequestTimeout.Duration(), logger),
		logger: logger,
	}
}

// ForTournament returns the scheduled matches of a single tournament.
func (c *ScheduleClient) ForTournament(ctx context.Context, actor models.ActorContext, tournamentID string) ([]models.Match, error) {
	path := "/schedules?tournament=" + url.QueryEscape(tournamentID)
	var matches []models.Match
	if err := c.http.getJSON(ctx, path, actor.Token, &matches); err != nil {
		return nil, fmt.Errorf("failed to fetch schedule for tournament %s: %w", tournamentID, err)
	}
	return matches, nil
}
