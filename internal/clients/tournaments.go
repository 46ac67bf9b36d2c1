package clients

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/crictourney/pavilion/internal/common"
	"github.com/crictourney/pavilion/internal/models"
)

// TournamentClient lists tournaments from the CricTourney tournament service.
type TournamentClient struct {
	http   *httpClient
	logger arbor.ILogger
}

func NewTournamentClient(cfg common.CollaboratorConfig, logger arbor.ILogger) *TournamentClient {
	return &TournamentClient{
		http:   newHTTPClient(cfg.TournamentServiceURL, cfg.RequestTimeout.Duration(), logger),
		logger: logger,
	}
}

// ListAll returns every tournament currently open for registration.
func (c *TournamentClient) ListAll(ctx context.Context, actor models.ActorContext) ([]models.Tournament, error) {
	var tournaments []models.Tournament
	if err := c.http.getJSON(ctx, "/tournaments", actor.Token, &tournaments); err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return tournaments, nil
}
