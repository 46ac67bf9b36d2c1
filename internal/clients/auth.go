package clients

import (
	"context"

	"github.com/ternarybob/arbor"

	"github.com/crictourney/pavilion/internal/common"
	"github.com/crictourney/pavilion/internal/models"
)

// AuthClient resolves the current session against the CricTourney user
// service. Resolution never fails from the caller's point of view: any
// transport or decode error collapses to an anonymous actor.
type AuthClient struct {
	http   *httpClient
	logger arbor.ILogger
}

func NewAuthClient(cfg common.CollaboratorConfig, logger arbor.ILogger) *AuthClient {
	return &AuthClient{
		http:   newHTTPClient(cfg.UserServiceURL, cfg.RequestTimeout.Duration(), logger),
		logger: logger,
	}
}

type currentUserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// CurrentActor returns the actor bound to the given bearer token. An empty
// token, an expired session or an unreachable user service all yield the
// anonymous actor rather than an error.
func (c *AuthClient) CurrentActor(ctx context.Context, token string) models.ActorContext {
	if token == "" {
		return models.Anonymous()
	}

	var user currentUserResponse
	if err := c.http.getJSON(ctx, "/users/me", token, &user); err != nil {
		c.logger.Debug().Err(err).Msg("Session resolution failed, treating actor as anonymous")
		return models.Anonymous()
	}
	if user.ID == "" {
		return models.Anonymous()
	}

	role := models.RoleUser
	if user.Role == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}

	return models.ActorContext{
		Authenticated: true,
		UserID:        user.ID,
		Name:          user.Name,
		Role:          role,
		Token:         token,
	}
}
