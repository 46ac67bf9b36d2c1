package models

// Role is the authenticated user's role in CricTourney
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ActorContext identifies the user on whose behalf a query runs. It is derived
// from the auth collaborator at classification time and never cached across
// turns; a session may expire between turns.
type ActorContext struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"user_id,omitempty"`
	Name          string `json:"name,omitempty"`
	Role          Role   `json:"role,omitempty"`

	// Token is the opaque bearer token passed through to collaborator calls.
	// Never logged.
	Token string `json:"-"`
}

// Anonymous returns the actor context for an unauthenticated session
func Anonymous() ActorContext {
	return ActorContext{Authenticated: false}
}
