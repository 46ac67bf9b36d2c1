package conversation

import (
	"github.com/crictourney/pavilion/internal/models"
)

// defaultSuggestions is shown on the first turn, before any submission
var defaultSuggestions = []string{
	"Show available tournaments",
	"How do I register a team?",
	"Show my teams",
	"What is CricTourney?",
	"View tournament schedule",
	"How does payment work?",
}

var tournamentFollowUps = []string{
	"Show my teams",
	"How do I register a team?",
	"View tournament schedule",
}

var teamFollowUps = []string{
	"Show available tournaments",
	"How to create a team?",
	"View payment history",
}

// Suggestions derives up to three follow-up suggestions from the last
// assistant response. Suggestions are presentation hints only; they are not
// part of any message's identity.
func (c *Conversation) Suggestions() []string {
	c.logMu.RLock()
	defer c.logMu.RUnlock()

	if !c.submitted {
		// First turn: the UI shows the full quick-action set
		return append([]string(nil), defaultSuggestions...)
	}

	if c.lastResponse != nil && c.lastResponse.Interactive {
		switch c.lastResponse.EntityType {
		case models.EntityTournaments:
			return append([]string(nil), tournamentFollowUps...)
		case models.EntityTeams:
			return append([]string(nil), teamFollowUps...)
		}
	}

	return append([]string(nil), defaultSuggestions[:3]...)
}
