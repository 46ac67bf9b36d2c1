package assistant

import (
	"strings"
)

// IntentKind separates queries answerable from the corpus from queries that
// need live data from a collaborator
type IntentKind string

const (
	IntentInformational IntentKind = "informational"
	IntentActionable    IntentKind = "actionable"
)

// ActionKind is the fixed set of actionable operations
type ActionKind string

const (
	ActionListTournaments       ActionKind = "list_tournaments"
	ActionListMyTeams           ActionKind = "list_my_teams"
	ActionShowSchedule          ActionKind = "show_schedule"
	ActionShowPaymentHistory    ActionKind = "show_payment_history"
	ActionStartTeamRegistration ActionKind = "start_team_registration"
)

// Intent is the classification result for one query
type Intent struct {
	Kind         IntentKind
	Action       ActionKind // Set when Kind == IntentActionable
	RequiresAuth bool       // Whether the actor must be signed in to proceed
}

// actionRule maps a group of trigger phrases to one action kind
type actionRule struct {
	action   ActionKind
	triggers []string
}

// actionRules is evaluated in order; the first rule with a matching trigger
// wins. Order is load-bearing: trigger phrases overlap ("register my team"
// contains "my team", "view tournament schedule" contains "tournament"), so
// the more specific registration and schedule rules must be tested before the
// team and tournament rules they overlap with.
var actionRules = []actionRule{
	{
		action:   ActionShowSchedule,
		triggers: []string{"view schedule", "show schedule", "tournament schedule", "match schedule", "see the schedule"},
	},
	{
		action:   ActionShowPaymentHistory,
		triggers: []string{"payment history", "my payments", "past payments"},
	},
	{
		action:   ActionStartTeamRegistration,
		triggers: []string{"register my team", "start registration", "start team registration", "sign up my team", "enter a tournament"},
	},
	{
		action:   ActionListMyTeams,
		triggers: []string{"my teams", "my team", "teams i registered"},
	},
	{
		action:   ActionListTournaments,
		triggers: []string{"show available tournaments", "available tournaments", "show tournaments", "list tournaments", "view tournaments", "upcoming tournaments", "open tournaments"},
	},
}

// Classify determines the intent of a user query. It is total and
// deterministic: every string resolves to exactly one Intent, and anything
// unrecognized falls back to an informational query so the pipeline always
// produces an answer.
func Classify(query string) Intent {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	if queryLower == "" {
		return Intent{Kind: IntentInformational}
	}

	for _, rule := range actionRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(queryLower, trigger) {
				return Intent{
					Kind:         IntentActionable,
					Action:       rule.action,
					RequiresAuth: true,
				}
			}
		}
	}

	return Intent{Kind: IntentInformational}
}
