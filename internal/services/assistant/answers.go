package assistant

import (
	"strings"

	"github.com/crictourney/pavilion/internal/models"
)

// answerTemplate is the closed set of answer shapes. Selection is exhaustive
// and deterministic: identical query and matches always produce identical text.
type answerTemplate int

const (
	templateHowTo answerTemplate = iota
	templateDefinition
	templateGeneral
)

const noMatchAnswer = "I don't have specific information about that topic in my knowledge base. Could you try asking about CricTourney's features, authentication, team management, tournaments, payments, or technical details?"

// Fixed procedural answers carried over from the product help copy. The how-to
// template prepends these to the matched document body.
const (
	registrationStepsAnswer = "To register a team in CricTourney: 1) Login as a captain or create an account, 2) Navigate to team registration, 3) Fill team details and add players, 4) Complete payment via Razorpay for entry fee, 5) Wait for team verification."

	tournamentCreationAnswer = "To create a tournament in CricTourney: 1) Login with ADMIN role, 2) Go to Admin Dashboard, 3) Fill the 'Create a New Tournament' form with: Tournament Name, Team Limit, Entry Fee, Venue details (street, state, district, city, pincode), 4) Click 'Create Tournament', 5) Teams can then register and you can build the schedule from the dashboard."
)

// Assemble turns a query and its matched documents into an informational
// Response. Informational responses are never interactive and carry no
// entities; sources are always the ordered matched titles.
func Assemble(query string, matches []models.Document) *models.Response {
	if len(matches) == 0 {
		return &models.Response{
			AnswerText:  noMatchAnswer,
			Sources:     []string{},
			Interactive: false,
			EntityType:  models.EntityNone,
		}
	}

	sources := make([]string, 0, len(matches))
	for _, doc := range matches {
		sources = append(sources, doc.Title)
	}

	var answer string
	switch selectTemplate(query) {
	case templateHowTo:
		answer = renderHowTo(query, matches)
	case templateDefinition:
		answer = renderDefinition(matches)
	default:
		answer = renderGeneral(matches)
	}

	return &models.Response{
		AnswerText:  answer,
		Sources:     sources,
		Interactive: false,
		EntityType:  models.EntityNone,
	}
}

func selectTemplate(query string) answerTemplate {
	queryLower := strings.ToLower(query)
	switch {
	case strings.Contains(queryLower, "how to") || strings.Contains(queryLower, "how do"):
		return templateHowTo
	case strings.Contains(queryLower, "what is") || strings.Contains(queryLower, "what are"):
		return templateDefinition
	default:
		return templateGeneral
	}
}

// renderHowTo has two specialized branches for the procedures users ask about
// most, falling back to the matched document body otherwise
func renderHowTo(query string, matches []models.Document) string {
	queryLower := strings.ToLower(query)
	body := matches[0].Content

	if strings.Contains(queryLower, "register") || strings.Contains(queryLower, "create team") {
		return registrationStepsAnswer + " " + body
	}
	if strings.Contains(queryLower, "tournament") || strings.Contains(queryLower, "create") {
		return tournamentCreationAnswer
	}
	return "Based on the available information: " + body
}

// renderDefinition returns the first matched document body verbatim
func renderDefinition(matches []models.Document) string {
	return matches[0].Content
}

func renderGeneral(matches []models.Document) string {
	answer := matches[0].Content
	if len(matches) > 1 {
		answer += " Additionally, " + matches[1].Content
	}
	return answer
}
