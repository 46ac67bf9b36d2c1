package corpus

import (
	"github.com/crictourney/pavilion/internal/models"
)

// defaultDocuments is the built-in CricTourney knowledge base, used when no
// corpus file is configured. Order matters: the matcher returns documents in
// this order.
func defaultDocuments() []models.Document {
	return []models.Document{
		{
			ID:       "doc_overview",
			Title:    "What is CricTourney",
			Category: "overview",
			Keywords: []string{"crictourney", "platform", "overview", "about", "cricket"},
			Content:  "CricTourney is a cricket tournament management platform that lets organizers create and run tournaments while captains register teams, track schedules, and pay entry fees online. It covers the full tournament lifecycle from team registration through scheduling to results.",
		},
		{
			ID:       "doc_roles",
			Title:    "User Roles and Permissions",
			Category: "accounts",
			Keywords: []string{"roles", "role", "admin", "captain", "permissions", "user"},
			Content:  "CricTourney has two roles. ADMIN users create tournaments, manage schedules, and verify team registrations from the Admin Dashboard. USER accounts act as team captains: they register teams, add players, pay entry fees, and follow their tournaments.",
		},
		{
			ID:       "doc_team_registration",
			Title:    "Team Registration",
			Category: "teams",
			Keywords: []string{"register", "registration", "team", "captain", "players", "join"},
			Content:  "A team is registered by its captain against a specific tournament. The captain fills in the team name and player list, pays the tournament entry fee, and waits for the organizer to verify the registration. Each tournament caps the number of teams via its team limit.",
		},
		{
			ID:       "doc_tournament_creation",
			Title:    "Tournament Creation",
			Category: "tournaments",
			Keywords: []string{"tournament", "create", "organizer", "venue", "entry"},
			Content:  "Tournaments are created by ADMIN users from the Admin Dashboard. A tournament has a name, a team limit, an entry fee, and a venue (street, state, district, city, pincode). Once created, it is open for team registration until the team limit is reached.",
		},
		{
			ID:       "doc_payments",
			Title:    "Payments and Entry Fees",
			Category: "payments",
			Keywords: []string{"payment", "payments", "razorpay", "fee", "fees", "refund", "pay"},
			Content:  "Entry fees are collected online through Razorpay at team registration time. The captain pays the tournament's entry fee during checkout, and every transaction is listed on the Payment History page. Refunds for cancelled tournaments are issued back through the same payment method.",
		},
		{
			ID:       "doc_formats",
			Title:    "Tournament Formats",
			Category: "tournaments",
			Keywords: []string{"format", "formats", "knockout", "league", "round-robin", "overs"},
			Content:  "CricTourney supports knockout and league (round-robin) formats. The organizer picks the format when building the schedule; match overs and venue details are configured per tournament.",
		},
		{
			ID:       "doc_scheduling",
			Title:    "Match Scheduling",
			Category: "tournaments",
			Keywords: []string{"scheduling", "fixtures", "matches", "schedule"},
			Content:  "Organizers build the match schedule once registration closes. Fixtures pair the verified teams according to the tournament format, and every fixture carries a venue and start time. Captains see the schedule for each tournament they have entered.",
		},
		{
			ID:       "doc_accounts",
			Title:    "Authentication and Accounts",
			Category: "accounts",
			Keywords: []string{"login", "signup", "account", "password", "token", "session"},
			Content:  "You sign up with an email address and password and sign in to receive a session token. The session expires after a period of inactivity, after which you must sign in again. All team and payment operations require a signed-in account.",
		},
		{
			ID:       "doc_requirements",
			Title:    "System Requirements",
			Category: "support",
			Keywords: []string{"requirements", "browser", "mobile", "system"},
			Content:  "CricTourney runs in any modern browser on desktop or mobile; no installation is needed. An internet connection is required for registration, payments, and live schedule updates.",
		},
		{
			ID:       "doc_support",
			Title:    "Getting Help",
			Category: "support",
			Keywords: []string{"help", "support", "contact", "issue", "problem"},
			Content:  "The Help Center answers common questions about tournaments, teams, and payments. For anything the assistant cannot answer, contact the tournament organizer or the CricTourney support team from the Help Center page.",
		},
	}
}
