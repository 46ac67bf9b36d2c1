package models

// Tournament is the summary the tournament collaborator returns. Pavilion
// passes it through to the UI without owning or validating it.
type Tournament struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	EntryFee  float64 `json:"entryFee"`
	TeamLimit int     `json:"teamLimit"`
}

// Team is the summary the team collaborator returns for the actor's teams
type Team struct {
	ID          string `json:"id"`
	TeamName    string `json:"teamName"`
	CaptainName string `json:"captainName"`
	PlayerCount int    `json:"playerCount"`
}

// Match is one scheduled fixture, fetched per tournament as a follow-up action
type Match struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournamentId"`
	TeamA        string `json:"teamA"`
	TeamB        string `json:"teamB"`
	Venue        string `json:"venue"`
	StartTime    string `json:"startTime"`
}
