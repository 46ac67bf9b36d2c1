package models

import (
	"time"
)

// EntityType tags the kind of entities embedded in a Response
type EntityType string

const (
	EntityTournaments EntityType = "tournaments"
	EntityTeams       EntityType = "teams"
	EntityNone        EntityType = ""
)

// ActionType is the kind of follow-up an interactive Response carries
type ActionType string

const (
	// ActionRedirect sends the UI to a different view (login, payment history)
	ActionRedirect ActionType = "redirect"
	// ActionShowEntities renders the embedded entity list with per-entity operations
	ActionShowEntities ActionType = "show_entities"
)

// ActionDescriptor describes the follow-up operation attached to a Response
type ActionDescriptor struct {
	Type ActionType `json:"type"`
	URL  string     `json:"url,omitempty"` // Set for redirects only
}

// Response is the structured result of one assistant turn. Once created it is
// immutable; it is the unit appended to the conversation log.
type Response struct {
	AnswerText  string            `json:"answer"`
	Sources     []string          `json:"sources,omitempty"` // Matched document titles, corpus order
	Interactive bool              `json:"interactive"`
	Action      *ActionDescriptor `json:"action,omitempty"`
	EntityType  EntityType        `json:"entity_type,omitempty"`

	// Exactly one of these is populated, matching EntityType
	Tournaments []Tournament `json:"tournaments,omitempty"`
	Teams       []Team       `json:"teams,omitempty"`
}

// Author distinguishes the two sides of the conversation
type Author string

const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "assistant"
)

// ConversationMessage is one entry of the append-only conversation log
type ConversationMessage struct {
	ID        string    `json:"id"`
	Author    Author    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`

	// Response is set for assistant messages only
	Response *Response `json:"response,omitempty"`
}
