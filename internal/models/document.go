package models

import (
	"time"
)

// Document is one entry of the knowledge corpus. Documents are loaded once at
// startup and never modified afterwards.
type Document struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Category string   `json:"category" yaml:"category"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Content  string   `json:"content" yaml:"content"`

	// Position preserves corpus order; the matcher returns documents in this
	// order, never ranked.
	Position int `json:"position" yaml:"-"`

	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

// Topic is the metadata view of a corpus document exposed by the topics API
type Topic struct {
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// CorpusStats summarises the loaded corpus
type CorpusStats struct {
	TotalDocuments       int            `json:"total_documents"`
	DocumentsByCategory  map[string]int `json:"documents_by_category"`
	AverageContentLength int            `json:"average_content_length"`
	LoadedAt             time.Time      `json:"loaded_at"`
}
