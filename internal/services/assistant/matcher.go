package assistant

import (
	"strings"

	"github.com/crictourney/pavilion/internal/models"
)

// Match returns the corpus documents relevant to a query, in corpus order.
// A document matches when any of its keywords equals a query token or is a
// substring of the whole normalized query, or when the document title is a
// case-insensitive substring of the query.
//
// Keyword containment is deliberately substring-based rather than exact: a
// compound phrase like "how to register a team" still hits the keyword
// "register". The occasional false positive is the accepted cost of recall
// over a small corpus.
//
// There is no ranking. Each document is tested once, so the result holds no
// duplicates, and identical queries always yield identical results.
func Match(query string, docs []models.Document) []models.Document {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	if queryLower == "" {
		return nil
	}

	tokens := make(map[string]bool)
	for _, word := range strings.Fields(queryLower) {
		tokens[word] = true
	}

	var matches []models.Document
	for _, doc := range docs {
		if documentMatches(doc, queryLower, tokens) {
			matches = append(matches, doc)
		}
	}
	return matches
}

func documentMatches(doc models.Document, queryLower string, tokens map[string]bool) bool {
	for _, keyword := range doc.Keywords {
		if tokens[keyword] || strings.Contains(queryLower, keyword) {
			return true
		}
	}
	return strings.Contains(queryLower, strings.ToLower(doc.Title))
}
