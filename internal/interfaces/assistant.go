package interfaces

import (
	"context"

	"github.com/crictourney/pavilion/internal/models"
)

// AssistantService answers a single free-text query. Every query resolves to a
// Response; collaborator failures degrade to empty results rather than
// surfacing as errors.
type AssistantService interface {
	Query(ctx context.Context, query string, actor models.ActorContext) *models.Response
}

// CorpusService exposes the immutable knowledge corpus
type CorpusService interface {
	Documents() []models.Document
	Topics() []models.Topic
	Stats() models.CorpusStats
}

// ConversationPublisher receives every message appended to a conversation log.
// Used to push assistant turns to WebSocket subscribers.
type ConversationPublisher interface {
	Publish(conversationID string, msg models.ConversationMessage)
}
