package assistant

import (
	"context"

	"github.com/ternarybob/arbor"

	"github.com/crictourney/pavilion/internal/interfaces"
	"github.com/crictourney/pavilion/internal/models"
)

// Service is the assistant query engine: classification, retrieval and
// response assembly for one free-text query at a time.
type Service struct {
	corpus  interfaces.CorpusService
	actions *ActionHandler
	logger  arbor.ILogger
}

// NewService creates a new assistant service
func NewService(corpus interfaces.CorpusService, actions *ActionHandler, logger arbor.ILogger) *Service {
	return &Service{
		corpus:  corpus,
		actions: actions,
		logger:  logger,
	}
}

// Query answers a single user query. Actionable intents are resolved against
// the collaborators; everything else is answered from the corpus. Query always
// returns a Response.
func (s *Service) Query(ctx context.Context, query string, actor models.ActorContext) *models.Response {
	intent := Classify(query)

	s.logger.Debug().
		Str("intent", string(intent.Kind)).
		Str("action", string(intent.Action)).
		Bool("authenticated", actor.Authenticated).
		Int("query_length", len(query)).
		Msg("Query classified")

	if intent.Kind == IntentActionable {
		return s.actions.Handle(ctx, intent.Action, actor)
	}

	matches := Match(query, s.corpus.Documents())

	s.logger.Debug().
		Int("matches", len(matches)).
		Msg("Corpus retrieval complete")

	return Assemble(query, matches)
}
