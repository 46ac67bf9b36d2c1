package conversation

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/crictourney/pavilion/internal/common"
	"github.com/crictourney/pavilion/internal/interfaces"
	"github.com/crictourney/pavilion/internal/models"
)

// State is the controller state for a single conversation
type State string

const (
	// StateIdle means no query is being processed
	StateIdle State = "idle"
	// StateAwaiting means a submitted query is running through the pipeline
	StateAwaiting State = "awaiting"
)

const greetingText = "Hi! Ask me anything about our cricket tournament management platform!"

// Conversation owns one append-only message log and drives the assistant
// pipeline for each submitted query. Submissions are serialized: each runs to
// completion before the next begins, and every submission resolves to an
// assistant reply (there is no cancellation and no retry).
type Conversation struct {
	id        string
	assistant interfaces.AssistantService
	publisher interfaces.ConversationPublisher
	logger    arbor.ILogger
	limiter   *rate.Limiter

	// submitMu serializes Submit calls; logMu guards reads of the log while a
	// submission is appending to it.
	submitMu sync.Mutex
	logMu    sync.RWMutex

	messages     []models.ConversationMessage
	lastResponse *models.Response
	submitted    bool
	state        State
	lastActivity time.Time
}

func newConversation(
	id string,
	assistant interfaces.AssistantService,
	publisher interfaces.ConversationPublisher,
	limiter *rate.Limiter,
	logger arbor.ILogger,
) *Conversation {
	c := &Conversation{
		id:           id,
		assistant:    assistant,
		publisher:    publisher,
		limiter:      limiter,
		logger:       logger,
		state:        StateIdle,
		lastActivity: time.Now(),
	}

	// Every conversation opens with the assistant greeting
	c.append(models.ConversationMessage{
		ID:        common.NewMessageID(),
		Author:    models.AuthorAssistant,
		Text:      greetingText,
		Timestamp: time.Now(),
	})

	return c
}

// ID returns the conversation identifier
func (c *Conversation) ID() string {
	return c.id
}

// Submit runs one user query through the assistant pipeline and appends both
// the user message and the assistant reply to the log. Blank input is a local
// no-op: nothing is appended and no reply is produced. The returned message is
// the assistant reply, nil when the input was blank.
func (c *Conversation) Submit(ctx context.Context, text string, actor models.ActorContext) *models.ConversationMessage {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	c.submitMu.Lock()
	defer c.submitMu.Unlock()

	c.setState(StateAwaiting)
	defer c.setState(StateIdle)

	userMsg := models.ConversationMessage{
		ID:        common.NewMessageID(),
		Author:    models.AuthorUser,
		Text:      text,
		Timestamp: time.Now(),
	}
	c.append(userMsg)

	response := c.assistant.Query(ctx, text, actor)

	reply := models.ConversationMessage{
		ID:        common.NewMessageID(),
		Author:    models.AuthorAssistant,
		Text:      response.AnswerText,
		Timestamp: time.Now(),
		Response:  response,
	}
	c.append(reply)

	c.logMu.Lock()
	c.lastResponse = response
	c.submitted = true
	c.logMu.Unlock()

	c.logger.Debug().
		Str("conversation_id", c.id).
		Str("entity_type", string(response.EntityType)).
		Bool("interactive", response.Interactive).
		Msg("Conversation turn completed")

	return &reply
}

// InjectQuery submits a query on behalf of another UI surface (quick-action
// buttons). It is indistinguishable from Submit: the text appears as a
// user-authored message in the log.
func (c *Conversation) InjectQuery(ctx context.Context, text string, actor models.ActorContext) *models.ConversationMessage {
	return c.Submit(ctx, text, actor)
}

// Messages returns a copy of the message log
func (c *Conversation) Messages() []models.ConversationMessage {
	c.logMu.RLock()
	defer c.logMu.RUnlock()

	out := make([]models.ConversationMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// State returns the current controller state
func (c *Conversation) State() State {
	c.logMu.RLock()
	defer c.logMu.RUnlock()
	return c.state
}

// AllowSubmit reports whether the per-conversation rate limit permits another
// submission right now
func (c *Conversation) AllowSubmit() bool {
	if c.limiter == nil {
		return true
	}
	return c.limiter.Allow()
}

// LastActivity returns the time of the most recent append
func (c *Conversation) LastActivity() time.Time {
	c.logMu.RLock()
	defer c.logMu.RUnlock()
	return c.lastActivity
}

func (c *Conversation) append(msg models.ConversationMessage) {
	c.logMu.Lock()
	c.messages = append(c.messages, msg)
	c.lastActivity = time.Now()
	c.logMu.Unlock()

	if c.publisher != nil {
		c.publisher.Publish(c.id, msg)
	}
}

func (c *Conversation) setState(s State) {
	c.logMu.Lock()
	c.state = s
	c.logMu.Unlock()
}
