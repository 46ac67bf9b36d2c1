package conversation

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/crictourney/pavilion/internal/common"
	"github.com/crictourney/pavilion/internal/interfaces"
)

// Manager owns all live conversations. Conversations are held in memory for
// the lifetime of the UI session and swept once they have been idle longer
// than the configured TTL.
type Manager struct {
	assistant interfaces.AssistantService
	publisher interfaces.ConversationPublisher
	config    *common.ConversationConfig
	logger    arbor.ILogger

	mu            sync.RWMutex
	conversations map[string]*Conversation

	cron    *cron.Cron
	sweepID cron.EntryID
}

// NewManager creates a new conversation manager
func NewManager(
	assistant interfaces.AssistantService,
	publisher interfaces.ConversationPublisher,
	config *common.ConversationConfig,
	logger arbor.ILogger,
) *Manager {
	return &Manager{
		assistant:     assistant,
		publisher:     publisher,
		config:        config,
		logger:        logger,
		conversations: make(map[string]*Conversation),
		cron:          cron.New(),
	}
}

// Create starts a new conversation and returns it
func (m *Manager) Create() *Conversation {
	var limiter *rate.Limiter
	if m.config.SubmitInterval > 0 {
		burst := m.config.SubmitBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Every(m.config.SubmitInterval.Duration()), burst)
	}

	conv := newConversation(common.NewConversationID(), m.assistant, m.publisher, limiter, m.logger)

	m.mu.Lock()
	m.conversations[conv.ID()] = conv
	m.mu.Unlock()

	m.logger.Debug().Str("conversation_id", conv.ID()).Msg("Conversation created")

	return conv
}

// Get returns the conversation with the given ID, or an error if it does not
// exist (or has been swept)
func (m *Manager) Get(id string) (*Conversation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	conv, ok := m.conversations[id]
	if !ok {
		return nil, fmt.Errorf("conversation not found: %s", id)
	}
	return conv, nil
}

// Count returns the number of live conversations
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conversations)
}

// StartSweeper schedules the idle-conversation sweep
func (m *Manager) StartSweeper() error {
	if m.config.SweepSchedule == "" || m.config.IdleTTL <= 0 {
		m.logger.Debug().Msg("Conversation sweeper disabled")
		return nil
	}

	id, err := m.cron.AddFunc(m.config.SweepSchedule, m.sweep)
	if err != nil {
		return fmt.Errorf("failed to schedule conversation sweeper: %w", err)
	}
	m.sweepID = id
	m.cron.Start()

	m.logger.Info().
		Str("schedule", m.config.SweepSchedule).
		Dur("idle_ttl", m.config.IdleTTL.Duration()).
		Msg("Conversation sweeper started")

	return nil
}

// Stop halts the sweeper
func (m *Manager) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
}

// sweep discards conversations that have been idle longer than the TTL
func (m *Manager) sweep() {
	cutoff := time.Now().Add(-m.config.IdleTTL.Duration())

	m.mu.Lock()
	removed := 0
	for id, conv := range m.conversations {
		if conv.LastActivity().Before(cutoff) {
			delete(m.conversations, id)
			removed++
		}
	}
	remaining := len(m.conversations)
	m.mu.Unlock()

	if removed > 0 {
		m.logger.Info().
			Int("removed", removed).
			Int("remaining", remaining).
			Msg("Idle conversations swept")
	}
}
