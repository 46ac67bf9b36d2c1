package conversation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crictourney/pavilion/internal/common"
	"github.com/crictourney/pavilion/internal/models"
)

// mockAssistant implements interfaces.AssistantService for testing
type mockAssistant struct {
	queryFunc func(ctx context.Context, query string, actor models.ActorContext) *models.Response
	mu        sync.Mutex
	calls     []string
}

func (m *mockAssistant) Query(ctx context.Context, query string, actor models.ActorContext) *models.Response {
	m.mu.Lock()
	m.calls = append(m.calls, query)
	m.mu.Unlock()

	if m.queryFunc != nil {
		return m.queryFunc(ctx, query, actor)
	}
	return &models.Response{AnswerText: "answer to " + query, Sources: []string{}}
}

// mockPublisher records every published message
type mockPublisher struct {
	mu        sync.Mutex
	published []models.ConversationMessage
}

func (m *mockPublisher) Publish(conversationID string, msg models.ConversationMessage) {
	m.mu.Lock()
	m.published = append(m.published, msg)
	m.mu.Unlock()
}

func (m *mockPublisher) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.published)
}

func newTestManager(assistant *mockAssistant, publisher *mockPublisher) *Manager {
	cfg := common.NewDefaultConfig()
	return NewManager(assistant, publisher, &cfg.Conversation, common.GetLogger())
}

func TestConversation_OpensWithGreeting(t *testing.T) {
	manager := newTestManager(&mockAssistant{}, &mockPublisher{})

	conv := manager.Create()

	msgs := conv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, models.AuthorAssistant, msgs[0].Author)
	assert.Equal(t, greetingText, msgs[0].Text)
	assert.Nil(t, msgs[0].Response)
	assert.Equal(t, StateIdle, conv.State())
}

func TestConversation_SubmitAppendsUserAndReply(t *testing.T) {
	assistant := &mockAssistant{}
	manager := newTestManager(assistant, &mockPublisher{})
	conv := manager.Create()

	reply := conv.Submit(context.Background(), "What is CricTourney?", models.Anonymous())

	require.NotNil(t, reply)
	assert.Equal(t, models.AuthorAssistant, reply.Author)
	assert.Equal(t, "answer to What is CricTourney?", reply.Text)
	require.NotNil(t, reply.Response)

	msgs := conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, models.AuthorAssistant, msgs[0].Author)
	assert.Equal(t, models.AuthorUser, msgs[1].Author)
	assert.Equal(t, "What is CricTourney?", msgs[1].Text)
	assert.Equal(t, models.AuthorAssistant, msgs[2].Author)
	assert.Equal(t, StateIdle, conv.State())
}

func TestConversation_BlankSubmitIsNoOp(t *testing.T) {
	assistant := &mockAssistant{}
	publisher := &mockPublisher{}
	manager := newTestManager(assistant, publisher)
	conv := manager.Create()

	before := publisher.count()

	assert.Nil(t, conv.Submit(context.Background(), "", models.Anonymous()))
	assert.Nil(t, conv.Submit(context.Background(), "   \t", models.Anonymous()))

	assert.Len(t, conv.Messages(), 1, "log must be unchanged")
	assert.Empty(t, assistant.calls)
	assert.Equal(t, before, publisher.count())
}

func TestConversation_InjectQueryIndistinguishableFromSubmit(t *testing.T) {
	manager := newTestManager(&mockAssistant{}, &mockPublisher{})
	conv := manager.Create()

	reply := conv.InjectQuery(context.Background(), "Show available tournaments", models.Anonymous())

	require.NotNil(t, reply)
	msgs := conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, models.AuthorUser, msgs[1].Author)
	assert.Equal(t, "Show available tournaments", msgs[1].Text)
}

func TestConversation_MessagesReturnsCopy(t *testing.T) {
	manager := newTestManager(&mockAssistant{}, &mockPublisher{})
	conv := manager.Create()

	msgs := conv.Messages()
	msgs[0].Text = "tampered"

	assert.Equal(t, greetingText, conv.Messages()[0].Text)
}

func TestConversation_PublishesEveryAppend(t *testing.T) {
	publisher := &mockPublisher{}
	manager := newTestManager(&mockAssistant{}, publisher)
	conv := manager.Create()

	conv.Submit(context.Background(), "hello there", models.Anonymous())

	// Greeting, user message, assistant reply
	assert.Equal(t, 3, publisher.count())
}

func TestConversation_ConcurrentSubmitsSerialize(t *testing.T) {
	manager := newTestManager(&mockAssistant{}, &mockPublisher{})
	conv := manager.Create()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conv.Submit(context.Background(), "concurrent query", models.Anonymous())
		}()
	}
	wg.Wait()

	msgs := conv.Messages()
	// Greeting plus a user/assistant pair per submission
	require.Len(t, msgs, 1+8*2)

	// Every user message must be immediately followed by an assistant reply
	for i := 1; i < len(msgs); i += 2 {
		assert.Equal(t, models.AuthorUser, msgs[i].Author)
		assert.Equal(t, models.AuthorAssistant, msgs[i+1].Author)
	}
}

func TestSuggestions_FirstTurnShowsFullSet(t *testing.T) {
	manager := newTestManager(&mockAssistant{}, &mockPublisher{})
	conv := manager.Create()

	assert.Equal(t, defaultSuggestions, conv.Suggestions())
}

func TestSuggestions_TournamentFollowUps(t *testing.T) {
	assistant := &mockAssistant{
		queryFunc: func(ctx context.Context, query string, actor models.ActorContext) *models.Response {
			return &models.Response{
				AnswerText:  "Here are the tournaments:",
				Interactive: true,
				EntityType:  models.EntityTournaments,
				Tournaments: []models.Tournament{{ID: "t1"}},
			}
		},
	}
	manager := newTestManager(assistant, &mockPublisher{})
	conv := manager.Create()

	conv.Submit(context.Background(), "show available tournaments", models.Anonymous())

	assert.Equal(t, tournamentFollowUps, conv.Suggestions())
}

func TestSuggestions_TeamFollowUps(t *testing.T) {
	assistant := &mockAssistant{
		queryFunc: func(ctx context.Context, query string, actor models.ActorContext) *models.Response {
			return &models.Response{
				AnswerText:  "Here are your teams:",
				Interactive: true,
				EntityType:  models.EntityTeams,
				Teams:       []models.Team{{ID: "team1"}},
			}
		},
	}
	manager := newTestManager(assistant, &mockPublisher{})
	conv := manager.Create()

	conv.Submit(context.Background(), "show my teams", models.Anonymous())

	assert.Equal(t, teamFollowUps, conv.Suggestions())
}

func TestSuggestions_NonInteractiveFallsBackToTopThree(t *testing.T) {
	manager := newTestManager(&mockAssistant{}, &mockPublisher{})
	conv := manager.Create()

	conv.Submit(context.Background(), "What is CricTourney?", models.Anonymous())

	assert.Equal(t, defaultSuggestions[:3], conv.Suggestions())
}

func TestManager_GetUnknownConversation(t *testing.T) {
	manager := newTestManager(&mockAssistant{}, &mockPublisher{})

	_, err := manager.Get("conv_missing")
	assert.Error(t, err)
}

func TestManager_CreateAndGet(t *testing.T) {
	manager := newTestManager(&mockAssistant{}, &mockPublisher{})

	conv := manager.Create()
	got, err := manager.Get(conv.ID())

	require.NoError(t, err)
	assert.Same(t, conv, got)
	assert.Equal(t, 1, manager.Count())
}

func TestConversation_LastActivityAdvances(t *testing.T) {
	manager := newTestManager(&mockAssistant{}, &mockPublisher{})
	conv := manager.Create()

	before := conv.LastActivity()
	time.Sleep(5 * time.Millisecond)
	conv.Submit(context.Background(), "ping", models.Anonymous())

	assert.True(t, conv.LastActivity().After(before))
}
