package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crictourney/pavilion/internal/common"
	"github.com/crictourney/pavilion/internal/models"
	"github.com/crictourney/pavilion/internal/services/conversation"
)

// mockAuthService implements interfaces.AuthService for testing
type mockAuthService struct {
	actor models.ActorContext
}

func (m *mockAuthService) CurrentActor(ctx context.Context, token string) models.ActorContext {
	if token == "" {
		return models.Anonymous()
	}
	return m.actor
}

// mockAssistantService implements interfaces.AssistantService for testing
type mockAssistantService struct {
	response *models.Response
}

func (m *mockAssistantService) Query(ctx context.Context, query string, actor models.ActorContext) *models.Response {
	if m.response != nil {
		return m.response
	}
	return &models.Response{AnswerText: "answer to " + query, Sources: []string{}}
}

func newTestConversationHandler(assistant *mockAssistantService, auth *mockAuthService) (*ConversationHandler, *conversation.Manager) {
	cfg := common.NewDefaultConfig()
	manager := conversation.NewManager(assistant, nil, &cfg.Conversation, common.GetLogger())
	return NewConversationHandler(manager, auth, common.GetLogger()), manager
}

func TestCreateHandler(t *testing.T) {
	handler, _ := newTestConversationHandler(&mockAssistantService{}, &mockAuthService{})

	req := httptest.NewRequest("POST", "/api/conversations", nil)
	rec := httptest.NewRecorder()
	handler.CreateHandler(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

	assert.NotEmpty(t, response["id"])
	messages := response["messages"].([]interface{})
	require.Len(t, messages, 1, "new conversation opens with the greeting")
	suggestions := response["suggestions"].([]interface{})
	assert.Len(t, suggestions, 6)
}

func TestCreateHandler_WrongMethod(t *testing.T) {
	handler, _ := newTestConversationHandler(&mockAssistantService{}, &mockAuthService{})

	req := httptest.NewRequest("GET", "/api/conversations", nil)
	rec := httptest.NewRecorder()
	handler.CreateHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMessagesHandler_Get(t *testing.T) {
	handler, manager := newTestConversationHandler(&mockAssistantService{}, &mockAuthService{})
	conv := manager.Create()

	req := httptest.NewRequest("GET", "/api/conversations/"+conv.ID()+"/messages", nil)
	rec := httptest.NewRecorder()
	handler.MessagesHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, conv.ID(), response["id"])
	assert.Equal(t, "idle", response["state"])
	assert.Len(t, response["messages"].([]interface{}), 1)
}

func TestMessagesHandler_Post(t *testing.T) {
	handler, manager := newTestConversationHandler(&mockAssistantService{}, &mockAuthService{})
	conv := manager.Create()

	body := strings.NewReader(`{"text":"What is CricTourney?"}`)
	req := httptest.NewRequest("POST", "/api/conversations/"+conv.ID()+"/messages", body)
	rec := httptest.NewRecorder()
	handler.MessagesHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

	message := response["message"].(map[string]interface{})
	assert.Equal(t, "assistant", message["author"])
	assert.Equal(t, "answer to What is CricTourney?", message["text"])

	// Log now holds greeting, user message and reply
	assert.Len(t, conv.Messages(), 3)
}

func TestMessagesHandler_PostBlankTextLeavesLogUnchanged(t *testing.T) {
	handler, manager := newTestConversationHandler(&mockAssistantService{}, &mockAuthService{})
	conv := manager.Create()

	body := strings.NewReader(`{"text":"   "}`)
	req := httptest.NewRequest("POST", "/api/conversations/"+conv.ID()+"/messages", body)
	rec := httptest.NewRecorder()
	handler.MessagesHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, conv.Messages(), 1)
}

func TestMessagesHandler_PostInvalidBody(t *testing.T) {
	handler, manager := newTestConversationHandler(&mockAssistantService{}, &mockAuthService{})
	conv := manager.Create()

	body := strings.NewReader(`{invalid`)
	req := httptest.NewRequest("POST", "/api/conversations/"+conv.ID()+"/messages", body)
	rec := httptest.NewRecorder()
	handler.MessagesHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMessagesHandler_RateLimited(t *testing.T) {
	handler, manager := newTestConversationHandler(&mockAssistantService{}, &mockAuthService{})
	conv := manager.Create()

	// Exhaust the configured burst, then the next immediate request must be
	// rejected before reaching the assistant
	burst := common.NewDefaultConfig().Conversation.SubmitBurst
	for i := 0; i < burst; i++ {
		req := httptest.NewRequest("POST", "/api/conversations/"+conv.ID()+"/messages", strings.NewReader(`{"text":"ping"}`))
		rec := httptest.NewRecorder()
		handler.MessagesHandler(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest("POST", "/api/conversations/"+conv.ID()+"/messages", strings.NewReader(`{"text":"one too many"}`))
	rec := httptest.NewRecorder()
	handler.MessagesHandler(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestMessagesHandler_UnknownConversation(t *testing.T) {
	handler, _ := newTestConversationHandler(&mockAssistantService{}, &mockAuthService{})

	req := httptest.NewRequest("GET", "/api/conversations/conv_missing/messages", nil)
	rec := httptest.NewRecorder()
	handler.MessagesHandler(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSuggestionsHandler(t *testing.T) {
	handler, manager := newTestConversationHandler(&mockAssistantService{}, &mockAuthService{})
	conv := manager.Create()

	req := httptest.NewRequest("GET", "/api/conversations/"+conv.ID()+"/suggestions", nil)
	rec := httptest.NewRecorder()
	handler.SuggestionsHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Len(t, response["suggestions"].([]interface{}), 6)
}
