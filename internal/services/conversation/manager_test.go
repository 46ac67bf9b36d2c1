package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crictourney/pavilion/internal/common"
	"github.com/crictourney/pavilion/internal/models"
)

func TestManager_SweepRemovesIdleConversations(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Conversation.IdleTTL = common.Duration(20 * time.Millisecond)
	manager := NewManager(&mockAssistant{}, nil, &cfg.Conversation, common.GetLogger())

	idle := manager.Create()
	time.Sleep(30 * time.Millisecond)
	active := manager.Create()

	manager.sweep()

	_, err := manager.Get(idle.ID())
	assert.Error(t, err, "idle conversation must be discarded")

	got, err := manager.Get(active.ID())
	require.NoError(t, err)
	assert.Same(t, active, got)
	assert.Equal(t, 1, manager.Count())
}

func TestManager_SweepKeepsRecentlyActive(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Conversation.IdleTTL = common.Duration(50 * time.Millisecond)
	manager := NewManager(&mockAssistant{}, nil, &cfg.Conversation, common.GetLogger())

	conv := manager.Create()
	time.Sleep(30 * time.Millisecond)
	conv.Submit(context.Background(), "keep me alive", models.Anonymous())
	time.Sleep(30 * time.Millisecond)

	// Created 60ms ago but active 30ms ago, inside the TTL
	manager.sweep()

	_, err := manager.Get(conv.ID())
	assert.NoError(t, err)
}

func TestManager_StartSweeperDisabledWithoutSchedule(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Conversation.SweepSchedule = ""
	manager := NewManager(&mockAssistant{}, nil, &cfg.Conversation, common.GetLogger())

	assert.NoError(t, manager.StartSweeper())
	manager.Stop()
}

func TestManager_StartSweeperRejectsBadSchedule(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Conversation.SweepSchedule = "not a schedule"
	manager := NewManager(&mockAssistant{}, nil, &cfg.Conversation, common.GetLogger())

	assert.Error(t, manager.StartSweeper())
}
