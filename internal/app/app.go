package app

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/crictourney/pavilion/internal/clients"
	"github.com/crictourney/pavilion/internal/common"
	"github.com/crictourney/pavilion/internal/handlers"
	"github.com/crictourney/pavilion/internal/interfaces"
	"github.com/crictourney/pavilion/internal/services/assistant"
	"github.com/crictourney/pavilion/internal/services/conversation"
	"github.com/crictourney/pavilion/internal/services/corpus"
	storagebadger "github.com/crictourney/pavilion/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	StorageManager interfaces.StorageManager

	// Core services
	CorpusService       interfaces.CorpusService
	AssistantService    interfaces.AssistantService
	ConversationManager *conversation.Manager

	// Collaborator clients
	AuthService       interfaces.AuthService
	TournamentService interfaces.TournamentService
	TeamService       interfaces.TeamService
	ScheduleService   interfaces.ScheduleService

	// HTTP handlers
	ConversationHandler *handlers.ConversationHandler
	AssistantHandler    *handlers.AssistantHandler
	CorpusHandler       *handlers.CorpusHandler
	ScheduleHandler     *handlers.ScheduleHandler
	StatusHandler       *handlers.StatusHandler
	WSHandler           *handlers.WebSocketHandler
}

// New creates the application with all services wired
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	if err := a.initStorage(); err != nil {
		return nil, err
	}

	if err := a.initServices(); err != nil {
		return nil, err
	}

	a.initHandlers()

	logger.Info().Msg("Application initialized")
	return a, nil
}

func (a *App) initStorage() error {
	manager, err := storagebadger.NewManager(a.Logger, &a.Config.Storage.Badger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.StorageManager = manager
	return nil
}

func (a *App) initServices() error {
	corpusService, err := corpus.NewService(a.Config.Corpus.File, a.StorageManager.DocumentStorage(), a.Logger)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	a.CorpusService = corpusService

	// Collaborator clients, one per CricTourney backend service
	a.AuthService = clients.NewAuthClient(a.Config.Collaborator, a.Logger)
	a.TournamentService = clients.NewTournamentClient(a.Config.Collaborator, a.Logger)
	a.TeamService = clients.NewTeamClient(a.Config.Collaborator, a.Logger)
	a.ScheduleService = clients.NewScheduleClient(a.Config.Collaborator, a.Logger)

	actions := assistant.NewActionHandler(a.TournamentService, a.TeamService, a.Logger)
	a.AssistantService = assistant.NewService(a.CorpusService, actions, a.Logger)

	// WebSocket hub doubles as the conversation publisher
	a.WSHandler = handlers.NewWebSocketHandler(a.Logger)
	a.ConversationManager = conversation.NewManager(a.AssistantService, a.WSHandler, &a.Config.Conversation, a.Logger)

	if err := a.ConversationManager.StartSweeper(); err != nil {
		return fmt.Errorf("failed to start conversation sweeper: %w", err)
	}

	return nil
}

func (a *App) initHandlers() {
	a.ConversationHandler = handlers.NewConversationHandler(a.ConversationManager, a.AuthService, a.Logger)
	a.AssistantHandler = handlers.NewAssistantHandler(a.AssistantService, a.AuthService, a.Logger)
	a.CorpusHandler = handlers.NewCorpusHandler(a.CorpusService, a.Logger)
	a.ScheduleHandler = handlers.NewScheduleHandler(a.ScheduleService, a.AuthService, a.Logger)
	a.StatusHandler = handlers.NewStatusHandler(a.CorpusService, a.ConversationManager, a.WSHandler, a.Logger)
}

// Close releases application resources in reverse initialization order
func (a *App) Close() error {
	if a.ConversationManager != nil {
		a.ConversationManager.Stop()
	}

	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close storage")
			return err
		}
	}

	a.Logger.Info().Msg("Application closed")
	return nil
}
