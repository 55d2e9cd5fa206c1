package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/bobmcallan/jinyao-fortune/internal/common"
	"github.com/bobmcallan/jinyao-fortune/internal/config"
	"github.com/bobmcallan/jinyao-fortune/internal/fortune"
	"github.com/bobmcallan/jinyao-fortune/internal/handlers"
	"github.com/bobmcallan/jinyao-fortune/internal/interfaces"
	"github.com/bobmcallan/jinyao-fortune/internal/mcp"
	"github.com/bobmcallan/jinyao-fortune/internal/oracle"
	"github.com/bobmcallan/jinyao-fortune/internal/session"
	"github.com/bobmcallan/jinyao-fortune/internal/storage"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Storage   interfaces.StorageManager
	Generator *fortune.Generator
	Sessions  *session.Service

	// HTTP handlers
	HealthHandler    *handlers.HealthHandler
	VersionHandler   *handlers.VersionHandler
	FortuneHandler   *handlers.FortuneHandler
	ScenariosHandler *handlers.ScenariosHandler
	CompaniesHandler *handlers.CompaniesHandler
	SessionHandler   *handlers.SessionHandler
	MCPHandler       *mcp.Handler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	logger = logger.OrSilent()
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	a.Generator = NewGenerator(context.Background(), &cfg.Generator, logger)

	store, err := storage.NewStorageManager(logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.Storage = store
	a.Sessions = session.NewService(store.KeyValueStorage(), cfg.Session.UnlockThreshold, logger)

	a.initHandlers()

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// NewGenerator builds the fortune generator for cfg. A missing credential
// selects template mode; any other backend setup error is logged and also
// falls back to templates.
func NewGenerator(ctx context.Context, cfg *config.GeneratorConfig, logger *common.Logger) *fortune.Generator {
	opts := []fortune.Option{fortune.WithTimeout(cfg.GetTimeout())}

	client, err := oracle.New(ctx, cfg, logger)
	switch {
	case errors.Is(err, oracle.ErrNotConfigured):
		logger.Info().Msg("no generator credential configured, using template fortunes")
		return fortune.NewGenerator(nil, logger, opts...)
	case err != nil:
		logger.Warn().Err(err).Str("provider", cfg.Provider).Msg("generator backend unavailable, using template fortunes")
		return fortune.NewGenerator(nil, logger, opts...)
	}

	logger.Info().
		Str("backend", client.Name()).
		Str("timeout", cfg.GetTimeout().String()).
		Msg("generator backend configured")
	return fortune.NewGenerator(client, logger, opts...)
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	a.HealthHandler = handlers.NewHealthHandler(a.Logger, a.Generator.AIEnabled)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.FortuneHandler = handlers.NewFortuneHandler(a.Logger, a.Generator)
	a.ScenariosHandler = handlers.NewScenariosHandler(a.Logger)
	a.CompaniesHandler = handlers.NewCompaniesHandler(a.Logger)
	a.SessionHandler = handlers.NewSessionHandler(a.Logger, a.Sessions)
	a.MCPHandler = mcp.NewHandler(a.Generator, a.Logger)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	if a.Storage != nil {
		return a.Storage.Close()
	}
	return nil
}
