package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/deck-api/internal/config"
	"github.com/phrazzld/deck-api/internal/events"
	"github.com/phrazzld/deck-api/internal/platform/memory"
	"github.com/phrazzld/deck-api/internal/platform/random"
	"github.com/phrazzld/deck-api/internal/service"
	"github.com/phrazzld/deck-api/internal/store"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	deckStore    store.DeckStore
	eventEmitter events.EventEmitter
	deckService  service.DeckService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config:    cfg,
		logger:    logger,
		deckStore: memory.NewDeckStore(logger),
	}

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLoggingHandler(logger))
	app.eventEmitter = emitter

	// Zero selects a random seed inside random.New.
	rng := random.New(uint64(cfg.Deck.ShuffleSeed))

	var err error
	app.deckService, err = service.NewDeckService(app.deckStore, rng, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create deck service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until ctx is canceled or the server
// fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
