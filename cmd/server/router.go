package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/deck-api/internal/api"
	apiMiddleware "github.com/phrazzld/deck-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	deckHandler := api.NewDeckHandler(app.deckService, app.logger)

	r.Post("/decks", deckHandler.CreateDeck)
	r.Get("/decks/{deckId}", deckHandler.OpenDeck)
	r.Post("/decks/{deckId}/draw", deckHandler.DrawCards)

	r.Get("/health", api.HealthCheck)

	return r
}
