package store

import (
	"context"

	"github.com/phrazzld/deck-api/internal/domain"
)

// DeckStore defines the interface for deck registration and lookup.
// Decks are registered once and never removed.
type DeckStore interface {
	// Create registers a new deck under its ID.
	// Returns ErrDeckExists if the ID is already taken and ErrInvalidEntity
	// for a nil deck.
	Create(ctx context.Context, deck *domain.Deck) error

	// GetByID retrieves a deck by its ID.
	// Returns ErrDeckNotFound if no deck is registered under id.
	// The returned deck is the live instance; draws on it are visible to
	// every later lookup.
	GetByID(ctx context.Context, id string) (*domain.Deck, error)

	// Count returns the number of registered decks.
	Count(ctx context.Context) int
}
