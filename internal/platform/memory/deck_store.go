package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/deck-api/internal/domain"
	"github.com/phrazzld/deck-api/internal/platform/logger"
	"github.com/phrazzld/deck-api/internal/store"
)

// DeckStore implements the store.DeckStore interface with a map guarded by
// a read-write mutex. Entries are never evicted.
type DeckStore struct {
	mu     sync.RWMutex
	decks  map[string]*domain.Deck
	logger *slog.Logger
}

// NewDeckStore creates an empty in-memory deck store.
// If logger is nil, a default logger will be used.
func NewDeckStore(logger *slog.Logger) *DeckStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &DeckStore{
		decks:  make(map[string]*domain.Deck),
		logger: logger.With(slog.String("component", "deck_store")),
	}
}

// Ensure DeckStore implements store.DeckStore interface
var _ store.DeckStore = (*DeckStore)(nil)

// Create implements store.DeckStore.Create
func (s *DeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if deck == nil {
		return store.NewStoreError("deck", "create", "deck is nil", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.decks[deck.ID()]; exists {
		log.Warn("deck id collision", slog.String("deck_id", deck.ID()))
		return store.ErrDeckExists
	}
	s.decks[deck.ID()] = deck

	log.Debug("deck registered",
		slog.String("deck_id", deck.ID()),
		slog.Int("deck_count", len(s.decks)))
	return nil
}

// GetByID implements store.DeckStore.GetByID
func (s *DeckStore) GetByID(ctx context.Context, id string) (*domain.Deck, error) {
	s.mu.RLock()
	deck, ok := s.decks[id]
	s.mu.RUnlock()

	if !ok {
		return nil, store.ErrDeckNotFound
	}
	return deck, nil
}

// Count implements store.DeckStore.Count
func (s *DeckStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.decks)
}
