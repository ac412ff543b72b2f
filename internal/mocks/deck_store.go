package mocks

import (
	"context"

	"github.com/phrazzld/deck-api/internal/domain"
)

// MockDeckStore implements store.DeckStore for testing
type MockDeckStore struct {
	CreateFn  func(ctx context.Context, deck *domain.Deck) error
	GetByIDFn func(ctx context.Context, id string) (*domain.Deck, error)
	CountFn   func(ctx context.Context) int

	DefaultError error
}

// Create implements the DeckStore.Create method
func (m *MockDeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, deck)
	}
	return m.DefaultError
}

// GetByID implements the DeckStore.GetByID method
func (m *MockDeckStore) GetByID(ctx context.Context, id string) (*domain.Deck, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, m.DefaultError
}

// Count implements the DeckStore.Count method
func (m *MockDeckStore) Count(ctx context.Context) int {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0
}
