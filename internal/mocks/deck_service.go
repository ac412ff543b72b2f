package mocks

import (
	"context"

	"github.com/phrazzld/deck-api/internal/domain"
)

// MockDeckService implements service.DeckService for testing
type MockDeckService struct {
	// Custom behavior functions
	CreateDeckFn func(ctx context.Context, shuffled bool, codes []string) (*domain.Deck, error)
	GetDeckFn    func(ctx context.Context, id string) (*domain.Deck, error)
	DrawCardsFn  func(ctx context.Context, id string, count int) ([]domain.Card, error)

	// Default return values
	Deck         *domain.Deck
	Cards        []domain.Card
	DefaultError error
}

// CreateDeck implements the DeckService.CreateDeck method
func (m *MockDeckService) CreateDeck(ctx context.Context, shuffled bool, codes []string) (*domain.Deck, error) {
	if m.CreateDeckFn != nil {
		return m.CreateDeckFn(ctx, shuffled, codes)
	}
	return m.Deck, m.DefaultError
}

// GetDeck implements the DeckService.GetDeck method
func (m *MockDeckService) GetDeck(ctx context.Context, id string) (*domain.Deck, error) {
	if m.GetDeckFn != nil {
		return m.GetDeckFn(ctx, id)
	}
	return m.Deck, m.DefaultError
}

// DrawCards implements the DeckService.DrawCards method
func (m *MockDeckService) DrawCards(ctx context.Context, id string, count int) ([]domain.Card, error) {
	if m.DrawCardsFn != nil {
		return m.DrawCardsFn(ctx, id, count)
	}
	return m.Cards, m.DefaultError
}
