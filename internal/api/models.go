package api

import "github.com/phrazzld/deck-api/internal/domain"

// CreateDeckRequest holds the query parameters of POST /decks.
type CreateDeckRequest struct {
	Shuffled bool
	// Codes is nil when the cards parameter is absent, which selects a full deck.
	Codes []string
}

// DrawRequest holds the query parameters of POST /decks/{deckId}/draw.
type DrawRequest struct {
	DeckID string `validate:"required"`
	Count  string `validate:"required,numeric"`
}

// CardResponse is the JSON form of a single card.
type CardResponse struct {
	Code string `json:"code"`
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// CreateDeckResponse is returned by POST /decks.
type CreateDeckResponse struct {
	Success   bool   `json:"success"`
	DeckID    string `json:"deckId"`
	Shuffled  bool   `json:"shuffled"`
	Remaining int    `json:"remaining"`
}

// OpenDeckResponse is returned by GET /decks/{deckId}.
type OpenDeckResponse struct {
	Success   bool           `json:"success"`
	DeckID    string         `json:"deckId"`
	Shuffled  bool           `json:"shuffled"`
	Remaining int            `json:"remaining"`
	Cards     []CardResponse `json:"cards"`
}

// DrawCardsResponse is returned by POST /decks/{deckId}/draw.
type DrawCardsResponse struct {
	Success bool           `json:"success"`
	Cards   []CardResponse `json:"cards"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func cardToResponse(card domain.Card) CardResponse {
	return CardResponse{
		Code: card.Code(),
		Rank: string(card.Rank),
		Suit: string(card.Suit),
	}
}

// cardsToResponse always returns a non-nil slice so empty lists encode as [].
func cardsToResponse(cards []domain.Card) []CardResponse {
	out := make([]CardResponse, len(cards))
	for i, card := range cards {
		out[i] = cardToResponse(card)
	}
	return out
}
