package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the deck registry.
const (
	// TypeDeckCreated is emitted after a deck has been registered.
	TypeDeckCreated = "deck.created"

	// TypeCardsDrawn is emitted after cards have been drawn from a deck.
	TypeCardsDrawn = "deck.cards_drawn"
)

// DeckCreatedPayload is the payload of a TypeDeckCreated event.
type DeckCreatedPayload struct {
	Shuffled  bool `json:"shuffled"`
	Partial   bool `json:"partial"`
	Remaining int  `json:"remaining"`
}

// CardsDrawnPayload is the payload of a TypeCardsDrawn event.
type CardsDrawnPayload struct {
	Codes     []string `json:"codes"`
	Remaining int      `json:"remaining"`
	Drawn     int      `json:"drawn_total"`
}

// DeckEvent records something that happened to a deck.
type DeckEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// DeckID identifies the deck the event refers to
	DeckID string `json:"deck_id"`

	// Payload contains the type-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *DeckEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewDeckEvent creates a new DeckEvent with the specified type and payload.
func NewDeckEvent(eventType, deckID string, payload interface{}) (*DeckEvent, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &DeckEvent{
		ID:        uuid.New(),
		Type:      eventType,
		DeckID:    deckID,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *DeckEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *DeckEvent) error
}
