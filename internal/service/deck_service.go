package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/deck-api/internal/domain"
	"github.com/phrazzld/deck-api/internal/events"
	"github.com/phrazzld/deck-api/internal/platform/logger"
	"github.com/phrazzld/deck-api/internal/store"
)

// DeckService is the deck registry.
type DeckService interface {
	// CreateDeck builds and registers a new deck. A nil codes slice builds a
	// full 52-card deck; a non-nil slice, even an empty one, builds a partial
	// deck from those codes in order. Fails only with an error wrapping
	// domain.ErrInvalidCardCode.
	CreateDeck(ctx context.Context, shuffled bool, codes []string) (*domain.Deck, error)

	// GetDeck returns the registered deck with the given ID.
	// Returns an error wrapping store.ErrDeckNotFound for unknown IDs.
	GetDeck(ctx context.Context, id string) (*domain.Deck, error)

	// DrawCards draws count cards from the front of the deck.
	// Returns an error wrapping store.ErrDeckNotFound, domain.ErrInvalidDrawCount
	// or domain.ErrInsufficientCards.
	DrawCards(ctx context.Context, id string, count int) ([]domain.Card, error)
}

// deckServiceImpl implements the DeckService interface
type deckServiceImpl struct {
	decks   store.DeckStore
	rng     domain.Intner
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewDeckService creates a new DeckService.
// decks and rng are required; emitter may be nil, in which case no events
// are published. If logger is nil, the default logger is used.
func NewDeckService(
	decks store.DeckStore,
	rng domain.Intner,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (DeckService, error) {
	if decks == nil {
		return nil, NewDeckServiceError("init", "deck store cannot be nil", ErrMissingDependency)
	}
	if rng == nil {
		return nil, NewDeckServiceError("init", "random source cannot be nil", ErrMissingDependency)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &deckServiceImpl{
		decks:   decks,
		rng:     rng,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "deck_service")),
	}, nil
}

// CreateDeck implements DeckService.CreateDeck
func (s *deckServiceImpl) CreateDeck(
	ctx context.Context,
	shuffled bool,
	codes []string,
) (*domain.Deck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	partial := codes != nil

	var deck *domain.Deck
	if partial {
		var err error
		deck, err = domain.NewPartialDeck(codes, shuffled, s.rng)
		if err != nil {
			log.Debug("rejected partial deck",
				slog.Int("code_count", len(codes)),
				slog.String("error", err.Error()))
			return nil, NewDeckServiceError("create_deck", "invalid card code", err)
		}
	} else {
		deck = domain.NewFullDeck(shuffled, s.rng)
	}

	if err := s.decks.Create(ctx, deck); err != nil {
		log.Error("failed to register deck",
			slog.String("deck_id", deck.ID()),
			slog.String("error", err.Error()))
		return nil, NewDeckServiceError("create_deck", "failed to register deck", err)
	}

	log.Debug("deck created",
		slog.String("deck_id", deck.ID()),
		slog.Bool("shuffled", shuffled),
		slog.Bool("partial", partial),
		slog.Int("remaining", deck.RemainingCount()))

	s.emit(ctx, events.TypeDeckCreated, deck.ID(), events.DeckCreatedPayload{
		Shuffled:  shuffled,
		Partial:   partial,
		Remaining: deck.RemainingCount(),
	})

	return deck, nil
}

// GetDeck implements DeckService.GetDeck
func (s *deckServiceImpl) GetDeck(ctx context.Context, id string) (*domain.Deck, error) {
	deck, err := s.decks.GetByID(ctx, id)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Debug("deck lookup failed", slog.String("deck_id", id), slog.String("error", err.Error()))
		return nil, NewDeckServiceError("get_deck", "lookup failed", err)
	}
	return deck, nil
}

// DrawCards implements DeckService.DrawCards
func (s *deckServiceImpl) DrawCards(ctx context.Context, id string, count int) ([]domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deck, err := s.decks.GetByID(ctx, id)
	if err != nil {
		log.Debug("draw from unknown deck", slog.String("deck_id", id))
		return nil, NewDeckServiceError("draw_cards", "lookup failed", err)
	}

	cards, err := deck.Draw(count)
	if err != nil {
		log.Debug("draw rejected",
			slog.String("deck_id", id),
			slog.Int("count", count),
			slog.String("error", err.Error()))
		return nil, NewDeckServiceError("draw_cards", "draw rejected", err)
	}

	remaining := deck.RemainingCount()
	log.Debug("cards drawn",
		slog.String("deck_id", id),
		slog.String("cards", domain.JoinCodes(cards)),
		slog.Int("remaining", remaining))

	s.emit(ctx, events.TypeCardsDrawn, id, events.CardsDrawnPayload{
		Codes:     domain.Codes(cards),
		Remaining: remaining,
		Drawn:     len(deck.DrawnCards()),
	})

	return cards, nil
}

// emit publishes an event. Failures are logged and never fail the operation
// that triggered them, since the deck has already changed.
func (s *deckServiceImpl) emit(ctx context.Context, eventType, deckID string, payload interface{}) {
	if s.emitter == nil {
		return
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewDeckEvent(eventType, deckID, payload)
	if err != nil {
		log.Error("failed to build event",
			slog.String("event_type", eventType),
			slog.String("deck_id", deckID),
			slog.String("error", err.Error()))
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("failed to emit event",
			slog.String("event_type", eventType),
			slog.String("deck_id", deckID),
			slog.String("error", err.Error()))
	}
}
