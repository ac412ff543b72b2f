package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/phrazzld/deck-api/internal/domain"
	"github.com/phrazzld/deck-api/internal/events"
	"github.com/phrazzld/deck-api/internal/mocks"
	"github.com/phrazzld/deck-api/internal/platform/memory"
	"github.com/phrazzld/deck-api/internal/platform/random"
	"github.com/phrazzld/deck-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) DeckService {
	t.Helper()
	svc, err := NewDeckService(memory.NewDeckStore(nil), random.New(1), nil, nil)
	require.NoError(t, err)
	return svc
}

func TestNewDeckService_MissingDependencies(t *testing.T) {
	_, err := NewDeckService(nil, random.New(1), nil, nil)
	assert.ErrorIs(t, err, ErrMissingDependency)

	_, err = NewDeckService(memory.NewDeckStore(nil), nil, nil, nil)
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestCreateDeck_Full(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	deck, err := svc.CreateDeck(ctx, false, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StandardDeckSize, deck.RemainingCount())
	assert.False(t, deck.Shuffled())
	assert.Equal(t, domain.StandardCards(), deck.Cards())

	got, err := svc.GetDeck(ctx, deck.ID())
	require.NoError(t, err)
	assert.Same(t, deck, got)
}

func TestCreateDeck_FullShuffled(t *testing.T) {
	svc := newTestService(t)

	deck, err := svc.CreateDeck(context.Background(), true, nil)
	require.NoError(t, err)
	assert.True(t, deck.Shuffled())

	got := domain.Codes(deck.Cards())
	want := domain.Codes(domain.StandardCards())
	sort.Strings(got)
	sort.Strings(want)
	assert.Equal(t, want, got, "shuffled deck must hold the same 52 cards")
}

func TestCreateDeck_SeededShufflesAreReproducible(t *testing.T) {
	ctx := context.Background()

	svcA, err := NewDeckService(memory.NewDeckStore(nil), random.New(99), nil, nil)
	require.NoError(t, err)
	svcB, err := NewDeckService(memory.NewDeckStore(nil), random.New(99), nil, nil)
	require.NoError(t, err)

	a, err := svcA.CreateDeck(ctx, true, nil)
	require.NoError(t, err)
	b, err := svcB.CreateDeck(ctx, true, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Cards(), b.Cards())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestCreateDeck_Partial(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("codes in order", func(t *testing.T) {
		deck, err := svc.CreateDeck(ctx, false, []string{"AH", "KS"})
		require.NoError(t, err)
		assert.Equal(t, []domain.Card{
			{Rank: domain.Ace, Suit: domain.Hearts},
			{Rank: domain.King, Suit: domain.Spades},
		}, deck.Cards())
	})

	t.Run("empty codes build an empty deck", func(t *testing.T) {
		deck, err := svc.CreateDeck(ctx, false, []string{})
		require.NoError(t, err)
		assert.Equal(t, 0, deck.RemainingCount())
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		deck, err := svc.CreateDeck(ctx, false, []string{"QD", "QD"})
		require.NoError(t, err)
		assert.Equal(t, 2, deck.RemainingCount())
	})

	t.Run("invalid code", func(t *testing.T) {
		deck, err := svc.CreateDeck(ctx, false, []string{"AH", "ZZ"})
		assert.Nil(t, deck)
		assert.ErrorIs(t, err, domain.ErrInvalidCardCode)

		var codeErr *domain.CardCodeError
		require.ErrorAs(t, err, &codeErr)
		assert.Equal(t, "ZZ", codeErr.Code)

		var svcErr *DeckServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "create_deck", svcErr.Operation)
	})
}

func TestCreateDeck_StoreFailure(t *testing.T) {
	decks := &mocks.MockDeckStore{DefaultError: store.ErrDeckExists}
	svc, err := NewDeckService(decks, random.New(1), nil, nil)
	require.NoError(t, err)

	deck, err := svc.CreateDeck(context.Background(), false, nil)
	assert.Nil(t, deck)
	assert.ErrorIs(t, err, store.ErrDeckExists)
}

func TestGetDeck_Unknown(t *testing.T) {
	svc := newTestService(t)

	deck, err := svc.GetDeck(context.Background(), "never-issued")
	assert.Nil(t, deck)
	assert.ErrorIs(t, err, store.ErrDeckNotFound)
}

func TestDrawCards(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	deck, err := svc.CreateDeck(ctx, false, nil)
	require.NoError(t, err)

	t.Run("unknown deck", func(t *testing.T) {
		_, err := svc.DrawCards(ctx, "never-issued", 1)
		assert.ErrorIs(t, err, store.ErrDeckNotFound)
	})

	t.Run("invalid count leaves deck unchanged", func(t *testing.T) {
		for _, count := range []int{0, -1} {
			_, err := svc.DrawCards(ctx, deck.ID(), count)
			assert.ErrorIs(t, err, domain.ErrInvalidDrawCount)
		}
		assert.Equal(t, domain.StandardDeckSize, deck.RemainingCount())
	})

	t.Run("too many leaves deck unchanged", func(t *testing.T) {
		_, err := svc.DrawCards(ctx, deck.ID(), domain.StandardDeckSize+1)
		assert.ErrorIs(t, err, domain.ErrInsufficientCards)
		assert.Equal(t, domain.StandardDeckSize, deck.RemainingCount())
	})

	t.Run("draws from the front", func(t *testing.T) {
		cards, err := svc.DrawCards(ctx, deck.ID(), 3)
		require.NoError(t, err)
		assert.Equal(t, "AH,2H,3H", domain.JoinCodes(cards))
		assert.Equal(t, 49, deck.RemainingCount())
	})
}

func TestDrawCards_EndToEnd(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	deck, err := svc.CreateDeck(ctx, false, nil)
	require.NoError(t, err)

	_, err = svc.DrawCards(ctx, deck.ID(), 5)
	require.NoError(t, err)
	opened, err := svc.GetDeck(ctx, deck.ID())
	require.NoError(t, err)
	assert.Equal(t, 47, opened.RemainingCount())

	_, err = svc.DrawCards(ctx, deck.ID(), 47)
	require.NoError(t, err)
	assert.Equal(t, 0, opened.RemainingCount())

	_, err = svc.DrawCards(ctx, deck.ID(), 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientCards)
}

func TestEvents(t *testing.T) {
	ctx := context.Background()

	emitter := &mocks.TestifyMockEventEmitter{}
	emitter.On("EmitEvent", mock.Anything, mock.MatchedBy(func(e *events.DeckEvent) bool {
		return e.Type == events.TypeDeckCreated
	})).Return(nil).Once()
	emitter.On("EmitEvent", mock.Anything, mock.MatchedBy(func(e *events.DeckEvent) bool {
		var p events.CardsDrawnPayload
		return e.Type == events.TypeCardsDrawn &&
			e.UnmarshalPayload(&p) == nil &&
			len(p.Codes) == 2 && p.Codes[0] == "AH" && p.Remaining == 50 && p.Drawn == 2
	})).Return(nil).Once()

	svc, err := NewDeckService(memory.NewDeckStore(nil), random.New(1), emitter, nil)
	require.NoError(t, err)

	deck, err := svc.CreateDeck(ctx, false, nil)
	require.NoError(t, err)
	_, err = svc.DrawCards(ctx, deck.ID(), 2)
	require.NoError(t, err)

	// Failed operations emit nothing.
	_, err = svc.DrawCards(ctx, deck.ID(), 0)
	require.Error(t, err)
	_, err = svc.CreateDeck(ctx, false, []string{"bad"})
	require.Error(t, err)

	emitter.AssertExpectations(t)
}

func TestEvents_EmitterFailureDoesNotFailOperation(t *testing.T) {
	emitter := &mocks.TestifyMockEventEmitter{}
	emitter.On("EmitEvent", mock.Anything, mock.Anything).Return(errors.New("handler down"))

	svc, err := NewDeckService(memory.NewDeckStore(nil), random.New(1), emitter, nil)
	require.NoError(t, err)

	deck, err := svc.CreateDeck(context.Background(), false, nil)
	require.NoError(t, err)

	cards, err := svc.DrawCards(context.Background(), deck.ID(), 1)
	require.NoError(t, err)
	assert.Len(t, cards, 1)
	emitter.AssertNumberOfCalls(t, "EmitEvent", 2)
}

func TestDeckServiceError(t *testing.T) {
	err := NewDeckServiceError("draw_cards", "draw rejected", domain.ErrInsufficientCards)
	assert.Equal(t, "deck service draw_cards failed: draw rejected: not enough cards remaining", err.Error())
	assert.True(t, errors.Is(err, domain.ErrInsufficientCards))

	bare := NewDeckServiceError("init", "nothing wrapped", nil)
	assert.Equal(t, "deck service init failed: nothing wrapped", bare.Error())
}
