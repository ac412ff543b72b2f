package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/phrazzld/deck-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingHandler(t *testing.T) {
	log, buf := logger.NewTestLogger(t)
	handler := NewLoggingHandler(log)

	t.Run("deck created", func(t *testing.T) {
		buf.Reset()
		event, err := NewDeckEvent(TypeDeckCreated, "deck-1", DeckCreatedPayload{Shuffled: true, Remaining: 52})
		require.NoError(t, err)

		require.NoError(t, handler.HandleEvent(context.Background(), event))

		logger.AssertLogField(t, buf, "event_type", TypeDeckCreated)
		logger.AssertLogField(t, buf, "deck_id", "deck-1")
		logger.AssertLogField(t, buf, "shuffled", true)
		logger.AssertLogField(t, buf, "component", "deck_audit")
	})

	t.Run("cards drawn", func(t *testing.T) {
		buf.Reset()
		event, err := NewDeckEvent(TypeCardsDrawn, "deck-2", CardsDrawnPayload{Codes: []string{"AH"}, Remaining: 51, Drawn: 1})
		require.NoError(t, err)

		require.NoError(t, handler.HandleEvent(context.Background(), event))

		logger.AssertLogField(t, buf, "event_type", TypeCardsDrawn)
		logger.AssertLogContains(t, buf, `"codes":["AH"]`)
		logger.AssertLogField(t, buf, "remaining", float64(51))
	})

	t.Run("unknown type is ignored", func(t *testing.T) {
		buf.Reset()
		event, err := NewDeckEvent("deck.unknown", "deck-3", struct{}{})
		require.NoError(t, err)

		assert.NoError(t, handler.HandleEvent(context.Background(), event))
		assert.NotContains(t, buf.String(), `"msg":"deck event"`)
	})

	t.Run("malformed payload", func(t *testing.T) {
		event := &DeckEvent{Type: TypeCardsDrawn, DeckID: "deck-4", Payload: json.RawMessage(`{"codes":7}`)}

		assert.Error(t, handler.HandleEvent(context.Background(), event))
	})
}
