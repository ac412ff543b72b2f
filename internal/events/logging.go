package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/deck-api/internal/platform/logger"
)

// LoggingHandler writes every deck event to the log at INFO level, giving an
// audit trail of deck creation and draws.
type LoggingHandler struct {
	logger *slog.Logger
}

// NewLoggingHandler creates a LoggingHandler. If logger is nil, the default
// logger is used.
func NewLoggingHandler(logger *slog.Logger) *LoggingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingHandler{logger: logger.With("component", "deck_audit")}
}

// HandleEvent implements EventHandler.
func (h *LoggingHandler) HandleEvent(ctx context.Context, event *DeckEvent) error {
	log := logger.FromContextOrDefault(ctx, h.logger)

	attrs := []any{
		"event_id", event.ID,
		"event_type", event.Type,
		"deck_id", event.DeckID,
	}

	switch event.Type {
	case TypeDeckCreated:
		var p DeckCreatedPayload
		if err := event.UnmarshalPayload(&p); err != nil {
			return fmt.Errorf("failed to unmarshal %s payload: %w", event.Type, err)
		}
		attrs = append(attrs, "shuffled", p.Shuffled, "partial", p.Partial, "remaining", p.Remaining)
	case TypeCardsDrawn:
		var p CardsDrawnPayload
		if err := event.UnmarshalPayload(&p); err != nil {
			return fmt.Errorf("failed to unmarshal %s payload: %w", event.Type, err)
		}
		attrs = append(attrs, "codes", p.Codes, "remaining", p.Remaining, "drawn_total", p.Drawn)
	default:
		log.Debug("ignoring event with unsupported type", attrs...)
		return nil
	}

	log.Info("deck event", attrs...)
	return nil
}
