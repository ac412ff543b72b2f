package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/deck-api/internal/api/shared"
	"github.com/phrazzld/deck-api/internal/platform/logger"
	"github.com/phrazzld/deck-api/internal/service"
)

// DeckHandler handles deck-related HTTP requests
type DeckHandler struct {
	deckService service.DeckService
	logger      *slog.Logger
}

// NewDeckHandler creates a new DeckHandler
func NewDeckHandler(deckService service.DeckService, logger *slog.Logger) *DeckHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &DeckHandler{
		deckService: deckService,
		logger:      logger.With(slog.String("component", "deck_handler")),
	}
}

// CreateDeck handles POST /decks requests.
// Without a cards parameter a full 52-card deck is created.
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	req := parseCreateDeckRequest(r)

	deck, err := h.deckService.CreateDeck(r.Context(), req.Shuffled, req.Codes)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create deck")
		return
	}

	log.Debug("deck created via API",
		slog.String("deck_id", deck.ID()),
		slog.Bool("shuffled", deck.Shuffled()),
		slog.Int("remaining", deck.RemainingCount()))

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateDeckResponse{
		Success:   true,
		DeckID:    deck.ID(),
		Shuffled:  deck.Shuffled(),
		Remaining: deck.RemainingCount(),
	})
}

// OpenDeck handles GET /decks/{deckId} requests
func (h *DeckHandler) OpenDeck(w http.ResponseWriter, r *http.Request) {
	deck, err := h.deckService.GetDeck(r.Context(), chi.URLParam(r, deckIDParam))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to open deck")
		return
	}

	// Take one snapshot so remaining and cards agree under concurrent draws.
	cards := deck.Cards()

	shared.RespondWithJSON(w, r, http.StatusOK, OpenDeckResponse{
		Success:   true,
		DeckID:    deck.ID(),
		Shuffled:  deck.Shuffled(),
		Remaining: len(cards),
		Cards:     cardsToResponse(cards),
	})
}

// DrawCards handles POST /decks/{deckId}/draw requests
func (h *DeckHandler) DrawCards(w http.ResponseWriter, r *http.Request) {
	deckID, count, err := parseDrawRequest(r)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("invalid draw request",
			slog.String("count", r.URL.Query().Get("count")))
		HandleAPIError(w, r, err, "")
		return
	}

	cards, err := h.deckService.DrawCards(r.Context(), deckID, count)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to draw cards")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DrawCardsResponse{
		Success: true,
		Cards:   cardsToResponse(cards),
	})
}
