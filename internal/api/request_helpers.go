package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/deck-api/internal/api/shared"
	"github.com/phrazzld/deck-api/internal/store"
)

// deckIDParam is the chi path parameter carrying the deck ID.
const deckIDParam = "deckId"

// parseCreateDeckRequest reads the shuffled and cards query parameters.
// Only the literal "true" enables shuffling. A present cards parameter is
// split on commas as-is, so "cards=" yields one empty code.
func parseCreateDeckRequest(r *http.Request) CreateDeckRequest {
	q := r.URL.Query()

	req := CreateDeckRequest{
		Shuffled: q.Get("shuffled") == "true",
	}
	if q.Has("cards") {
		req.Codes = strings.Split(q.Get("cards"), ",")
	}
	return req
}

// parseDrawRequest extracts the deck ID from the path and the integer count
// from the query string. A bad count wraps ErrInvalidCountParam.
func parseDrawRequest(r *http.Request) (string, int, error) {
	req := DrawRequest{
		DeckID: chi.URLParam(r, deckIDParam),
		Count:  r.URL.Query().Get("count"),
	}

	if err := shared.ValidateRequest(&req); err != nil {
		if req.DeckID == "" {
			return "", 0, fmt.Errorf("%w: empty id", store.ErrDeckNotFound)
		}
		return "", 0, fmt.Errorf("%w: %s", ErrInvalidCountParam, SanitizeValidationError(err))
	}

	count, err := strconv.Atoi(req.Count)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrInvalidCountParam, err)
	}

	return req.DeckID, count, nil
}
