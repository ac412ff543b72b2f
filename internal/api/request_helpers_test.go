package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/deck-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCreateDeckRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		query        string
		wantShuffled bool
		wantCodes    []string
	}{
		{"no params", "", false, nil},
		{"shuffled true", "?shuffled=true", true, nil},
		{"shuffled other value", "?shuffled=1", false, nil},
		{"shuffled uppercase", "?shuffled=TRUE", false, nil},
		{"cards", "?cards=AH,KS", false, []string{"AH", "KS"}},
		{"empty cards", "?cards=", false, []string{""}},
		{"cards and shuffled", "?cards=10D&shuffled=true", true, []string{"10D"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/decks"+tc.query, nil)
			got := parseCreateDeckRequest(req)
			assert.Equal(t, tc.wantShuffled, got.Shuffled)
			assert.Equal(t, tc.wantCodes, got.Codes)
		})
	}
}

func withDeckID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(deckIDParam, id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestParseDrawRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		wantCount int
		wantErr   error
	}{
		{"valid", "?count=5", 5, nil},
		{"zero passes parsing", "?count=0", 0, nil},
		{"negative passes parsing", "?count=-3", -3, nil},
		{"missing", "", 0, ErrInvalidCountParam},
		{"not a number", "?count=abc", 0, ErrInvalidCountParam},
		{"decimal", "?count=1.5", 0, ErrInvalidCountParam},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := withDeckID(httptest.NewRequest(http.MethodPost, "/decks/d1/draw"+tc.query, nil), "d1")

			id, count, err := parseDrawRequest(req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "d1", id)
			assert.Equal(t, tc.wantCount, count)
		})
	}
}

func TestParseDrawRequest_MissingDeckID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/decks//draw?count=1", nil)
	_, _, err := parseDrawRequest(req)
	assert.ErrorIs(t, err, store.ErrDeckNotFound)
}
