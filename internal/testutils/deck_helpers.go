package testutils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// ExecuteCreateDeckRequest sends POST /decks with the given raw query
// string, e.g. "shuffled=true&cards=AH,KS". An empty query creates a full deck.
func ExecuteCreateDeckRequest(t *testing.T, server *httptest.Server, rawQuery string) *http.Response {
	t.Helper()

	path := "/decks"
	if rawQuery != "" {
		path += "?" + rawQuery
	}
	return ExecuteRequest(t, server, http.MethodPost, path)
}

// ExecuteOpenDeckRequest sends GET /decks/{deckID}.
func ExecuteOpenDeckRequest(t *testing.T, server *httptest.Server, deckID string) *http.Response {
	t.Helper()
	return ExecuteRequest(t, server, http.MethodGet, "/decks/"+url.PathEscape(deckID))
}

// ExecuteDrawRequest sends POST /decks/{deckID}/draw?count=count. The count
// is passed verbatim so tests can exercise malformed values.
func ExecuteDrawRequest(t *testing.T, server *httptest.Server, deckID, count string) *http.Response {
	t.Helper()

	path := "/decks/" + url.PathEscape(deckID) + "/draw"
	if count != "" {
		path += "?count=" + url.QueryEscape(count)
	}
	return ExecuteRequest(t, server, http.MethodPost, path)
}
