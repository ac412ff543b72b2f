// Package testutils provides testing utilities for the deck API.
//
// This package contains helpers for:
//   - Setting up test servers for API testing
//   - Executing deck API requests
//   - Asserting API responses
//
// # Test Servers
//
//	server := testutils.CreateTestServer(t, router)
//
// # Request Execution
//
//	resp := testutils.ExecuteCreateDeckRequest(t, server, "shuffled=true")
//	created := testutils.DecodeJSONResponse[api.CreateDeckResponse](t, resp)
//
//	resp = testutils.ExecuteDrawRequest(t, server, created.DeckID, "5")
//
// # Response Assertions
//
//	testutils.AssertErrorResponse(t, resp, http.StatusBadRequest, "Not enough cards")
//
// Response bodies are closed automatically through t.Cleanup.
package testutils
