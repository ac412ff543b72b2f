package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/deck-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// CleanupResponseBody registers a cleanup function to close the response body
// to prevent resource leaks.
func CleanupResponseBody(t *testing.T, resp *http.Response) {
	t.Helper()
	if resp != nil && resp.Body != nil {
		t.Cleanup(func() {
			if err := resp.Body.Close(); err != nil {
				t.Logf("Warning: failed to close response body: %v", err)
			}
		})
	}
}

// ExecuteRequest sends a bodiless request to server and registers cleanup
// for the response body.
func ExecuteRequest(t *testing.T, server *httptest.Server, method, path string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, nil)
	require.NoError(t, err, "Failed to create request")

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute %s %s", method, path)
	CleanupResponseBody(t, resp)

	return resp
}

// DecodeJSONResponse reads the response body into a value of type T.
func DecodeJSONResponse[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	var out T
	require.NoError(t, json.Unmarshal(body, &out), "Failed to unmarshal response: %s", string(body))
	return out
}

// AssertErrorResponse checks that a response contains an error with the expected status code and message.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedErrorMsgPart string,
) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)

	errResp := DecodeJSONResponse[shared.ErrorResponse](t, resp)
	assert.False(t, errResp.Success, "Error responses must report success=false")
	assert.Contains(t, errResp.Error, expectedErrorMsgPart,
		"Error message should contain '%s' but got '%s'", expectedErrorMsgPart, errResp.Error)
}
