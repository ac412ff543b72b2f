// Package api handles incoming HTTP requests for the deck resource: query
// parsing, response shaping, and mapping of domain and store errors to HTTP
// status codes. It adapts HTTP concerns to the service.DeckService
// operations.
//
// Subpackages:
//   - shared: JSON response helpers, trace IDs and request validation
//   - middleware: request tracing and context-scoped logging
package api
