// Package store defines interfaces for deck registration and lookup.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic so the registry service can remain independent
// of where decks are kept.
package store
