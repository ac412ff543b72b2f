// Package service contains the application use cases. DeckService is the
// deck registry: the single source of truth for which decks exist, and the
// only path through which decks are created, looked up and drawn from.
//
// Services receive their dependencies (store, random source, event emitter,
// logger) through constructor injection and never reach for package-level
// state.
package service
