// Package events provides types and interfaces for deck lifecycle events.
//
// The deck registry emits events without knowing which handlers will process
// them. The primary components are:
// - DeckEvent: something that happened to a deck (created, cards drawn)
// - EventHandler: interface for components that can handle events
// - EventEmitter: interface for components that can emit events
// - LoggingHandler: writes an audit line for every event
package events
