// Package domain contains the playing card and deck entities. It has no
// knowledge of storage or transport: a Deck owns its remaining cards and
// drawn history, and enforces the draw rules itself.
package domain
