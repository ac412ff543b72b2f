package domain

import (
	"sync"

	"github.com/google/uuid"
)

// Intner supplies uniform random integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it, as does random.Source.
type Intner interface {
	IntN(n int) int
}

// Deck is an ordered pile of cards identified by a unique ID.
// Cards are drawn from the front; drawn cards are kept in an append-only
// history so that len(remaining)+len(drawn) never changes.
//
// A Deck is safe for concurrent use.
type Deck struct {
	id       string
	shuffled bool

	mu        sync.Mutex
	remaining []Card
	drawn     []Card
}

// NewDeck creates a deck holding a copy of cards. When shuffled is true the
// copy is permuted with a Fisher-Yates shuffle driven by rng; otherwise rng
// may be nil.
func NewDeck(cards []Card, shuffled bool, rng Intner) *Deck {
	remaining := make([]Card, len(cards))
	copy(remaining, cards)

	if shuffled {
		shuffle(remaining, rng)
	}

	return &Deck{
		id:        uuid.NewString(),
		shuffled:  shuffled,
		remaining: remaining,
		drawn:     make([]Card, 0, len(remaining)),
	}
}

// NewFullDeck creates a standard 52-card deck. See StandardCards for the
// unshuffled order.
func NewFullDeck(shuffled bool, rng Intner) *Deck {
	return NewDeck(StandardCards(), shuffled, rng)
}

// NewPartialDeck creates a deck from card codes, preserving their order and
// any duplicates. It returns an error wrapping ErrInvalidCardCode for the
// first code that does not decode.
func NewPartialDeck(codes []string, shuffled bool, rng Intner) (*Deck, error) {
	cards, err := ParseCardCodes(codes)
	if err != nil {
		return nil, err
	}
	return NewDeck(cards, shuffled, rng), nil
}

// shuffle permutes cards in place: for i from the last index down to 1,
// swap position i with a uniform j in [0, i].
func shuffle(cards []Card, rng Intner) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// ID returns the deck identifier.
func (d *Deck) ID() string {
	return d.id
}

// Shuffled reports whether the deck was shuffled when it was created.
func (d *Deck) Shuffled() bool {
	return d.shuffled
}

// RemainingCount returns the number of cards left to draw.
func (d *Deck) RemainingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.remaining)
}

// Cards returns a copy of the remaining cards, next card to draw first.
func (d *Deck) Cards() []Card {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Card(nil), d.remaining...)
}

// DrawnCards returns a copy of the cards drawn so far, in draw order.
func (d *Deck) DrawnCards() []Card {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Card(nil), d.drawn...)
}

// Draw removes the first count cards and returns them in order.
// It fails with ErrInvalidDrawCount when count <= 0 and with
// ErrInsufficientCards when fewer than count cards remain; a failed draw
// leaves the deck untouched.
func (d *Deck) Draw(count int) ([]Card, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if count <= 0 {
		return nil, &DrawError{Requested: count, Remaining: len(d.remaining), Err: ErrInvalidDrawCount}
	}
	if count > len(d.remaining) {
		return nil, &DrawError{Requested: count, Remaining: len(d.remaining), Err: ErrInsufficientCards}
	}

	drawn := make([]Card, count)
	copy(drawn, d.remaining[:count])

	d.remaining = append(d.remaining[:0:0], d.remaining[count:]...)
	d.drawn = append(d.drawn, drawn...)

	return drawn, nil
}
