package domain

import "strings"

// Suit is one of the four French suits, stored as its code symbol.
type Suit string

// Suits in the order used to build a standard deck.
const (
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
	Spades   Suit = "S"
)

// Rank is a card rank, stored as its code symbol.
type Rank string

// Ranks in the order used to build a standard deck.
const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// StandardDeckSize is the number of cards in a full deck.
const StandardDeckSize = 52

var (
	allSuits = []Suit{Hearts, Diamonds, Clubs, Spades}
	allRanks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

	suitNames = map[Suit]string{
		Hearts:   "Hearts",
		Diamonds: "Diamonds",
		Clubs:    "Clubs",
		Spades:   "Spades",
	}

	rankNames = map[Rank]string{
		Ace:   "Ace",
		Two:   "Two",
		Three: "Three",
		Four:  "Four",
		Five:  "Five",
		Six:   "Six",
		Seven: "Seven",
		Eight: "Eight",
		Nine:  "Nine",
		Ten:   "Ten",
		Jack:  "Jack",
		Queen: "Queen",
		King:  "King",
	}
)

// Suits returns the four suits in deck order.
func Suits() []Suit {
	return append([]Suit(nil), allSuits...)
}

// Ranks returns the thirteen ranks in deck order, Ace first.
func Ranks() []Rank {
	return append([]Rank(nil), allRanks...)
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	_, ok := suitNames[s]
	return ok
}

// Name returns the long name of the suit, e.g. "Hearts".
func (s Suit) Name() string {
	return suitNames[s]
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	_, ok := rankNames[r]
	return ok
}

// Name returns the long name of the rank, e.g. "Ace".
func (r Rank) Name() string {
	return rankNames[r]
}

// Card is an immutable playing card.
// Card is an immutable playing card value.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard returns the card with the given rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Code encodes the card as rank symbol followed by suit symbol, e.g. "10S".
func (c Card) Code() string {
	return string(c.Rank) + string(c.Suit)
}

// String returns the card code.
func (c Card) String() string {
	return c.Code()
}

// ParseCardCode decodes a card code such as "AH" or "10D".
// The suit is always the final character; everything before it is the rank.
// Codes are case-sensitive.
func ParseCardCode(code string) (Card, error) {
	if len(code) < 2 {
		return Card{}, &CardCodeError{Code: code}
	}

	rank := Rank(code[:len(code)-1])
	suit := Suit(code[len(code)-1:])
	if !rank.Valid() || !suit.Valid() {
		return Card{}, &CardCodeError{Code: code}
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCardCodes decodes every code in order, failing on the first invalid one.
// Duplicate codes are kept.
func ParseCardCodes(codes []string) ([]Card, error) {
	cards := make([]Card, 0, len(codes))
	for _, code := range codes {
		card, err := ParseCardCode(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// StandardCards returns the 52 cards of a standard deck, suit-major:
// Ace to King of Hearts, then Diamonds, Clubs and Spades.
func StandardCards() []Card {
	cards := make([]Card, 0, StandardDeckSize)
	for _, suit := range allSuits {
		for _, rank := range allRanks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}

// Codes returns the code of every card, in order.
func Codes(cards []Card) []string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.Code()
	}
	return codes
}

// JoinCodes renders cards as a comma separated code list, e.g. "AH,KS".
func JoinCodes(cards []Card) string {
	return strings.Join(Codes(cards), ",")
}
