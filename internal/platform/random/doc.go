// Package random provides the seedable random source used to shuffle decks.
package random
