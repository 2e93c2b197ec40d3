package game

import "math/rand"

// DefaultPairs is used when the client omits num_pairs or sends a
// non-positive value.
const DefaultPairs = 8

// Deck is the shuffled board: each symbol index in [0, numPairs) appears
// exactly twice, so len(deck) == 2*numPairs.
type Deck []int

// GenerateDeck builds the paired deck and applies a Fisher-Yates shuffle.
// The shuffle is for game fairness only, not credential generation, so
// math/rand is fine here.
func GenerateDeck(numPairs int) Deck {
	if numPairs <= 0 {
		numPairs = DefaultPairs
	}

	deck := make(Deck, 0, 2*numPairs)
	for i := 0; i < numPairs; i++ {
		deck = append(deck, i, i)
	}

	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}
