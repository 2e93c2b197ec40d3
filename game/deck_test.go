package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateDeck_PairedMultiset(t *testing.T) {
	t.Parallel()

	for _, numPairs := range []int{1, 2, 8, 20} {
		deck := GenerateDeck(numPairs)
		require.Len(t, deck, 2*numPairs)

		counts := make(map[int]int)
		for _, v := range deck {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, numPairs)
			counts[v]++
		}
		for symbol := 0; symbol < numPairs; symbol++ {
			require.Equal(t, 2, counts[symbol], "symbol %d", symbol)
		}
	}
}

func TestGenerateDeck_NonPositiveFallsBackToDefault(t *testing.T) {
	t.Parallel()

	require.Len(t, GenerateDeck(0), 2*DefaultPairs)
	require.Len(t, GenerateDeck(-3), 2*DefaultPairs)
}

func TestGenerateDeck_Shuffles(t *testing.T) {
	t.Parallel()

	// With 20 pairs the odds of two independent decks colliding are
	// negligible; a handful of draws should not all be identical.
	first := GenerateDeck(20)
	same := true
	for i := 0; i < 5 && same; i++ {
		next := GenerateDeck(20)
		for j := range first {
			if first[j] != next[j] {
				same = false
				break
			}
		}
	}
	require.False(t, same, "expected shuffled decks to differ")
}
