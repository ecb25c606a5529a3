package ranges

import (
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokerlab/holdem-advisor/internal/deck"
)

func TestClassEnumeration(t *testing.T) {
	totalCombos := 0
	pairs, suited, offsuit := 0, 0, 0
	for i := 0; i < NumClasses; i++ {
		c := Class(i)
		totalCombos += c.Combos()
		switch {
		case c.IsPair():
			pairs++
			assert.Equal(t, 6, c.Combos(), c.Notation())
		case c.IsSuited():
			suited++
			assert.Equal(t, 4, c.Combos(), c.Notation())
		default:
			offsuit++
			assert.Equal(t, 12, c.Combos(), c.Notation())
		}
	}

	assert.Equal(t, 13, pairs)
	assert.Equal(t, 78, suited)
	assert.Equal(t, 78, offsuit)
	assert.Equal(t, TotalCombos, totalCombos)
}

func TestClassOf(t *testing.T) {
	cards := deck.MustParseCards("AsKs")
	assert.Equal(t, "AKs", ClassOf(cards[0], cards[1]).Notation())

	cards = deck.MustParseCards("KdAh")
	assert.Equal(t, "AKo", ClassOf(cards[0], cards[1]).Notation())

	cards = deck.MustParseCards("7c7d")
	assert.Equal(t, "77", ClassOf(cards[0], cards[1]).Notation())
}

func TestCombinationsMatchClass(t *testing.T) {
	c, ok := ClassByNotation("AKs")
	require.True(t, ok)
	combos := c.Combinations()
	assert.Len(t, combos, 4)
	for _, combo := range combos {
		assert.Equal(t, c, ClassOf(combo[0], combo[1]))
	}

	pair, ok := ClassByNotation("TT")
	require.True(t, ok)
	assert.Len(t, pair.Combinations(), 6)
}

func TestPositionWidthOrdering(t *testing.T) {
	utg := NewBelief(UnderTheGun)
	co := NewBelief(Cutoff)
	btn := NewBelief(Button)

	assert.Less(t, utg.TotalWeight(), co.TotalWeight(),
		"early position should start tighter than the cutoff")
	assert.Less(t, co.TotalWeight(), btn.TotalWeight(),
		"cutoff should start tighter than the button")
}

func TestBeliefStartsFullRange(t *testing.T) {
	b := NewBelief(Button)
	assert.Equal(t, FullRange, b.State())
	assert.InDelta(t, 100.0, b.PercentRemaining(), 1e-9)
}

func TestFoldIsTerminal(t *testing.T) {
	b := NewBelief(MiddlePosition)
	b.ObserveFold()

	assert.Equal(t, Folded, b.State())
	assert.Zero(t, b.PercentRemaining())

	_, ok := b.SampleHand(0, rand.New(rand.NewPCG(1, 2)))
	assert.False(t, ok, "folded opponents must not be sampled")

	// Later observations must not revive the range.
	b.ObserveCall(100, 20)
	b.ObserveRaise(50, 100)
	assert.Zero(t, b.PercentRemaining())
}

func TestNarrowingIsMonotone(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 7))

	for trial := 0; trial < 50; trial++ {
		pos := Position(rng.IntN(8))
		b := NewBelief(pos)
		last := b.PercentRemaining()

		for step := 0; step < 10; step++ {
			switch rng.IntN(4) {
			case 0:
				b.ObserveCheck()
			case 1:
				b.ObserveCall(float64(rng.IntN(500)+10), float64(rng.IntN(100)+1))
			case 2:
				b.ObserveRaise(float64(rng.IntN(300)+1), float64(rng.IntN(300)+10))
			case 3:
				// Skip folding until the end so the sequence stays interesting.
			}
			current := b.PercentRemaining()
			assert.LessOrEqual(t, current, last+1e-9,
				"range must never widen within a hand (position %v step %d)", pos, step)
			last = current
		}

		b.ObserveFold()
		assert.Zero(t, b.PercentRemaining())
	}
}

func TestRaiseSizingNarrowing(t *testing.T) {
	small := NewBelief(Button)
	small.ObserveRaise(25, 100) // quarter pot

	big := NewBelief(Button)
	big.ObserveRaise(200, 100) // 2x pot overbet

	assert.Less(t, big.PercentRemaining(), small.PercentRemaining(),
		"bigger bets should leave a narrower range")
	assert.Greater(t, big.PercentRemaining(), 0.0)
}

func TestResetRestoresInitialDistribution(t *testing.T) {
	b := NewBelief(Cutoff)
	initial := b.TotalWeight()

	b.ObserveRaise(100, 100)
	b.ObserveFold()
	assert.Zero(t, b.TotalWeight())

	b.Reset()
	assert.Equal(t, FullRange, b.State())
	assert.InDelta(t, initial, b.TotalWeight(), 1e-9)
}

func TestSampleHandRespectsExclusions(t *testing.T) {
	b := NewBelief(Button)
	exclude := deck.NewCardSet(deck.MustParseCards("AsAhAdKsKh"))
	rng := rand.New(rand.NewPCG(5, 6))

	for i := 0; i < 500; i++ {
		hand, ok := b.SampleHand(exclude, rng)
		require.True(t, ok)
		require.Len(t, hand, 2)
		assert.False(t, exclude.Contains(hand[0]), "sampled excluded card %v", hand[0])
		assert.False(t, exclude.Contains(hand[1]), "sampled excluded card %v", hand[1])
		assert.NotEqual(t, hand[0], hand[1])

		// Every sampled hand must belong to a live class.
		class := ClassOf(hand[0], hand[1])
		assert.Greater(t, b.weights[class], 0.0, "sampled dead class %s", class.Notation())
	}
}

func TestSampleHandDrawsStrongHandsAfterBigRaise(t *testing.T) {
	b := NewBelief(UnderTheGun)
	b.ObserveRaise(300, 100)

	rng := rand.New(rand.NewPCG(8, 8))
	for i := 0; i < 200; i++ {
		hand, ok := b.SampleHand(0, rng)
		require.True(t, ok)
		pct := ClassOf(hand[0], hand[1]).Percentile()
		assert.Greater(t, pct, 0.9, "UTG overbet range should be premium, got %s",
			ClassOf(hand[0], hand[1]).Notation())
	}
}

func TestGroupedSample(t *testing.T) {
	b := NewBelief(UnderTheGun)
	view := b.GroupedSample(5)

	assert.NotEmpty(t, view.Pairs)
	assert.LessOrEqual(t, len(view.Pairs), 5)
	assert.Contains(t, view.Pairs, "AA")
	for _, notation := range view.Suited {
		c, ok := ClassByNotation(notation)
		require.True(t, ok)
		assert.True(t, c.IsSuited())
	}
}

func TestAnalyzeBetSizingBuckets(t *testing.T) {
	tests := []struct {
		bet, pot float64
		fraction float64
	}{
		{25, 100, 0.60},
		{40, 100, 0.50},
		{60, 100, 0.40},
		{100, 100, 0.30},
		{140, 100, 0.20},
		{250, 100, 0.12},
	}

	for _, tt := range tests {
		profile := AnalyzeBetSizing(tt.bet, tt.pot)
		assert.Equal(t, tt.fraction, profile.RetainedFraction,
			"bet %.0f into %.0f", tt.bet, tt.pot)
	}

	assert.Equal(t, 1.0, AnalyzeBetSizing(0, 100).RetainedFraction)
}
