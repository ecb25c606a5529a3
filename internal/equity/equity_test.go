package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokerlab/holdem-advisor/internal/deck"
	"github.com/pokerlab/holdem-advisor/internal/randutil"
	"github.com/pokerlab/holdem-advisor/internal/ranges"
)

func TestEstimateValidatesInput(t *testing.T) {
	rng := randutil.New(1)
	opp := []*ranges.Belief{ranges.NewBelief(ranges.Button)}

	_, err := Estimate(deck.MustParseCards("As"), nil, opp, 100, rng)
	assert.Error(t, err)

	_, err = Estimate(deck.MustParseCards("AsKs"), deck.MustParseCards("2c3c4c5c6c7c"), opp, 100, rng)
	assert.Error(t, err)
}

func TestEstimateZeroOpponents(t *testing.T) {
	rng := randutil.New(1)
	result, err := Estimate(deck.MustParseCards("AsKs"), nil, nil, 100, rng)
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.WinPercentage)
	assert.Equal(t, 100.0, result.Equity)
	assert.Zero(t, result.Trials)
}

func TestEstimateSkipsFoldedOpponents(t *testing.T) {
	rng := randutil.New(1)
	folded := ranges.NewBelief(ranges.Button)
	folded.ObserveFold()

	result, err := Estimate(deck.MustParseCards("AsKs"), nil, []*ranges.Belief{folded}, 100, rng)
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Equity)
	assert.Zero(t, result.Trials)
}

func TestPocketAcesBeatWideRange(t *testing.T) {
	hero := deck.MustParseCards("AsAh")
	opp := []*ranges.Belief{ranges.NewBelief(ranges.BigBlind)}

	result, err := Estimate(hero, nil, opp, 1500, randutil.New(42))
	require.NoError(t, err)

	assert.Greater(t, result.Equity, 75.0, "aces should dominate a wide range")
	assert.Less(t, result.Equity, 95.0)
	assert.Equal(t, 1500, result.Trials)
}

func TestAcesVersusKingsConverges(t *testing.T) {
	hero := deck.MustParseCards("AsAh")
	kk, ok := ranges.ClassByNotation("KK")
	require.True(t, ok)
	opp := []*ranges.Belief{ranges.NewBeliefFromClasses(kk)}

	result, err := Estimate(hero, nil, opp, 4000, randutil.New(1234))
	require.NoError(t, err)

	assert.InDelta(t, 81.0, result.Equity, 3.0, "AA vs KK preflop runs about 81%%")
}

func TestPercentagesSumToHundred(t *testing.T) {
	hero := deck.MustParseCards("JhTh")
	board := deck.MustParseCards("9h8h2c")
	opp := []*ranges.Belief{
		ranges.NewBelief(ranges.Cutoff),
		ranges.NewBelief(ranges.Button),
	}

	result, err := Estimate(hero, board, opp, 1000, randutil.New(7))
	require.NoError(t, err)

	sum := result.WinPercentage + result.TiePercentage + result.LossPercentage
	assert.InDelta(t, 100.0, sum, 1e-9)
	assert.GreaterOrEqual(t, result.Equity, result.WinPercentage)
	assert.LessOrEqual(t, result.Equity, result.WinPercentage+result.TiePercentage)
}

func TestEstimateDeterministicUnderSeed(t *testing.T) {
	hero := deck.MustParseCards("QdQc")
	board := deck.MustParseCards("Jh7s2d")
	newOpps := func() []*ranges.Belief {
		return []*ranges.Belief{ranges.NewBelief(ranges.Button)}
	}

	for _, trials := range []int{800, 4000} {
		a, err := Estimate(hero, board, newOpps(), trials, randutil.New(123))
		require.NoError(t, err)
		b, err := Estimate(hero, board, newOpps(), trials, randutil.New(123))
		require.NoError(t, err)
		assert.Equal(t, a, b, "same seed must reproduce the estimate at %d trials", trials)
	}
}

func TestRiverBoardNotResampled(t *testing.T) {
	// Hero holds the royal flush on a fully dealt board; no completion is
	// possible and every trial must be a win.
	hero := deck.MustParseCards("AsKs")
	board := deck.MustParseCards("QsJsTs2h3d")
	opp := []*ranges.Belief{ranges.NewBelief(ranges.Button)}

	result, err := Estimate(hero, board, opp, 500, randutil.New(9))
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.WinPercentage)
	assert.Equal(t, 100.0, result.Equity)
}

func TestBoardPlaysTie(t *testing.T) {
	// The board itself is a royal flush, so hero and opponent always split.
	hero := deck.MustParseCards("2h3h")
	board := deck.MustParseCards("AsKsQsJsTs")
	opp := []*ranges.Belief{ranges.NewBelief(ranges.Button)}

	result, err := Estimate(hero, board, opp, 500, randutil.New(11))
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.TiePercentage)
	assert.InDelta(t, 50.0, result.Equity, 1e-9)
}

func TestMultiwayProfileFallsOff(t *testing.T) {
	hero := deck.MustParseCards("AcKc")
	points, err := MultiwayProfile(hero, nil, []int{1, 2, 5}, 1000, randutil.New(21))
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, 1, points[0].Opponents)
	assert.Greater(t, points[0].Equity, points[1].Equity,
		"equity must fall as opponents are added")
	assert.Greater(t, points[1].Equity, points[2].Equity)
}

func TestUniformBeliefCoversAllCombos(t *testing.T) {
	b := ranges.NewUniformBelief()
	assert.InDelta(t, 1326.0, b.TotalWeight(), 1e-9)
	assert.InDelta(t, 100.0, b.PercentRemaining(), 1e-9)
}

func TestDegradedFallbackWhenRangeBlocked(t *testing.T) {
	// Narrow an opponent down to pocket aces, then block every ace with the
	// hero's hand and the board. Sampling must fall back to uniform draws
	// and flag the result.
	opp := ranges.NewBelief(ranges.UnderTheGun)
	for i := 0; i < 4; i++ {
		opp.ObserveRaise(1000, 100)
	}
	require.Greater(t, opp.TotalWeight(), 0.0)

	hero := deck.MustParseCards("AsAh")
	board := deck.MustParseCards("AdAc2s")

	result, err := Estimate(hero, board, []*ranges.Belief{opp}, 500, randutil.New(3))
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Equal(t, 500, result.Trials)
	assert.Greater(t, result.WinPercentage, 99.0, "quad aces should win essentially every trial")
}
