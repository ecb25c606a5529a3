package equity

import (
	rand "math/rand/v2"

	"github.com/pokerlab/holdem-advisor/internal/deck"
	"github.com/pokerlab/holdem-advisor/internal/ranges"
)

// MultiwayPoint is the hero's equity against a given number of unknown
// opponents.
type MultiwayPoint struct {
	Opponents int
	Equity    float64
}

// DefaultMultiwayCounts are the opponent counts the profile is sampled at.
var DefaultMultiwayCounts = []int{1, 2, 3, 5}

// MultiwayProfile estimates how the hero's equity falls off as the table
// fills up, sampling each opponent uniformly from all unseen combos. It backs
// the multiway-preference hint: hands whose equity collapses multiway want
// the pot heads-up.
func MultiwayProfile(hero, board []deck.Card, counts []int, trials int, rng *rand.Rand) ([]MultiwayPoint, error) {
	if len(counts) == 0 {
		counts = DefaultMultiwayCounts
	}

	points := make([]MultiwayPoint, 0, len(counts))
	for _, n := range counts {
		opponents := make([]*ranges.Belief, n)
		for i := range opponents {
			opponents[i] = ranges.NewUniformBelief()
		}
		result, err := Estimate(hero, board, opponents, trials, rng)
		if err != nil {
			return nil, err
		}
		points = append(points, MultiwayPoint{Opponents: n, Equity: result.Equity})
	}
	return points, nil
}
