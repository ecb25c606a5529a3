// Package equity estimates the hero's chance of winning the pot by Monte
// Carlo sampling: opponent holdings are drawn from their belief-weighted
// ranges, the board is completed uniformly, and the showdown is scored with
// the hand evaluator.
package equity

import (
	"context"
	"fmt"
	rand "math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/pokerlab/holdem-advisor/internal/deck"
	"github.com/pokerlab/holdem-advisor/internal/evaluator"
	"github.com/pokerlab/holdem-advisor/internal/randutil"
	"github.com/pokerlab/holdem-advisor/internal/ranges"
)

const (
	// DefaultTrials is used when the caller does not specify a trial count.
	DefaultTrials = 5000

	// parallelThreshold is the trial count above which the work is split
	// across workers. Below it the goroutine overhead is not worth paying.
	parallelThreshold = 2000

	// parallelWorkers is fixed rather than derived from GOMAXPROCS so a
	// given seed always produces the same split, and therefore the same
	// estimate, on any machine.
	parallelWorkers = 8
)

// Result is the outcome of an equity estimation run.
// WinPercentage, TiePercentage and LossPercentage sum to 100 (up to float
// rounding). Equity folds tie credit in: a trial where the hero ties with m
// opponents contributes 1/(m+1) of a win.
type Result struct {
	WinPercentage  float64
	TiePercentage  float64
	LossPercentage float64
	Equity         float64
	Trials         int
	// Degraded reports that at least one opponent draw fell back to a
	// uniform pick from the unseen cards because every combination in the
	// belief range was blocked by known cards.
	Degraded bool
}

type tally struct {
	wins     int
	ties     int
	credit   float64
	trials   int
	degraded bool
}

func (t *tally) add(other tally) {
	t.wins += other.wins
	t.ties += other.ties
	t.credit += other.credit
	t.trials += other.trials
	t.degraded = t.degraded || other.degraded
}

// Estimate runs trials Monte Carlo showdowns of the hero's hand against the
// live opponents' believed ranges. Folded or empty beliefs are skipped; with
// no live opponent the hero's equity is 100 and no sampling happens. Given
// the same inputs and a same-seeded rng the result is identical across runs.
func Estimate(hero, board []deck.Card, opponents []*ranges.Belief, trials int, rng *rand.Rand) (Result, error) {
	if len(hero) != 2 {
		return Result{}, fmt.Errorf("equity: need exactly 2 hero cards, got %d", len(hero))
	}
	if len(board) > 5 {
		return Result{}, fmt.Errorf("equity: board holds at most 5 cards, got %d", len(board))
	}
	if trials <= 0 {
		trials = DefaultTrials
	}

	live := make([]*ranges.Belief, 0, len(opponents))
	for _, b := range opponents {
		if b == nil || b.Folded() || b.TotalWeight() == 0 {
			continue
		}
		live = append(live, b)
	}
	if len(live) == 0 {
		return Result{WinPercentage: 100, Equity: 100}, nil
	}

	known := make([]deck.Card, 0, len(hero)+len(board))
	known = append(known, hero...)
	known = append(known, board...)
	knownSet := deck.NewCardSet(known)
	base := deck.NewExcluding(known...)

	var total tally
	if trials >= parallelThreshold {
		total = runParallel(hero, board, knownSet, base, live, trials, rng)
	} else {
		total = runTrials(hero, board, knownSet, base, live, trials, rng)
	}

	if total.trials == 0 {
		return Result{}, fmt.Errorf("equity: no valid trials out of %d attempted", trials)
	}

	n := float64(total.trials)
	return Result{
		WinPercentage:  float64(total.wins) / n * 100,
		TiePercentage:  float64(total.ties) / n * 100,
		LossPercentage: float64(total.trials-total.wins-total.ties) / n * 100,
		Equity:         (float64(total.wins) + total.credit) / n * 100,
		Trials:         total.trials,
		Degraded:       total.degraded,
	}, nil
}

func runParallel(hero, board []deck.Card, knownSet deck.CardSet, base *deck.Deck,
	live []*ranges.Belief, trials int, rng *rand.Rand) tally {

	perWorker := trials / parallelWorkers
	remainder := trials % parallelWorkers

	// Seeds are drawn from the caller's rng in worker order, and results
	// are folded back in the same order, so the sum never depends on
	// scheduling.
	seeds := make([]int64, parallelWorkers)
	for i := range seeds {
		seeds[i] = rng.Int64()
	}

	results := make([]tally, parallelWorkers)
	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < parallelWorkers; w++ {
		share := perWorker
		if w < remainder {
			share++
		}
		if share == 0 {
			continue
		}
		seed := seeds[w]
		g.Go(func() error {
			workerRng := randutil.New(seed)
			beliefs := make([]*ranges.Belief, len(live))
			for i, b := range live {
				beliefs[i] = b.Clone()
			}
			results[w] = runTrials(hero, board, knownSet, base, beliefs, share, workerRng)
			return nil
		})
	}
	g.Wait()

	var total tally
	for _, r := range results {
		total.add(r)
	}
	return total
}

func runTrials(hero, board []deck.Card, knownSet deck.CardSet, base *deck.Deck,
	live []*ranges.Belief, trials int, rng *rand.Rand) tally {

	var t tally

	needed := 5 - len(board)
	boardFill := make([]deck.Card, needed)
	fallback := make([]deck.Card, 2)
	scratch := make([]deck.Card, 0, 52)

	heroCards := make([]deck.Card, 7)
	oppCards := make([]deck.Card, 7)
	copy(heroCards[:2], hero)
	copy(heroCards[2:2+len(board)], board)
	copy(oppCards[2:2+len(board)], board)

	holes := make([][2]deck.Card, len(live))

	for trial := 0; trial < trials; trial++ {
		var used deck.CardSet
		ok := true
		for i, belief := range live {
			hand, sampled := belief.SampleHand(knownSet.Union(used), rng)
			if !sampled {
				// Every combination in the range is blocked; fall
				// back to a uniform draw and flag the estimate.
				if err := base.SampleInto(fallback, used, rng, scratch); err != nil {
					ok = false
					break
				}
				hand = fallback
				t.degraded = true
			}
			holes[i] = [2]deck.Card{hand[0], hand[1]}
			used.Add(hand[0])
			used.Add(hand[1])
		}
		if !ok {
			continue
		}

		if needed > 0 {
			if err := base.SampleInto(boardFill, used, rng, scratch); err != nil {
				continue
			}
			copy(heroCards[2+len(board):], boardFill)
			copy(oppCards[2+len(board):], boardFill)
		}

		heroRank := evaluator.MustEvaluate(heroCards)

		beaten := false
		tiedWith := 0
		for _, hole := range holes {
			oppCards[0], oppCards[1] = hole[0], hole[1]
			cmp := heroRank.Compare(evaluator.MustEvaluate(oppCards))
			if cmp < 0 {
				beaten = true
				break
			}
			if cmp == 0 {
				tiedWith++
			}
		}

		t.trials++
		switch {
		case beaten:
		case tiedWith > 0:
			t.ties++
			t.credit += 1 / float64(tiedWith+1)
		default:
			t.wins++
		}
	}

	return t
}
