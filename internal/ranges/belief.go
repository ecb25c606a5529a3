package ranges

import (
	rand "math/rand/v2"
	"sort"

	"github.com/pokerlab/holdem-advisor/internal/deck"
)

// State tracks where a belief is in its per-hand lifecycle
type State int

const (
	// FullRange is the hand-start state: the position-indexed distribution.
	FullRange State = iota
	// Narrowed means at least one observed action has reduced the range.
	Narrowed
	// Folded is terminal: the opponent is out of the hand and carries no
	// weight until the next hand starts.
	Folded
)

// Belief is one opponent's estimated range: a weight per canonical class.
// Weight zero means the class is excluded. Total weight is non-increasing
// within a hand; only Reset (a new hand) restores it.
type Belief struct {
	position     Position
	state        State
	weights      [NumClasses]float64
	initialTotal float64
}

// NewBelief creates the hand-start belief for an opponent in the given
// position. Classes inside the position's opening share get full weight;
// a fringe just below it keeps reduced weight (loose calls, blind defends);
// everything weaker is excluded outright.
func NewBelief(position Position) *Belief {
	b := &Belief{position: position}
	b.initialize()
	return b
}

// NewUniformBelief returns a belief with every class at full weight, which
// makes SampleHand a uniform draw over all 1326 combos. Used when nothing
// about the opponent is known, such as the multiway equity profile.
func NewUniformBelief() *Belief {
	b := &Belief{position: MiddlePosition, state: FullRange}
	for i := range b.weights {
		b.weights[i] = float64(Class(i).Combos())
		b.initialTotal += b.weights[i]
	}
	return b
}

// NewBeliefFromClasses returns a belief restricted to the given classes at
// full combo weight, for callers that pin an exact range (known-matchup
// equity checks, tooling).
func NewBeliefFromClasses(cs ...Class) *Belief {
	b := &Belief{position: MiddlePosition, state: Narrowed}
	for _, c := range cs {
		b.weights[c] = float64(c.Combos())
		b.initialTotal += b.weights[c]
	}
	return b
}

func (b *Belief) initialize() {
	open := openingShare(b.position)
	floor := 1 - open
	fringe := 1 - 2*open
	if fringe < 0 {
		fringe = 0
	}

	b.state = FullRange
	b.initialTotal = 0
	for i := range b.weights {
		c := Class(i)
		var w float64
		switch {
		case c.Percentile() >= floor:
			w = float64(c.Combos())
		case c.Percentile() >= fringe:
			w = float64(c.Combos()) * 0.25
		}
		b.weights[i] = w
		b.initialTotal += w
	}
}

// Position returns the opponent's seat
func (b *Belief) Position() Position {
	return b.position
}

// State returns the lifecycle state
func (b *Belief) State() State {
	return b.state
}

// Folded reports whether the opponent has folded this hand
func (b *Belief) Folded() bool {
	return b.state == Folded
}

// TotalWeight sums the current class weights
func (b *Belief) TotalWeight() float64 {
	var total float64
	for _, w := range b.weights {
		total += w
	}
	return total
}

// PercentRemaining is the share of the hand-start weight still live, 0-100
func (b *Belief) PercentRemaining() float64 {
	if b.state == Folded || b.initialTotal == 0 {
		return 0
	}
	return b.TotalWeight() / b.initialTotal * 100
}

// Reset restores the position-indexed starting distribution. Called only at
// the start of a new hand.
func (b *Belief) Reset() {
	b.initialize()
}

// Clone returns an independent copy, used to snapshot a session before the
// sampling loop runs.
func (b *Belief) Clone() *Belief {
	copied := *b
	return &copied
}

// ObserveFold transitions to the terminal folded state: all weight drops to
// zero and the opponent is excluded from further equity sampling.
func (b *Belief) ObserveFold() {
	b.state = Folded
	for i := range b.weights {
		b.weights[i] = 0
	}
}

// ObserveCheck records a check. Checking reveals little; the range is kept
// as-is, which preserves monotonicity trivially.
func (b *Belief) ObserveCheck() {}

// ObserveCall narrows the range to hands worth calling with: classes below a
// position- and pot-odds-indexed strength floor are excluded. Good pot odds
// relax the floor, since more speculative hands call profitably.
func (b *Belief) ObserveCall(potSize, callAmount float64) {
	if b.state == Folded {
		return
	}

	floor := 1 - 1.8*openingShare(b.position)
	if callAmount > 0 {
		potOdds := potSize / callAmount
		switch {
		case potOdds >= 4:
			floor -= 0.15
		case potOdds >= 2:
			floor -= 0.08
		}
	}
	if floor < 0 {
		floor = 0
	}

	for i := range b.weights {
		if Class(i).Percentile() < floor {
			b.weights[i] = 0
		}
	}
	b.state = Narrowed
}

// ObserveRaise narrows the range to the top-weighted slice of classes by
// strength. The retained fraction comes from the bet-sizing table: larger
// bets relative to the pot keep a narrower, more polarized subset.
func (b *Belief) ObserveRaise(betSize, potSize float64) {
	if b.state == Folded {
		return
	}

	fraction := AnalyzeBetSizing(betSize, potSize).RetainedFraction
	total := b.TotalWeight()
	if total == 0 {
		b.state = Narrowed
		return
	}
	budget := total * fraction

	order := make([]Class, 0, NumClasses)
	for i := range b.weights {
		if b.weights[i] > 0 {
			order = append(order, Class(i))
		}
	}
	sort.Slice(order, func(i, j int) bool {
		return order[i].Percentile() > order[j].Percentile()
	})

	var kept float64
	for _, c := range order {
		if kept >= budget {
			b.weights[c] = 0
			continue
		}
		kept += b.weights[c]
	}
	b.state = Narrowed
}

// SampleHand draws a concrete two-card holding: a weighted class draw, then a
// uniform pick among the class's combinations not blocked by the exclusion
// set. If the drawn class is fully blocked, other live classes are tried in
// weight order before giving up; a false return tells the caller to fall
// back to a uniform draw from the unseen cards.
func (b *Belief) SampleHand(exclude deck.CardSet, rng *rand.Rand) ([]deck.Card, bool) {
	if b.state == Folded {
		return nil, false
	}
	total := b.TotalWeight()
	if total == 0 {
		return nil, false
	}

	target := rng.Float64() * total
	picked := -1
	var cum float64
	for i, w := range b.weights {
		if w == 0 {
			continue
		}
		cum += w
		if target < cum {
			picked = i
			break
		}
	}
	if picked < 0 {
		picked = lastLiveClass(b)
		if picked < 0 {
			return nil, false
		}
	}

	if hand, ok := pickCombo(Class(picked), exclude, rng); ok {
		return hand, true
	}

	// The chosen class had every combo blocked; scan the rest of the range.
	for i, w := range b.weights {
		if w == 0 || i == picked {
			continue
		}
		if hand, ok := pickCombo(Class(i), exclude, rng); ok {
			return hand, true
		}
	}
	return nil, false
}

func lastLiveClass(b *Belief) int {
	for i := NumClasses - 1; i >= 0; i-- {
		if b.weights[i] > 0 {
			return i
		}
	}
	return -1
}

func pickCombo(c Class, exclude deck.CardSet, rng *rand.Rand) ([]deck.Card, bool) {
	var candidates [][2]deck.Card
	for _, combo := range c.Combinations() {
		if exclude.Contains(combo[0]) || exclude.Contains(combo[1]) {
			continue
		}
		candidates = append(candidates, combo)
	}
	if len(candidates) == 0 {
		return nil, false
	}
	combo := candidates[rng.IntN(len(candidates))]
	return []deck.Card{combo[0], combo[1]}, true
}

// GroupView is a grouped listing of the live range for display
type GroupView struct {
	Pairs   []string
	Suited  []string
	Offsuit []string
}

// GroupedSample lists up to limit live classes per group, strongest first
func (b *Belief) GroupedSample(limit int) GroupView {
	order := make([]Class, 0, NumClasses)
	for i := range b.weights {
		if b.weights[i] > 0 {
			order = append(order, Class(i))
		}
	}
	sort.Slice(order, func(i, j int) bool {
		if b.weights[order[i]] != b.weights[order[j]] {
			return b.weights[order[i]] > b.weights[order[j]]
		}
		return order[i].Percentile() > order[j].Percentile()
	})

	var view GroupView
	for _, c := range order {
		switch {
		case c.IsPair():
			if len(view.Pairs) < limit {
				view.Pairs = append(view.Pairs, c.Notation())
			}
		case c.IsSuited():
			if len(view.Suited) < limit {
				view.Suited = append(view.Suited, c.Notation())
			}
		default:
			if len(view.Offsuit) < limit {
				view.Offsuit = append(view.Offsuit, c.Notation())
			}
		}
	}
	return view
}
