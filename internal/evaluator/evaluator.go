package evaluator

import (
	"fmt"
	"sort"

	"github.com/pokerlab/holdem-advisor/internal/deck"
)

// Category represents a poker hand category, ordered weakest to strongest.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the display name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandRank is the ordered result of evaluating a hand: a category plus the
// tiebreak ranks that order hands within the category (most significant
// first). Equal HandRanks are ties and split the pot.
type HandRank struct {
	Category  Category
	Tiebreaks []deck.Rank
}

// Compare returns 1 if h is the better hand, -1 if other is better, 0 on a
// tie. Comparison is category first, then tiebreaks element-wise.
func (h HandRank) Compare(other HandRank) int {
	if h.Category != other.Category {
		if h.Category > other.Category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(h.Tiebreaks) && i < len(other.Tiebreaks); i++ {
		if h.Tiebreaks[i] != other.Tiebreaks[i] {
			if h.Tiebreaks[i] > other.Tiebreaks[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// IsRoyal reports whether the hand is an ace-high straight flush
func (h HandRank) IsRoyal() bool {
	return h.Category == StraightFlush && len(h.Tiebreaks) > 0 && h.Tiebreaks[0] == deck.Ace
}

// String returns a description of the hand rank
func (h HandRank) String() string {
	if h.IsRoyal() {
		return "Royal Flush"
	}
	return h.Category.String()
}

// Evaluate returns the best 5-card HandRank achievable from 5 to 7 cards.
// Fewer than 5 cards is a precondition violation, not a runtime condition.
func Evaluate(cards []deck.Card) (HandRank, error) {
	if len(cards) < 5 {
		return HandRank{}, fmt.Errorf("evaluator: need at least 5 cards, got %d", len(cards))
	}
	if len(cards) > 7 {
		return HandRank{}, fmt.Errorf("evaluator: at most 7 cards supported, got %d", len(cards))
	}

	if len(cards) == 5 {
		return evaluateFive(cards), nil
	}

	// Choosing 5 of n is the same as dropping n-5, which keeps the loops flat:
	// 6 subsets for six cards, 21 for seven.
	var (
		best    HandRank
		haveOne bool
		subset  [5]deck.Card
	)
	consider := func(dropA, dropB int) {
		k := 0
		for idx, c := range cards {
			if idx == dropA || idx == dropB {
				continue
			}
			subset[k] = c
			k++
		}
		rank := evaluateFive(subset[:])
		if !haveOne || rank.Compare(best) > 0 {
			best = rank
			haveOne = true
		}
	}

	if len(cards) == 6 {
		for i := range cards {
			consider(i, -1)
		}
	} else {
		for i := 0; i < len(cards); i++ {
			for j := i + 1; j < len(cards); j++ {
				consider(i, j)
			}
		}
	}
	return best, nil
}

// MustEvaluate is Evaluate for call sites that already guarantee the card
// count, such as the simulation loop building 7-card hands.
func MustEvaluate(cards []deck.Card) HandRank {
	rank, err := Evaluate(cards)
	if err != nil {
		panic(err)
	}
	return rank
}

// evaluateFive evaluates exactly 5 cards
func evaluateFive(cards []deck.Card) HandRank {
	ranks := make([]deck.Rank, 5)
	flush := true
	for i, c := range cards {
		ranks[i] = c.Rank
		if c.Suit != cards[0].Suit {
			flush = false
		}
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	straightHigh, isStraight := straightHighRank(ranks)

	counts := map[deck.Rank]int{}
	for _, r := range ranks {
		counts[r]++
	}

	// Ranks ordered by multiplicity, then by rank, descending. This is the
	// tiebreak order for the paired categories.
	byCount := make([]deck.Rank, 0, len(counts))
	for r := range counts {
		byCount = append(byCount, r)
	}
	sort.Slice(byCount, func(i, j int) bool {
		if counts[byCount[i]] != counts[byCount[j]] {
			return counts[byCount[i]] > counts[byCount[j]]
		}
		return byCount[i] > byCount[j]
	})

	switch {
	case isStraight && flush:
		return HandRank{Category: StraightFlush, Tiebreaks: []deck.Rank{straightHigh}}
	case counts[byCount[0]] == 4:
		return HandRank{Category: FourOfAKind, Tiebreaks: byCount}
	case counts[byCount[0]] == 3 && counts[byCount[1]] == 2:
		return HandRank{Category: FullHouse, Tiebreaks: byCount}
	case flush:
		return HandRank{Category: Flush, Tiebreaks: ranks}
	case isStraight:
		return HandRank{Category: Straight, Tiebreaks: []deck.Rank{straightHigh}}
	case counts[byCount[0]] == 3:
		return HandRank{Category: ThreeOfAKind, Tiebreaks: byCount}
	case counts[byCount[0]] == 2 && counts[byCount[1]] == 2:
		return HandRank{Category: TwoPair, Tiebreaks: byCount}
	case counts[byCount[0]] == 2:
		return HandRank{Category: OnePair, Tiebreaks: byCount}
	default:
		return HandRank{Category: HighCard, Tiebreaks: ranks}
	}
}

// straightHighRank returns the high card of a straight formed by five
// distinct descending ranks. The wheel (A-2-3-4-5) counts as a five-high
// straight, below the six-high straight.
func straightHighRank(desc []deck.Rank) (deck.Rank, bool) {
	for i := 1; i < len(desc); i++ {
		if desc[i] == desc[i-1] {
			return 0, false
		}
	}
	if desc[0]-desc[4] == 4 {
		return desc[0], true
	}
	if desc[0] == deck.Ace && desc[1] == deck.Five && desc[1]-desc[4] == 3 {
		return deck.Five, true
	}
	return 0, false
}
