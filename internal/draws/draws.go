// Package draws detects in-progress draws and counts the unseen cards that
// complete them. The unseen population is always 52 minus the cards the hero
// can see (hole + board); opponent holdings are unknown and stay in it.
package draws

import (
	"sort"

	"github.com/pokerlab/holdem-advisor/internal/deck"
)

// Analysis reports each detected draw with its outs, plus a total that counts
// every improving card exactly once even when it completes several draws.
type Analysis struct {
	FlushDraw    bool
	FlushSuit    deck.Suit
	FlushOuts    int
	OpenEnded    bool
	Gutshot      bool
	StraightOuts int
	Overcards    []deck.Card
	OvercardOuts int
	TotalOuts    int
}

// Analyze inspects the hero's two cards against 0-4 board cards. Post-river
// there is nothing left to draw to and the zero value is returned.
func Analyze(hole, board []deck.Card) Analysis {
	var a Analysis
	if len(hole) != 2 || len(board) >= 5 {
		return a
	}

	visible := make([]deck.Card, 0, len(hole)+len(board))
	visible = append(visible, hole...)
	visible = append(visible, board...)
	seen := deck.NewCardSet(visible)

	var improving deck.CardSet

	// Flush draw: exactly four visible cards of one suit, nine unseen remain.
	suitCounts := map[deck.Suit]int{}
	for _, c := range visible {
		suitCounts[c.Suit]++
	}
	for suit, count := range suitCounts {
		if count != 4 {
			continue
		}
		a.FlushDraw = true
		a.FlushSuit = suit
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			card := deck.NewCard(suit, rank)
			if !seen.Contains(card) {
				a.FlushOuts++
				improving.Add(card)
			}
		}
	}

	// Straight draws over the distinct visible ranks.
	uniq := distinctRanks(visible)
	if lo, hi, ok := openEndedRun(uniq); ok {
		a.OpenEnded = true
		a.StraightOuts = 8
		addRankOuts(&improving, seen, lo-1)
		addRankOuts(&improving, seen, hi+1)
	} else if gapRank, ok := gutshotGap(uniq); ok {
		a.Gutshot = true
		a.StraightOuts = 4
		addRankOuts(&improving, seen, gapRank)
	}

	// Overcards: hole cards above the highest board card; pairing one gives
	// top pair. A weak signal, three unseen cards per overcard.
	if len(board) > 0 {
		boardHigh := board[0].Rank
		for _, c := range board[1:] {
			if c.Rank > boardHigh {
				boardHigh = c.Rank
			}
		}
		for _, c := range hole {
			if c.Rank > boardHigh {
				a.Overcards = append(a.Overcards, c)
				for suit := deck.Spades; suit <= deck.Clubs; suit++ {
					card := deck.NewCard(suit, c.Rank)
					if !seen.Contains(card) {
						a.OvercardOuts++
						improving.Add(card)
					}
				}
			}
		}
	}

	a.TotalOuts = improving.Count()
	return a
}

// RuleOfFourAndTwo is the classic quick approximation: outs x4 on the flop
// (two cards to come), x2 on the turn. It is a teaching aid; the sampling
// estimator is the authoritative equity figure.
func RuleOfFourAndTwo(outs int, board []deck.Card) float64 {
	var equity int
	switch len(board) {
	case 3:
		equity = outs * 4
	case 4:
		equity = outs * 2
	default:
		return 0
	}
	if equity > 100 {
		equity = 100
	}
	return float64(equity)
}

func distinctRanks(cards []deck.Card) []deck.Rank {
	present := map[deck.Rank]bool{}
	for _, c := range cards {
		present[c.Rank] = true
	}
	out := make([]deck.Rank, 0, len(present))
	for r := range present {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// openEndedRun finds four consecutive ranks with room to extend on both ends
func openEndedRun(uniq []deck.Rank) (lo, hi deck.Rank, ok bool) {
	for i := 0; i+3 < len(uniq); i++ {
		if uniq[i+3]-uniq[i] != 3 {
			continue
		}
		if uniq[i] > deck.Two && uniq[i+3] < deck.Ace {
			return uniq[i], uniq[i+3], true
		}
	}
	return 0, 0, false
}

// gutshotGap finds four ranks spanning five with a single internal hole and
// returns the missing rank.
func gutshotGap(uniq []deck.Rank) (deck.Rank, bool) {
	for i := 0; i+3 < len(uniq); i++ {
		window := uniq[i : i+4]
		if window[3]-window[0] != 4 {
			continue
		}
		for r := window[0] + 1; r < window[3]; r++ {
			if !containsRank(window, r) {
				return r, true
			}
		}
	}
	return 0, false
}

func containsRank(ranks []deck.Rank, r deck.Rank) bool {
	for _, x := range ranks {
		if x == r {
			return true
		}
	}
	return false
}

func addRankOuts(improving *deck.CardSet, seen deck.CardSet, rank deck.Rank) {
	if rank < deck.Two || rank > deck.Ace {
		return
	}
	for suit := deck.Spades; suit <= deck.Clubs; suit++ {
		card := deck.NewCard(suit, rank)
		if !seen.Contains(card) {
			improving.Add(card)
		}
	}
}
