// Package ranges models what each opponent is believed to hold: a weight over
// the 169 canonical starting-hand classes that starts from a position-indexed
// distribution and only ever narrows as actions are observed.
package ranges

import (
	"fmt"

	"github.com/pokerlab/holdem-advisor/internal/deck"
)

// NumClasses is the number of canonical starting-hand classes: 13 pocket
// pairs, 78 suited and 78 offsuit combinations.
const NumClasses = 169

// TotalCombos is the number of concrete two-card starting hands (52 choose 2)
const TotalCombos = 1326

// Class identifies one canonical starting-hand class (e.g. "AKs")
type Class uint8

type classInfo struct {
	notation   string
	high, low  deck.Rank
	suited     bool
	combos     int
	percentile float64
}

var (
	classes         [NumClasses]classInfo
	classByNotation = make(map[string]Class, NumClasses)
)

func init() {
	idx := 0
	for high := deck.Ace; high >= deck.Two; high-- {
		for low := high; low >= deck.Two; low-- {
			if high == low {
				register(&idx, high, low, false, 6)
				continue
			}
			register(&idx, high, low, true, 4)
			register(&idx, high, low, false, 12)
		}
	}
	if idx != NumClasses {
		panic(fmt.Sprintf("ranges: built %d classes, want %d", idx, NumClasses))
	}
}

func register(idx *int, high, low deck.Rank, suited bool, combos int) {
	notation := high.String() + low.String()
	if high != low {
		if suited {
			notation += "s"
		} else {
			notation += "o"
		}
	}
	classes[*idx] = classInfo{
		notation:   notation,
		high:       high,
		low:        low,
		suited:     suited,
		combos:     combos,
		percentile: deck.HandPercentile(notation),
	}
	classByNotation[notation] = Class(*idx)
	*idx++
}

// Notation returns the canonical notation of the class
func (c Class) Notation() string {
	return classes[c].notation
}

// Combos returns how many concrete two-card hands the class contains
func (c Class) Combos() int {
	return classes[c].combos
}

// Percentile returns the class's preflop strength percentile (1.0 = AA)
func (c Class) Percentile() float64 {
	return classes[c].percentile
}

// IsPair reports whether the class is a pocket pair
func (c Class) IsPair() bool {
	return classes[c].high == classes[c].low
}

// IsSuited reports whether the class is a suited combination
func (c Class) IsSuited() bool {
	return classes[c].suited
}

// ClassOf maps two concrete hole cards to their canonical class
func ClassOf(c1, c2 deck.Card) Class {
	return classByNotation[deck.HoleNotation([]deck.Card{c1, c2})]
}

// ClassByNotation looks up a class by its notation
func ClassByNotation(notation string) (Class, bool) {
	c, ok := classByNotation[notation]
	return c, ok
}

// Combinations enumerates the concrete two-card hands in the class
func (c Class) Combinations() [][2]deck.Card {
	info := classes[c]
	var out [][2]deck.Card

	if info.high == info.low {
		for s1 := deck.Spades; s1 <= deck.Clubs; s1++ {
			for s2 := s1 + 1; s2 <= deck.Clubs; s2++ {
				out = append(out, [2]deck.Card{
					deck.NewCard(s1, info.high),
					deck.NewCard(s2, info.low),
				})
			}
		}
		return out
	}

	for s1 := deck.Spades; s1 <= deck.Clubs; s1++ {
		for s2 := deck.Spades; s2 <= deck.Clubs; s2++ {
			if info.suited != (s1 == s2) {
				continue
			}
			out = append(out, [2]deck.Card{
				deck.NewCard(s1, info.high),
				deck.NewCard(s2, info.low),
			})
		}
	}
	return out
}
