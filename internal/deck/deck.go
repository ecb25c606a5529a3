package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrExhausted is returned when a sample requests more cards than remain
// unused. With a 52-card universe and normal player counts this should never
// happen, but callers are expected to check it.
var ErrExhausted = errors.New("deck: not enough cards remain to sample")

// Deck is the 52-card universe minus the cards already known to be dealt.
// It supports uniform sampling without replacement against an additional
// caller-supplied exclusion set, so a single Deck can serve many simulation
// trials that each consume different cards.
type Deck struct {
	cards []Card
}

// New creates a deck holding all 52 cards
func New() *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	return d
}

// NewExcluding creates a deck with the given known cards removed
func NewExcluding(known ...Card) *Deck {
	d := New()
	d.Remove(known...)
	return d
}

// Remove removes the given cards from the deck
func (d *Deck) Remove(cards ...Card) {
	set := NewCardSet(cards)
	kept := d.cards[:0]
	for _, c := range d.cards {
		if !set.Contains(c) {
			kept = append(kept, c)
		}
	}
	d.cards = kept
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Sample draws k distinct cards uniformly at random, skipping any card in the
// exclusion set. The deck itself is not mutated, so concurrent trials can
// share one Deck as long as they pass their own exclusions and RNG.
func (d *Deck) Sample(k int, exclude CardSet, rng *rand.Rand) ([]Card, error) {
	candidates := make([]Card, 0, len(d.cards))
	for _, c := range d.cards {
		if !exclude.Contains(c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) < k {
		return nil, ErrExhausted
	}

	// Partial Fisher-Yates: move each pick to the tail so it cannot repeat.
	out := make([]Card, 0, k)
	n := len(candidates)
	for i := 0; i < k; i++ {
		j := rng.IntN(n - i)
		out = append(out, candidates[j])
		candidates[j], candidates[n-1-i] = candidates[n-1-i], candidates[j]
	}
	return out, nil
}

// SampleInto is the allocation-free variant of Sample used by hot simulation
// loops. It fills dst (whose length is the number of cards wanted) using
// scratch as candidate space; scratch must have capacity for the whole deck.
func (d *Deck) SampleInto(dst []Card, exclude CardSet, rng *rand.Rand, scratch []Card) error {
	candidates := scratch[:0]
	for _, c := range d.cards {
		if !exclude.Contains(c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) < len(dst) {
		return ErrExhausted
	}

	n := len(candidates)
	for i := range dst {
		j := rng.IntN(n - i)
		dst[i] = candidates[j]
		candidates[j], candidates[n-1-i] = candidates[n-1-i], candidates[j]
	}
	return nil
}
