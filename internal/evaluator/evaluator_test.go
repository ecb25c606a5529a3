package evaluator

import (
	rand "math/rand/v2"
	"testing"

	"github.com/pokerlab/holdem-advisor/internal/deck"
)

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		cards    string
		expected string
	}{
		{"AsKsQsJsTs9h8h", "Royal Flush"},
		{"9s8s7s6s5s4h3h", "Straight Flush"},
		{"AsAhAdAcKs2h3h", "Four of a Kind"},
		{"AsAhAdKsKh2h3h", "Full House"},
		{"AsKsQs9s7s4h3h", "Flush"},
		{"AsKhQdJsTs9h8h", "Straight"},
		{"AsAhAdKsQh2h3h", "Three of a Kind"},
		{"AsAhKdKsQh2h3h", "Two Pair"},
		{"AsAhKdQs9h2h3h", "One Pair"},
		{"AsKhQd9s7c5h3h", "High Card"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			rank, err := Evaluate(deck.MustParseCards(tt.cards))
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			if rank.String() != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, rank.String())
			}
		})
	}
}

func TestEvaluateRejectsShortInput(t *testing.T) {
	if _, err := Evaluate(deck.MustParseCards("AsKs")); err == nil {
		t.Fatal("expected error for fewer than 5 cards")
	}
	if _, err := Evaluate(deck.MustParseCards("AsKsQsJsTs9h8h7h")); err == nil {
		t.Fatal("expected error for more than 7 cards")
	}
}

func TestWheelStraightRanksBelowSixHigh(t *testing.T) {
	wheel, err := Evaluate(deck.MustParseCards("Ah2s3d4c5h"))
	if err != nil {
		t.Fatal(err)
	}
	sixHigh, err := Evaluate(deck.MustParseCards("2s3d4c5h6s"))
	if err != nil {
		t.Fatal(err)
	}

	if wheel.Category != Straight {
		t.Fatalf("wheel should be a straight, got %s", wheel.Category)
	}
	if wheel.Tiebreaks[0] != deck.Five {
		t.Errorf("wheel should be five-high, got %s", wheel.Tiebreaks[0])
	}
	if sixHigh.Compare(wheel) <= 0 {
		t.Error("six-high straight should beat the wheel")
	}
}

func TestWheelStraightFlush(t *testing.T) {
	wheel, err := Evaluate(deck.MustParseCards("Ah2h3h4h5h"))
	if err != nil {
		t.Fatal(err)
	}
	if wheel.Category != StraightFlush {
		t.Fatalf("expected straight flush, got %s", wheel.Category)
	}
	if wheel.IsRoyal() {
		t.Error("wheel straight flush is not a royal flush")
	}
}

func TestEvaluateOrderInvariance(t *testing.T) {
	hands := []string{
		"AsKsQsJsTs9h8h",
		"AsAhAdKsKh2h3h",
		"Ah2s3d4c5h9s9d",
		"AsKhQd9s7c5h3h",
		"7h8h9hThJh2c2d",
	}

	rng := rand.New(rand.NewPCG(11, 17))
	for _, hand := range hands {
		cards := deck.MustParseCards(hand)
		base, err := Evaluate(cards)
		if err != nil {
			t.Fatal(err)
		}

		for i := 0; i < 50; i++ {
			shuffled := make([]deck.Card, len(cards))
			copy(shuffled, cards)
			rng.Shuffle(len(shuffled), func(a, b int) {
				shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
			})

			got, err := Evaluate(shuffled)
			if err != nil {
				t.Fatal(err)
			}
			if got.Compare(base) != 0 {
				t.Fatalf("hand %s: order changed evaluation from %v to %v", hand, base, got)
			}
		}
	}
}

func TestEvaluatePicksBestFiveCardSubset(t *testing.T) {
	// Seven cards containing both a straight and a flush: the flush must win.
	rank, err := Evaluate(deck.MustParseCards("AhKhQh8h2hJsTc"))
	if err != nil {
		t.Fatal(err)
	}
	if rank.Category != Flush {
		t.Fatalf("expected flush as the best subset, got %s", rank.Category)
	}

	// Two pair plus a third pair: best hand uses the two highest pairs.
	rank, err = Evaluate(deck.MustParseCards("AsAhKdKs2h2dQc"))
	if err != nil {
		t.Fatal(err)
	}
	if rank.Category != TwoPair {
		t.Fatalf("expected two pair, got %s", rank.Category)
	}
	if rank.Tiebreaks[0] != deck.Ace || rank.Tiebreaks[1] != deck.King || rank.Tiebreaks[2] != deck.Queen {
		t.Errorf("wrong two pair tiebreaks: %v", rank.Tiebreaks)
	}
}

func TestKickerComparison(t *testing.T) {
	aceKicker, err := Evaluate(deck.MustParseCards("QsQhAd7c2s"))
	if err != nil {
		t.Fatal(err)
	}
	kingKicker, err := Evaluate(deck.MustParseCards("QdQcKd7h2d"))
	if err != nil {
		t.Fatal(err)
	}

	if aceKicker.Compare(kingKicker) <= 0 {
		t.Error("queens with ace kicker should beat queens with king kicker")
	}

	same, err := Evaluate(deck.MustParseCards("QsQhAd7c2s"))
	if err != nil {
		t.Fatal(err)
	}
	if aceKicker.Compare(same) != 0 {
		t.Error("identical hands should tie")
	}
}

func TestRoyalFlushBeatsEverything(t *testing.T) {
	royal := MustEvaluate(deck.MustParseCards("AsKsQsJsTs"))
	others := []string{
		"9s8s7s6s5s", // straight flush
		"AhAdAcAs2d", // quads (shares As for comparison purposes only)
		"KhKdKcQsQh", // full house
		"Ah7h5h3h2h", // flush
		"9c8d7h6s5d", // straight
	}
	for _, hand := range others {
		other := MustEvaluate(deck.MustParseCards(hand))
		if royal.Compare(other) <= 0 {
			t.Errorf("royal flush should beat %s", hand)
		}
	}
}
