package evaluator

import (
	"github.com/pokerlab/holdem-advisor/internal/deck"
)

// HandClass is the display-facing classification of the hero's holding:
// canonical notation, a tier label, a qualitative strength description and a
// hint about how the hand plays against multiple opponents.
type HandClass struct {
	Notation           string
	Tier               string
	Strength           string
	MultiwayPreference string
}

// Texture summarises the board for classification and range narrowing.
type Texture struct {
	Monotone  bool
	TwoTone   bool
	Paired    bool
	Connected bool
	HighCard  deck.Rank
}

// BoardTexture classifies 0-5 community cards
func BoardTexture(board []deck.Card) Texture {
	var t Texture
	if len(board) == 0 {
		return t
	}

	suits := map[deck.Suit]int{}
	ranks := map[deck.Rank]int{}
	var lo, hi deck.Rank
	for i, c := range board {
		suits[c.Suit]++
		ranks[c.Rank]++
		if i == 0 || c.Rank < lo {
			lo = c.Rank
		}
		if c.Rank > hi {
			hi = c.Rank
		}
	}

	t.Monotone = len(suits) == 1 && len(board) >= 3
	t.TwoTone = len(suits) == 2
	t.Paired = len(ranks) < len(board)
	t.Connected = len(board) >= 3 && hi-lo <= 4
	t.HighCard = hi
	return t
}

// ClassifyHole classifies a two-card starting hand by tier, qualitative
// strength and multiway preference.
func ClassifyHole(hole []deck.Card) HandClass {
	if len(hole) != 2 {
		return HandClass{Notation: "??", Tier: "Unknown", Strength: "Unknown", MultiwayPreference: "Neutral"}
	}

	c1, c2 := hole[0], hole[1]
	isPair := c1.Rank == c2.Rank
	suited := c1.Suit == c2.Suit
	high, low := c1.Rank, c2.Rank
	if low > high {
		high, low = low, high
	}
	gap := high - low

	cls := HandClass{Notation: deck.HoleNotation(hole)}

	switch {
	case isPair && high >= deck.Queen:
		cls.Tier, cls.Strength = "Premium", "Very Strong"
	case high == deck.Ace && low == deck.King:
		cls.Tier, cls.Strength = "Premium", "Very Strong"
	case isPair && high >= deck.Nine:
		cls.Tier, cls.Strength = "Strong", "Strong"
	case suited && high >= deck.King && low >= deck.Jack:
		cls.Tier, cls.Strength = "Strong", "Strong"
	case isPair:
		cls.Tier, cls.Strength = "Speculative", "Medium"
	case suited && gap <= 2 && high >= deck.Eight:
		cls.Tier, cls.Strength = "Speculative", "Medium (drawing hand)"
	case high == deck.Ace:
		cls.Tier, cls.Strength = "Playable", "Medium"
	default:
		cls.Tier, cls.Strength = "Weak", "Weak"
	}

	switch {
	case isPair && high <= deck.Ten:
		cls.MultiwayPreference = "Prefers multiway (set mining)"
	case suited && gap <= 3:
		cls.MultiwayPreference = "Prefers multiway (drawing potential)"
	case high >= deck.King && low >= deck.Jack:
		cls.MultiwayPreference = "Prefers heads-up (high card value)"
	default:
		cls.MultiwayPreference = "Neutral"
	}

	return cls
}

// Classify maps the hero's current holding to its display classification.
// Preflop this is the starting-hand classification; postflop the tier and
// strength come from the evaluated category against the board texture, while
// the notation stays the starting-hand notation.
func Classify(hole, board []deck.Card) HandClass {
	if len(board) == 0 {
		return ClassifyHole(hole)
	}

	cls := HandClass{Notation: deck.HoleNotation(hole)}
	all := make([]deck.Card, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)

	rank, err := Evaluate(all)
	if err != nil {
		return ClassifyHole(hole)
	}
	texture := BoardTexture(board)

	cls.Strength = rank.String()
	switch {
	case rank.Category >= FullHouse:
		cls.Tier = "Monster"
	case rank.Category >= Straight || rank.Category == ThreeOfAKind:
		cls.Tier = "Strong"
	case rank.Category == TwoPair:
		cls.Tier = "Medium"
	case rank.Category == OnePair:
		cls.Tier, cls.Strength = classifyPair(hole, texture, rank)
	default:
		cls.Tier = "Weak"
	}

	switch {
	case rank.Category <= OnePair:
		cls.MultiwayPreference = "Prefers heads-up (kicker strength matters)"
	case rank.Category >= Straight:
		cls.MultiwayPreference = "Comfortable multiway (made hand)"
	default:
		cls.MultiwayPreference = "Neutral"
	}

	return cls
}

// classifyPair refines a one-pair holding: overpairs and top pair are worth
// more than a board pair or an underpair.
func classifyPair(hole []deck.Card, texture Texture, rank HandRank) (tier, strength string) {
	if len(rank.Tiebreaks) == 0 {
		return "Weak", "One Pair"
	}
	pairRank := rank.Tiebreaks[0]

	pocket := len(hole) == 2 && hole[0].Rank == hole[1].Rank
	switch {
	case pocket && pairRank > texture.HighCard:
		return "Medium", "Overpair"
	case pairRank == texture.HighCard && holeHasRank(hole, pairRank):
		return "Medium", "Top Pair"
	case holeHasRank(hole, pairRank):
		return "Weak", "Middle Pair"
	default:
		return "Weak", "Board Pair"
	}
}

func holeHasRank(hole []deck.Card, rank deck.Rank) bool {
	for _, c := range hole {
		if c.Rank == rank {
			return true
		}
	}
	return false
}
