package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pokerlab/holdem-advisor/internal/deck"
)

func TestClassifyHole(t *testing.T) {
	tests := []struct {
		cards    string
		notation string
		tier     string
	}{
		{"AsAh", "AA", "Premium"},
		{"QdQc", "QQ", "Premium"},
		{"AhKd", "AKo", "Premium"},
		{"JsJd", "JJ", "Strong"},
		{"KhJh", "KJs", "Strong"},
		{"5s5d", "55", "Speculative"},
		{"9h8h", "98s", "Speculative"},
		{"Ah4d", "A4o", "Playable"},
		{"7c2d", "72o", "Weak"},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			cls := ClassifyHole(deck.MustParseCards(tt.cards))
			assert.Equal(t, tt.notation, cls.Notation)
			assert.Equal(t, tt.tier, cls.Tier)
		})
	}
}

func TestClassifyHoleMultiwayPreference(t *testing.T) {
	smallPair := ClassifyHole(deck.MustParseCards("6s6d"))
	assert.Contains(t, smallPair.MultiwayPreference, "multiway")

	broadway := ClassifyHole(deck.MustParseCards("KhJd"))
	assert.Contains(t, broadway.MultiwayPreference, "heads-up")

	suitedConnector := ClassifyHole(deck.MustParseCards("8h7h"))
	assert.Contains(t, suitedConnector.MultiwayPreference, "multiway")
}

func TestBoardTexture(t *testing.T) {
	mono := BoardTexture(deck.MustParseCards("AhKh2h"))
	assert.True(t, mono.Monotone)
	assert.Equal(t, deck.Ace, mono.HighCard)

	paired := BoardTexture(deck.MustParseCards("9s9dQc"))
	assert.True(t, paired.Paired)
	assert.False(t, paired.Monotone)

	connected := BoardTexture(deck.MustParseCards("7h8s9d"))
	assert.True(t, connected.Connected)

	assert.Equal(t, Texture{}, BoardTexture(nil))
}

func TestClassifyPostflop(t *testing.T) {
	// Overpair: pocket aces on a king-high board.
	cls := Classify(deck.MustParseCards("AsAh"), deck.MustParseCards("Kd7c2s"))
	assert.Equal(t, "Overpair", cls.Strength)
	assert.Equal(t, "Medium", cls.Tier)

	// Top pair with ace kicker.
	cls = Classify(deck.MustParseCards("AsKh"), deck.MustParseCards("Kd7c2s"))
	assert.Equal(t, "Top Pair", cls.Strength)

	// Flopped set is a strong made hand.
	cls = Classify(deck.MustParseCards("7s7h"), deck.MustParseCards("7d9cQs"))
	assert.Equal(t, "Strong", cls.Tier)

	// Full house tiers as a monster.
	cls = Classify(deck.MustParseCards("7s7h"), deck.MustParseCards("7dQcQs"))
	assert.Equal(t, "Monster", cls.Tier)

	// Unimproved hole cards are weak and want fewer opponents.
	cls = Classify(deck.MustParseCards("AsKh"), deck.MustParseCards("7d9c2s"))
	assert.Equal(t, "Weak", cls.Tier)
	assert.Contains(t, cls.MultiwayPreference, "heads-up")

	// Preflop falls through to the starting-hand classification.
	cls = Classify(deck.MustParseCards("AsAh"), nil)
	assert.Equal(t, "Premium", cls.Tier)
}
