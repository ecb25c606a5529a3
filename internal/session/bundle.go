package session

import (
	"github.com/pokerlab/holdem-advisor/internal/decision"
	"github.com/pokerlab/holdem-advisor/internal/draws"
	"github.com/pokerlab/holdem-advisor/internal/evaluator"
	"github.com/pokerlab/holdem-advisor/internal/ranges"
)

// EquityView is the equity slice of the bundle
type EquityView struct {
	Equity        float64
	WinPercentage float64
	TiePercentage float64
	Trials        int
	Degraded      bool
}

// DecisionView is the recommendation slice of the bundle
type DecisionView struct {
	Action        string
	ExpectedValue float64
	Reasoning     string
}

// OpponentRangeView summarises one opponent's remaining range. Sizing is the
// profile of their most recent bet or raise; its zero value means no bet yet.
type OpponentRangeView struct {
	Name             string
	Position         string
	Folded           bool
	PercentRemaining float64
	Sample           ranges.GroupView
	Sizing           ranges.SizingProfile
}

// Bundle is the complete output of one statistics computation. Every field
// is derived from the session snapshot; nothing in it is independently
// mutable and callers are expected to treat it as read-only.
type Bundle struct {
	HeroHand string
	Board    string
	PotSize  float64

	PotOdds decision.PotOdds
	Equity  EquityView

	Draws     draws.Analysis
	TotalOuts int
	// QuickEquity is the rule-of-4-and-2 approximation from the out count.
	// It is explanatory only; Decision uses the sampled equity above.
	QuickEquity float64

	Decision  DecisionView
	HandClass evaluator.HandClass
	Opponents []OpponentRangeView
}
