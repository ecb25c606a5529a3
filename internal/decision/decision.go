// Package decision turns pot economics and an equity estimate into a single
// recommended action with an expected value and a templated explanation. The
// whole package is pure: identical inputs always produce identical output.
package decision

import (
	"fmt"
	"math"
)

// Action is the recommended move
type Action string

const (
	Fold  Action = "FOLD"
	Check Action = "CHECK"
	Call  Action = "CALL"
	Raise Action = "RAISE"
)

// PotOdds describes the price the hero is being offered.
// RequiredEquity is the break-even equity for a call; Percentage is the same
// figure, kept as a separate field because both appear in the output contract.
type PotOdds struct {
	Display        string
	Percentage     float64
	RequiredEquity float64
}

// Input is everything the rule table looks at. EquityKnown distinguishes a
// genuine zero-equity estimate from a missing one.
type Input struct {
	PotSize     float64
	CallAmount  float64
	HeroStack   float64
	Equity      float64
	EquityKnown bool
	TotalOuts   int
	Tier        string
}

// Recommendation is the decision engine's output
type Recommendation struct {
	Action        Action
	ExpectedValue float64
	Reasoning     string
	PotOdds       PotOdds
}

// ComputePotOdds derives the price of a call. With nothing to call the hero
// sees a free option and required equity is zero.
func ComputePotOdds(potSize, callAmount float64) PotOdds {
	if callAmount <= 0 {
		return PotOdds{Display: "Free check"}
	}

	required := callAmount / (potSize + callAmount) * 100
	return PotOdds{
		Display:        ratioDisplay(potSize, callAmount),
		Percentage:     required,
		RequiredEquity: required,
	}
}

// ratioDisplay reduces pot:call to lowest integer terms, e.g. 100:20 -> "5:1".
// Amounts are scaled to cents first so fractional chip counts still reduce.
func ratioDisplay(potSize, callAmount float64) string {
	pot := int64(math.Round(potSize * 100))
	call := int64(math.Round(callAmount * 100))
	if pot <= 0 || call <= 0 {
		return fmt.Sprintf("%.1f:1", potSize/callAmount)
	}
	g := gcd(pot, call)
	return fmt.Sprintf("%d:%d", pot/g, call/g)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// strongTier reports whether the hand classification justifies betting for
// value rather than just calling.
func strongTier(tier string) bool {
	switch tier {
	case "Monster", "Strong", "Premium":
		return true
	}
	return false
}

// Analyze applies the rule table, in priority order, to one decision point.
// It never fails: missing input produces a conservative fold with reasoning
// that names what was missing.
func Analyze(cfg *Config, in Input) Recommendation {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if !in.EquityKnown || in.PotSize < 0 || in.CallAmount < 0 {
		return Recommendation{
			Action:    Fold,
			Reasoning: "Insufficient information to evaluate the spot; folding is the conservative default.",
			PotOdds:   ComputePotOdds(math.Max(in.PotSize, 0), math.Max(in.CallAmount, 0)),
		}
	}

	odds := ComputePotOdds(in.PotSize, in.CallAmount)
	eq := in.Equity / 100
	ev := eq*(in.PotSize+in.CallAmount) - (1-eq)*in.CallAmount

	if in.CallAmount <= 0 {
		if strongTier(in.Tier) {
			return Recommendation{
				Action:        Raise,
				ExpectedValue: ev,
				Reasoning: fmt.Sprintf(
					"No bet to call and a %s hand with %.1f%% equity; bet for value rather than give a free card.",
					strengthWord(in.Tier), in.Equity),
				PotOdds: odds,
			}
		}
		return Recommendation{
			Action:        Check,
			ExpectedValue: ev,
			Reasoning: fmt.Sprintf(
				"No bet to call; checking sees the next card for free with %.1f%% equity.", in.Equity),
			PotOdds: odds,
		}
	}

	surplus := in.Equity - odds.RequiredEquity

	if surplus > cfg.RaiseEquityMargin && strongTier(in.Tier) {
		return Recommendation{
			Action:        Raise,
			ExpectedValue: ev,
			Reasoning: fmt.Sprintf(
				"Equity %.1f%% clears the required %.1f%% by %.1f points with a %s hand; raise for value.",
				in.Equity, odds.RequiredEquity, surplus, strengthWord(in.Tier)),
			PotOdds: odds,
		}
	}

	if surplus > cfg.CallEquityMargin {
		return Recommendation{
			Action:        Call,
			ExpectedValue: ev,
			Reasoning: fmt.Sprintf(
				"Equity %.1f%% beats the required %.1f%% (pot odds %s); calling shows a profit.",
				in.Equity, odds.RequiredEquity, odds.Display),
			PotOdds: odds,
		}
	}

	if impliedOddsCall(cfg, in, surplus) {
		return Recommendation{
			Action:        Call,
			ExpectedValue: ev,
			Reasoning: fmt.Sprintf(
				"Equity %.1f%% is just short of the required %.1f%%, but %d outs and remaining stacks give implied odds to continue.",
				in.Equity, odds.RequiredEquity, in.TotalOuts),
			PotOdds: odds,
		}
	}

	return Recommendation{
		Action:        Fold,
		ExpectedValue: ev,
		Reasoning: fmt.Sprintf(
			"Equity %.1f%% is below the required %.1f%% (pot odds %s) with no draw strong enough to chase.",
			in.Equity, odds.RequiredEquity, odds.Display),
		PotOdds: odds,
	}
}

// impliedOddsCall allows a small equity deficit when a big draw can win extra
// chips on later streets.
func impliedOddsCall(cfg *Config, in Input, surplus float64) bool {
	if surplus < -cfg.ImpliedOddsMaxDeficit {
		return false
	}
	if in.TotalOuts < cfg.ImpliedOddsMinOuts {
		return false
	}
	return in.HeroStack >= in.CallAmount*cfg.ImpliedOddsStackRatio
}

func strengthWord(tier string) string {
	switch tier {
	case "Monster":
		return "monster"
	case "Premium":
		return "premium"
	default:
		return "strong"
	}
}
