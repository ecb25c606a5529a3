// Package session owns the per-hand state the advisor reasons about: hero
// cards, board, pot figures, opponents with their belief ranges, and the
// action history. One session is one table seat; sessions share nothing, so
// any number of them can compute statistics concurrently. Within a session
// every mutation is serialized behind a mutex, and Statistics works from a
// snapshot so the sampling loop never races a mutation.
package session

import (
	"fmt"
	rand "math/rand/v2"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/pokerlab/holdem-advisor/internal/deck"
	"github.com/pokerlab/holdem-advisor/internal/decision"
	"github.com/pokerlab/holdem-advisor/internal/draws"
	"github.com/pokerlab/holdem-advisor/internal/equity"
	"github.com/pokerlab/holdem-advisor/internal/evaluator"
	"github.com/pokerlab/holdem-advisor/internal/randutil"
	"github.com/pokerlab/holdem-advisor/internal/ranges"
)

// ActionKind is an observed table action
type ActionKind string

const (
	ActionFold  ActionKind = "fold"
	ActionCheck ActionKind = "check"
	ActionCall  ActionKind = "call"
	ActionBet   ActionKind = "bet"
	ActionRaise ActionKind = "raise"
)

// ActionRecord is one entry in the hand's ordered action history
type ActionRecord struct {
	Player string
	Kind   ActionKind
	Amount float64
}

// Opponent is a tracked seat at the table. LastSizing describes the
// opponent's most recent bet or raise this hand; a zero Label means they have
// not bet.
type Opponent struct {
	Name       string
	Position   ranges.Position
	Stack      float64
	CurrentBet float64
	Belief     *ranges.Belief
	LastSizing ranges.SizingProfile
}

// Session is the mutable per-hand context
type Session struct {
	mu     sync.Mutex
	logger *log.Logger
	cfg    *decision.Config
	rng    *rand.Rand
	trials int

	hero       []deck.Card
	board      []deck.Card
	potSize    float64
	callAmount float64
	heroStack  float64
	opponents  []*Opponent
	history    []ActionRecord
}

// New creates an empty session. Statistics computations draw their randomness
// from rng, so seeding it makes the whole session reproducible.
func New(logger *log.Logger, cfg *decision.Config, rng *rand.Rand, trials int) *Session {
	if cfg == nil {
		cfg = decision.DefaultConfig()
	}
	if rng == nil {
		rng = randutil.NewSource()
	}
	if trials <= 0 {
		trials = equity.DefaultTrials
	}
	return &Session{
		logger: logger.WithPrefix("session"),
		cfg:    cfg,
		rng:    rng,
		trials: trials,
	}
}

// AddOpponent seats an opponent with a fresh position-indexed belief
func (s *Session) AddOpponent(name string, position ranges.Position, stack float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.opponents {
		if o.Name == name {
			return fmt.Errorf("session: opponent %q already seated", name)
		}
	}
	s.opponents = append(s.opponents, &Opponent{
		Name:     name,
		Position: position,
		Stack:    stack,
		Belief:   ranges.NewBelief(position),
	})
	s.logger.Debug("Opponent seated", "name", name, "position", position.String())
	return nil
}

// StartHand begins a new hand: hero cards are set, the board and history are
// cleared, pot figures zeroed and every opponent's range reset to its
// position-indexed start.
func (s *Session) StartHand(hero []deck.Card) error {
	if len(hero) != 2 {
		return fmt.Errorf("session: hero needs exactly 2 cards, got %d", len(hero))
	}
	if hero[0] == hero[1] {
		return fmt.Errorf("session: duplicate hero card %v", hero[0])
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.hero = append(s.hero[:0], hero...)
	s.board = s.board[:0]
	s.history = s.history[:0]
	s.potSize = 0
	s.callAmount = 0
	for _, o := range s.opponents {
		o.CurrentBet = 0
		o.Belief.Reset()
	}
	s.logger.Info("Hand started", "hero", deck.HoleNotation(hero))
	return nil
}

// SetPot sets the current pot size and the amount the hero must call
func (s *Session) SetPot(potSize, callAmount float64) error {
	if potSize < 0 || callAmount < 0 {
		return fmt.Errorf("session: pot %.2f and call %.2f must be non-negative", potSize, callAmount)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.potSize = potSize
	s.callAmount = callAmount
	return nil
}

// SetHeroStack sets the hero's remaining stack
func (s *Session) SetHeroStack(stack float64) error {
	if stack < 0 {
		return fmt.Errorf("session: stack must be non-negative, got %.2f", stack)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heroStack = stack
	return nil
}

// AdvanceBoard appends newly dealt community cards. The board only ever
// grows within a hand, through the 3, 4 and 5 card streets.
func (s *Session) AdvanceBoard(cards ...deck.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := len(s.board) + len(cards)
	switch {
	case next > 5:
		return fmt.Errorf("session: board cannot exceed 5 cards, would have %d", next)
	case next != 3 && next != 4 && next != 5:
		return fmt.Errorf("session: board must advance to 3, 4 or 5 cards, would have %d", next)
	}

	seen := deck.NewCardSet(s.hero)
	for _, c := range s.board {
		seen.Add(c)
	}
	for _, c := range cards {
		if seen.Contains(c) {
			return fmt.Errorf("session: card %v already visible", c)
		}
		seen.Add(c)
	}

	s.board = append(s.board, cards...)
	s.logger.Info("Board advanced", "board", deck.Notation(s.board))
	return nil
}

// RecordAction appends an action to the history, updates pot bookkeeping and
// narrows the acting opponent's range. Actions by players the session does
// not track still enter the history but touch no belief.
func (s *Session) RecordAction(player string, kind ActionKind, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("session: action amount must be non-negative, got %.2f", amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	opp := s.findOpponent(player)
	switch kind {
	case ActionFold:
		if opp != nil {
			opp.Belief.ObserveFold()
		}
	case ActionCheck:
		if opp != nil {
			opp.Belief.ObserveCheck()
		}
	case ActionCall:
		if opp != nil {
			opp.Belief.ObserveCall(s.potSize, amount)
			opp.CurrentBet += amount
			opp.Stack -= amount
		}
		s.potSize += amount
	case ActionBet, ActionRaise:
		if opp != nil {
			opp.LastSizing = ranges.AnalyzeBetSizing(amount, s.potSize)
			opp.Belief.ObserveRaise(amount, s.potSize)
			opp.CurrentBet += amount
			opp.Stack -= amount
		}
		s.potSize += amount
		s.callAmount = amount
	default:
		return fmt.Errorf("session: unknown action kind %q", kind)
	}

	s.history = append(s.history, ActionRecord{Player: player, Kind: kind, Amount: amount})
	s.logger.Debug("Action recorded", "player", player, "kind", string(kind), "amount", amount)
	return nil
}

// History returns a copy of the hand's action history
func (s *Session) History() []ActionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ActionRecord, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) findOpponent(name string) *Opponent {
	for _, o := range s.opponents {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// snapshot captures everything Statistics needs under the lock, so the
// computation can run lock-free afterwards.
type snapshot struct {
	hero       []deck.Card
	board      []deck.Card
	potSize    float64
	callAmount float64
	heroStack  float64
	opponents  []*Opponent
	beliefs    []*ranges.Belief
	seed       int64
	trials     int
	cfg        *decision.Config
}

func (s *Session) snapshot() (snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.hero) != 2 {
		return snapshot{}, fmt.Errorf("session: no hand in progress")
	}

	snap := snapshot{
		hero:       append([]deck.Card(nil), s.hero...),
		board:      append([]deck.Card(nil), s.board...),
		potSize:    s.potSize,
		callAmount: s.callAmount,
		heroStack:  s.heroStack,
		seed:       s.rng.Int64(),
		trials:     s.trials,
		cfg:        s.cfg,
	}
	for _, o := range s.opponents {
		copied := *o
		copied.Belief = o.Belief.Clone()
		snap.opponents = append(snap.opponents, &copied)
		snap.beliefs = append(snap.beliefs, copied.Belief)
	}
	return snap, nil
}

// Statistics snapshots the session and runs the full analysis pipeline:
// classification, draw analysis, equity sampling and the decision rule table.
// The returned bundle is immutable output; the session itself is untouched.
func (s *Session) Statistics() (*Bundle, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	class := evaluator.Classify(snap.hero, snap.board)
	drawAnalysis := draws.Analyze(snap.hero, snap.board)

	eq, err := equity.Estimate(snap.hero, snap.board, snap.beliefs, snap.trials, randutil.New(snap.seed))
	if err != nil {
		return nil, fmt.Errorf("session: equity estimation failed: %w", err)
	}
	if eq.Degraded {
		s.logger.Warn("Equity estimate degraded to uniform sampling",
			"hero", deck.HoleNotation(snap.hero), "board", deck.Notation(snap.board))
	}

	rec := decision.Analyze(snap.cfg, decision.Input{
		PotSize:     snap.potSize,
		CallAmount:  snap.callAmount,
		HeroStack:   snap.heroStack,
		Equity:      eq.Equity,
		EquityKnown: true,
		TotalOuts:   drawAnalysis.TotalOuts,
		Tier:        class.Tier,
	})

	bundle := &Bundle{
		HeroHand: deck.Notation(snap.hero),
		Board:    deck.Notation(snap.board),
		PotSize:  snap.potSize,
		PotOdds:  rec.PotOdds,
		Equity: EquityView{
			Equity:        eq.Equity,
			WinPercentage: eq.WinPercentage,
			TiePercentage: eq.TiePercentage,
			Trials:        eq.Trials,
			Degraded:      eq.Degraded,
		},
		Draws:       drawAnalysis,
		TotalOuts:   drawAnalysis.TotalOuts,
		QuickEquity: draws.RuleOfFourAndTwo(drawAnalysis.TotalOuts, snap.board),
		Decision: DecisionView{
			Action:        string(rec.Action),
			ExpectedValue: rec.ExpectedValue,
			Reasoning:     rec.Reasoning,
		},
		HandClass: class,
	}

	for _, o := range snap.opponents {
		bundle.Opponents = append(bundle.Opponents, OpponentRangeView{
			Name:             o.Name,
			Position:         o.Position.String(),
			Folded:           o.Belief.Folded(),
			PercentRemaining: o.Belief.PercentRemaining(),
			Sample:           o.Belief.GroupedSample(6),
			Sizing:           o.LastSizing,
		})
	}
	return bundle, nil
}
