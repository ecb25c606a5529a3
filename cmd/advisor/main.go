package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/pokerlab/holdem-advisor/internal/deck"
	"github.com/pokerlab/holdem-advisor/internal/decision"
	"github.com/pokerlab/holdem-advisor/internal/equity"
	"github.com/pokerlab/holdem-advisor/internal/randutil"
	"github.com/pokerlab/holdem-advisor/internal/ranges"
	"github.com/pokerlab/holdem-advisor/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1E6E50")).
			Padding(0, 1).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)
)

type CLI struct {
	Hand     string   `arg:"" help:"Hero hole cards, e.g. AsKs"`
	Board    string   `help:"Community cards dealt so far, e.g. QdJh2c"`
	Pot      float64  `default:"0" help:"Current pot size"`
	Call     float64  `default:"0" help:"Amount the hero must call"`
	Stack    float64  `default:"200" help:"Hero's remaining stack"`
	Opponent []string `help:"Opponent as name:position:stack (e.g. villain:BTN:200), repeatable"`
	Action   []string `help:"Observed action as player:kind[:amount] (e.g. villain:raise:30), repeatable"`
	Multiway bool     `help:"Also show the equity profile against 1/2/3/5 unknown opponents"`
	Trials   int      `default:"5000" help:"Monte Carlo trials per estimate"`
	Seed     int64    `default:"0" help:"RNG seed (0 for a random seed)"`
	Config   string   `help:"Decision thresholds HCL file"`
	LogLevel string   `default:"warn" help:"Log level: debug, info, warn, error"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("advisor"),
		kong.Description("Real-time Texas Hold'em decision analysis"))

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if level, err := log.ParseLevel(cli.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if err := run(&cli, logger); err != nil {
		logger.Fatal("Analysis failed", "error", err)
	}
	ctx.Exit(0)
}

func run(cli *CLI, logger *log.Logger) error {
	cfg := decision.DefaultConfig()
	if cli.Config != "" {
		loaded, err := decision.LoadConfig(cli.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	rng := randutil.NewSource()
	if cli.Seed != 0 {
		rng = randutil.New(cli.Seed)
	}

	sess := session.New(logger, cfg, rng, cli.Trials)

	for _, spec := range cli.Opponent {
		name, position, stack, err := parseOpponent(spec)
		if err != nil {
			return err
		}
		if err := sess.AddOpponent(name, position, stack); err != nil {
			return err
		}
	}

	hero, err := deck.ParseCards(cli.Hand)
	if err != nil {
		return fmt.Errorf("parsing hand: %w", err)
	}
	if err := sess.StartHand(hero); err != nil {
		return err
	}
	if err := sess.SetHeroStack(cli.Stack); err != nil {
		return err
	}
	if err := sess.SetPot(cli.Pot, cli.Call); err != nil {
		return err
	}

	if cli.Board != "" {
		board, err := deck.ParseCards(cli.Board)
		if err != nil {
			return fmt.Errorf("parsing board: %w", err)
		}
		if err := sess.AdvanceBoard(board...); err != nil {
			return err
		}
	}

	for _, spec := range cli.Action {
		player, kind, amount, err := parseAction(spec)
		if err != nil {
			return err
		}
		if err := sess.RecordAction(player, kind, amount); err != nil {
			return err
		}
	}

	bundle, err := sess.Statistics()
	if err != nil {
		return err
	}
	render(bundle)

	if cli.Multiway {
		var board []deck.Card
		if cli.Board != "" {
			board, _ = deck.ParseCards(cli.Board)
		}
		points, err := equity.MultiwayProfile(hero, board, nil, cli.Trials, rng)
		if err != nil {
			return err
		}
		renderMultiway(points)
	}
	return nil
}

func renderMultiway(points []equity.MultiwayPoint) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\n", headingStyle.Render("Multiway Profile"))
	for _, p := range points {
		fmt.Fprintf(w, "vs %d opponent(s):\t%.2f%%\n", p.Opponents, p.Equity)
	}
	w.Flush()
}

func parseOpponent(spec string) (string, ranges.Position, float64, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return "", 0, 0, fmt.Errorf("opponent %q must be name:position:stack", spec)
	}
	position, err := ranges.ParsePosition(parts[1])
	if err != nil {
		return "", 0, 0, err
	}
	stack, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("opponent %q: bad stack: %w", spec, err)
	}
	return parts[0], position, stack, nil
}

func parseAction(spec string) (string, session.ActionKind, float64, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return "", "", 0, fmt.Errorf("action %q must be player:kind[:amount]", spec)
	}

	kind := session.ActionKind(strings.ToLower(parts[1]))
	switch kind {
	case session.ActionFold, session.ActionCheck, session.ActionCall,
		session.ActionBet, session.ActionRaise:
	default:
		return "", "", 0, fmt.Errorf("action %q: unknown kind %q", spec, parts[1])
	}

	var amount float64
	if len(parts) == 3 {
		var err error
		amount, err = strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return "", "", 0, fmt.Errorf("action %q: bad amount: %w", spec, err)
		}
	}
	return parts[0], kind, amount, nil
}

func render(b *session.Bundle) {
	fmt.Println(titleStyle.Render(" ♠ ♥ Hold'em Advisor ♦ ♣ "))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "%s\n", headingStyle.Render("Hand"))
	fmt.Fprintf(w, "Hero:\t%s (%s)\n", b.HeroHand, b.HandClass.Notation)
	if b.Board != "" {
		fmt.Fprintf(w, "Board:\t%s\n", b.Board)
	}
	fmt.Fprintf(w, "Classification:\t%s / %s\n", b.HandClass.Tier, b.HandClass.Strength)
	fmt.Fprintf(w, "Multiway:\t%s\n", b.HandClass.MultiwayPreference)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", headingStyle.Render("Pot Odds"))
	fmt.Fprintf(w, "Pot:\t%.2f\n", b.PotSize)
	fmt.Fprintf(w, "Odds:\t%s\n", b.PotOdds.Display)
	fmt.Fprintf(w, "Required equity:\t%.2f%%\n", b.PotOdds.RequiredEquity)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", headingStyle.Render("Equity"))
	fmt.Fprintf(w, "Equity:\t%.2f%%\n", b.Equity.Equity)
	fmt.Fprintf(w, "Win / Tie:\t%.2f%% / %.2f%%\n", b.Equity.WinPercentage, b.Equity.TiePercentage)
	fmt.Fprintf(w, "Trials:\t%d\n", b.Equity.Trials)
	if b.Equity.Degraded {
		fmt.Fprintf(w, "Note:\tdegraded to uniform opponent sampling\n")
	}
	fmt.Fprintln(w)

	if b.TotalOuts > 0 {
		fmt.Fprintf(w, "%s\n", headingStyle.Render("Draws"))
		if b.Draws.FlushDraw {
			fmt.Fprintf(w, "Flush draw:\t%d outs (%s)\n", b.Draws.FlushOuts, b.Draws.FlushSuit)
		}
		if b.Draws.OpenEnded {
			fmt.Fprintf(w, "Open-ended straight:\t%d outs\n", b.Draws.StraightOuts)
		}
		if b.Draws.Gutshot {
			fmt.Fprintf(w, "Gutshot:\t%d outs\n", b.Draws.StraightOuts)
		}
		if len(b.Draws.Overcards) > 0 {
			fmt.Fprintf(w, "Overcards:\t%s (%d outs)\n", deck.Notation(b.Draws.Overcards), b.Draws.OvercardOuts)
		}
		fmt.Fprintf(w, "Total outs:\t%d\n", b.TotalOuts)
		if b.QuickEquity > 0 {
			fmt.Fprintf(w, "Rule of 4 and 2:\t~%.0f%%\n", b.QuickEquity)
		}
		fmt.Fprintln(w)
	}

	for _, opp := range b.Opponents {
		fmt.Fprintf(w, "%s\n", headingStyle.Render("Opponent: "+opp.Name))
		if opp.Folded {
			fmt.Fprintf(w, "Status:\tfolded\n")
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "Position:\t%s\n", opp.Position)
		fmt.Fprintf(w, "Range remaining:\t%.1f%%\n", opp.PercentRemaining)
		if opp.Sizing.Label != "" {
			fmt.Fprintf(w, "Last bet:\t%s (%s)\n", opp.Sizing.Label, opp.Sizing.StrengthIndicator)
		}
		if len(opp.Sample.Pairs) > 0 {
			fmt.Fprintf(w, "Pairs:\t%s\n", strings.Join(opp.Sample.Pairs, " "))
		}
		if len(opp.Sample.Suited) > 0 {
			fmt.Fprintf(w, "Suited:\t%s\n", strings.Join(opp.Sample.Suited, " "))
		}
		if len(opp.Sample.Offsuit) > 0 {
			fmt.Fprintf(w, "Offsuit:\t%s\n", strings.Join(opp.Sample.Offsuit, " "))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%s\n", headingStyle.Render("Decision"))
	fmt.Fprintf(w, "Action:\t%s\n", actionStyle.Render(b.Decision.Action))
	fmt.Fprintf(w, "Expected value:\t%+.2f\n", b.Decision.ExpectedValue)
	fmt.Fprintf(w, "Reasoning:\t%s\n", b.Decision.Reasoning)
	w.Flush()
}
