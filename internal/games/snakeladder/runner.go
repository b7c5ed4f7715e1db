package snakeladder

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tabletop/internal/config"
	"github.com/vovakirdan/tui-tabletop/internal/core"
	"github.com/vovakirdan/tui-tabletop/internal/dice"
	"github.com/vovakirdan/tui-tabletop/internal/platform/cli"
	"github.com/vovakirdan/tui-tabletop/internal/registry"
)

func init() {
	registry.Register("snakes", func() registry.Game {
		return &Runner{id: "snakes", title: "Snake & Ladder (N×N)"}
	})
	registry.Register("snakes-classic", func() registry.Game {
		return &Runner{id: "snakes-classic", title: "Snake & Ladder (classic 10×10)", classic: true}
	})
}

// Runner drives an interactive Snake & Ladder session and implements
// registry.Game for both board variants.
type Runner struct {
	id      string
	title   string
	classic bool
	logger  *log.Logger
}

// ID returns the game identifier.
func (r *Runner) ID() string { return r.id }

// Title returns the display name.
func (r *Runner) Title() string { return r.title }

// Run collects setup input, generates or loads the board, plays the turn
// loop to completion and returns the result.
func (r *Runner) Run(opts core.RunOptions) (core.Result, error) {
	r.logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tabletop"})

	cfg, err := config.LoadSnakes(opts.ConfigPath)
	if err != nil {
		return core.Result{}, fmt.Errorf("snakeladder: %w", err)
	}
	applyOverrides(&cfg, opts)

	rules, err := rulesFromConfig(cfg)
	if err != nil {
		return core.Result{}, err
	}

	con := cli.NewConsole(opts.In, opts.Out)
	con.Println()
	con.Println(cli.Banner("Snake & Ladder — Interactive Setup"))

	dim, err := r.promptSize(con, cfg, opts)
	if err != nil {
		return core.Result{}, fmt.Errorf("snakeladder: setup: %w", err)
	}
	rules.Target = dim * dim

	names, err := promptNames(con, opts)
	if err != nil {
		return core.Result{}, fmt.Errorf("snakeladder: setup: %w", err)
	}

	rng := dice.NewSource(opts.Seed)
	die := dice.New(cfg.Dice.Sides, rng)

	links := r.buildBoard(rng, cfg, dim, rules.Target)

	sess, err := NewSession(names, rules, links, die)
	if err != nil {
		return core.Result{}, err
	}

	r.printSetup(con, sess, dim, die.Sides(), opts.Width)
	return r.loop(con, sess, opts)
}

// promptSize resolves the board dimension, letting the prompt override the
// flag/config default. The classic variant is pinned to 10.
func (r *Runner) promptSize(con *cli.Console, cfg config.SnakesConfig, opts core.RunOptions) (int, error) {
	if r.classic {
		return ClassicDim, nil
	}
	def := cfg.Board.Size
	if opts.BoardSize > 0 {
		def = opts.BoardSize
	}
	if def < 2 {
		def = 2
	}
	if opts.Assume {
		return def, nil
	}
	return con.PromptInt("Enter board size N (N×N board, N >= 2)", def, 2)
}

// promptNames resolves the player list, letting the prompt override flags.
func promptNames(con *cli.Console, opts core.RunOptions) ([]string, error) {
	def := "You,Computer 1"
	if len(opts.Players) >= 2 {
		def = strings.Join(opts.Players, ",")
	}
	if opts.Assume {
		return cli.SplitNames(def), nil
	}
	return con.PromptPlayers(def)
}

// buildBoard returns the classic layout or generates a fresh one, logging a
// warning when the generator could not satisfy the requested counts.
func (r *Runner) buildBoard(rng dice.Source, cfg config.SnakesConfig, dim, target int) LinkTable {
	if r.classic {
		return ClassicBoard()
	}

	snakes := cfg.Board.Snakes
	if snakes <= 0 {
		snakes = DefaultLinkCount(dim)
	}
	ladders := cfg.Board.Ladders
	if ladders <= 0 {
		ladders = DefaultLinkCount(dim)
	}

	avoid := map[int]bool{1: true, target: true}
	for i := 1; i <= cfg.Board.AvoidMargin; i++ {
		avoid[1+i] = true
		avoid[target-i] = true
	}

	spec := GenSpec{
		Target:      target,
		Dim:         dim,
		SnakeCount:  snakes,
		LadderCount: ladders,
		Avoid:       avoid,
	}
	res := Generate(rng, spec)
	if res.Outcome == OutcomePartial {
		missSnakes, missLadders := res.Shortfall(spec)
		r.logger.Warn("board generation fell short of requested links",
			"snakes_placed", res.PlacedSnakes,
			"snakes_missing", missSnakes,
			"ladders_placed", res.PlacedLadders,
			"ladders_missing", missLadders,
		)
	}
	return res.Links
}

// printSetup shows the session banner, the board and the link listing.
// The grid is skipped when the terminal is too narrow for a full row.
func (r *Runner) printSetup(con *cli.Console, sess *Session, dim, sides, width int) {
	rules := sess.Rules()
	cascade := "off"
	if rules.Cascade {
		cascade = "on"
	}

	con.Println()
	con.Println(cli.Banner(r.title))
	con.Printf("Board size: %d×%d  |  Target: %d  |  Dice: d%d\n", dim, dim, rules.Target, sides)
	con.Printf("Overshoot: %s  |  Cascade: %s\n", rules.Overshoot, cascade)

	names := make([]string, 0, len(sess.Players()))
	for _, p := range sess.Players() {
		names = append(names, p.Name)
	}
	con.Printf("Players: %s\n\n", strings.Join(names, ", "))

	cellWidth := len(fmt.Sprint(rules.Target)) + 2
	if width == 0 || dim*cellWidth <= width {
		con.Printf("%s", renderBoard(dim, sess.Links(), sess.Players()))
		con.Println()
	}
	con.Printf("%s", renderLinks(sess.Links()))
	con.Println()
	con.Println("Rules: exact roll required to finish (or bounce if enabled). Good luck!")
}

// loop plays turns until someone reaches the target.
func (r *Runner) loop(con *cli.Console, sess *Session, opts core.RunOptions) (core.Result, error) {
	result := core.Result{GameID: r.id}
	for _, p := range sess.Players() {
		result.Players = append(result.Players, p.Name)
	}

	for sess.Winner() == nil {
		current := sess.Current()
		if !current.IsBot() && !opts.Assume {
			if err := con.WaitEnter(fmt.Sprintf("\n%s, press Enter to roll the dice… ", current.Name)); err != nil {
				return result, fmt.Errorf("snakeladder: input closed mid-game: %w", err)
			}
		}

		report, err := sess.TakeTurn(sess.Roll())
		if err != nil {
			return result, err
		}

		con.Println(cli.RollLine(report.Player, report.Roll))
		for _, ev := range report.Events {
			if line, ok := narrateEvent(ev, sess.Rules().Target); ok {
				con.Println(line)
			}
		}
		con.Printf("  %s moves to %d.\n", report.Player, report.NewPos)

		if report.Won {
			con.Println()
			con.Println(cli.WinLine(report.Player))
			result.Winner = report.Player
		}
	}

	result.Turns = sess.Turns()
	return result, nil
}

// applyOverrides copies explicit flag values over the loaded config.
func applyOverrides(cfg *config.SnakesConfig, opts core.RunOptions) {
	if opts.DiceSides > 0 {
		cfg.Dice.Sides = opts.DiceSides
	}
	if opts.Overshoot != "" {
		cfg.Rules.Overshoot = opts.Overshoot
	}
	if opts.CascadeSet {
		cfg.Rules.Cascade = opts.Cascade
	}
	if opts.SnakeCount > 0 {
		cfg.Board.Snakes = opts.SnakeCount
	}
	if opts.LadderCount > 0 {
		cfg.Board.Ladders = opts.LadderCount
	}
}

// rulesFromConfig parses policy strings into resolver rules. Target is
// filled in after the size prompt.
func rulesFromConfig(cfg config.SnakesConfig) (Rules, error) {
	mode, err := ParseOvershoot(cfg.Rules.Overshoot)
	if err != nil {
		return Rules{}, err
	}
	return Rules{Overshoot: mode, Cascade: cfg.Rules.Cascade}, nil
}
