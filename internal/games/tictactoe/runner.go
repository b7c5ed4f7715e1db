package tictactoe

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tabletop/internal/config"
	"github.com/vovakirdan/tui-tabletop/internal/core"
	"github.com/vovakirdan/tui-tabletop/internal/platform/cli"
	"github.com/vovakirdan/tui-tabletop/internal/registry"
)

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return &Runner{}
	})
}

// Runner drives an interactive Tic-Tac-Toe session and implements
// registry.Game.
type Runner struct{}

// ID returns the game identifier.
func (r *Runner) ID() string { return "tictactoe" }

// Title returns the display name.
func (r *Runner) Title() string { return "Tic-Tac-Toe (N×N)" }

// Run collects setup input, plays the move loop to completion and returns
// the result.
func (r *Runner) Run(opts core.RunOptions) (core.Result, error) {
	cfg, err := config.LoadTicTacToe(opts.ConfigPath)
	if err != nil {
		return core.Result{}, fmt.Errorf("tictactoe: %w", err)
	}

	con := cli.NewConsole(opts.In, opts.Out)
	con.Println()
	con.Println(cli.Banner("Tic-Tac-Toe — Interactive Setup"))

	size, players, err := setup(con, cfg, opts)
	if err != nil {
		return core.Result{}, fmt.Errorf("tictactoe: setup: %w", err)
	}

	sess, err := NewSession(size, players)
	if err != nil {
		return core.Result{}, err
	}

	return r.loop(con, sess)
}

// setup resolves board size and the player list, prompting unless defaults
// were accepted up front.
func setup(con *cli.Console, cfg config.TicTacToeConfig, opts core.RunOptions) (int, []Player, error) {
	size := cfg.Board.Size
	if opts.BoardSize > 0 {
		size = opts.BoardSize
	}
	if size < 2 {
		size = 2
	}

	if opts.Assume {
		players := make([]Player, 0, len(cfg.Players))
		for _, pc := range cfg.Players {
			players = append(players, Player{Name: pc.Name, Symbol: firstRune(pc.Symbol, 'X')})
		}
		return size, players, nil
	}

	size, err := con.PromptInt("Enter board size (N for N×N board)", size, 2)
	if err != nil {
		return 0, nil, err
	}

	count, err := con.PromptInt("Enter number of players", len(cfg.Players), 2)
	if err != nil {
		return 0, nil, err
	}

	used := make(map[rune]bool)
	players := make([]Player, 0, count)
	for i := 0; i < count; i++ {
		defName := fmt.Sprintf("Player %d", i+1)
		if i < len(cfg.Players) {
			defName = cfg.Players[i].Name
		}
		name, err := con.PromptString(fmt.Sprintf("Enter name for Player %d", i+1), defName)
		if err != nil {
			return 0, nil, err
		}

		symbol, err := promptSymbol(con, name, i, cfg, used)
		if err != nil {
			return 0, nil, err
		}
		used[symbol] = true
		players = append(players, Player{Name: name, Symbol: symbol})
	}

	return size, players, nil
}

// promptSymbol asks for a unique single-character mark, reprompting until
// one is given.
func promptSymbol(con *cli.Console, name string, idx int, cfg config.TicTacToeConfig, used map[rune]bool) (rune, error) {
	def := defaultSymbol(idx, cfg, used)
	for {
		s, err := con.PromptString(fmt.Sprintf("Enter a single-character symbol for %s", name), string(def))
		if err != nil {
			return 0, err
		}
		runes := []rune(s)
		if len(runes) != 1 {
			con.Printf("  Symbol must be a single character!\n")
			continue
		}
		if used[runes[0]] {
			con.Printf("  Symbol already taken. Choose another.\n")
			continue
		}
		return runes[0], nil
	}
}

// defaultSymbol offers the config mark for this seat or the next free
// letter of the alphabet.
func defaultSymbol(idx int, cfg config.TicTacToeConfig, used map[rune]bool) rune {
	if idx < len(cfg.Players) {
		if r := firstRune(cfg.Players[idx].Symbol, 0); r != 0 && !used[r] {
			return r
		}
	}
	for r := 'A'; r <= 'Z'; r++ {
		if !used[r] {
			return r
		}
	}
	return '?'
}

func firstRune(s string, def rune) rune {
	for _, r := range s {
		return r
	}
	return def
}

// loop reads moves until a player wins or the board fills up.
func (r *Runner) loop(con *cli.Console, sess *Session) (core.Result, error) {
	result := core.Result{GameID: r.ID()}
	for _, p := range sess.players {
		result.Players = append(result.Players, p.Name)
	}

	for !sess.Finished() {
		con.Println()
		con.Printf("%s", cli.RenderGrid(sess.Board().Size(), sess.Board().At))

		current := sess.Current()
		con.Printf("\n%s's turn (%c)\n", current.Name, current.Symbol)

		row, err := con.PromptInt("Enter row (0-based index)", 0, 0)
		if err != nil {
			return result, fmt.Errorf("tictactoe: input closed mid-game: %w", err)
		}
		col, err := con.PromptInt("Enter column (0-based index)", 0, 0)
		if err != nil {
			return result, fmt.Errorf("tictactoe: input closed mid-game: %w", err)
		}

		report, err := sess.Move(row, col)
		switch {
		case errors.Is(err, ErrOutOfBounds):
			con.Println("Invalid move! Position out of range.")
			continue
		case errors.Is(err, ErrOccupied):
			con.Println("Cell already occupied! Try another move.")
			continue
		case err != nil:
			return result, err
		}

		if report.Won {
			con.Println()
			con.Printf("%s", cli.RenderGrid(sess.Board().Size(), sess.Board().At))
			con.Println()
			con.Println(cli.WinLine(report.Player.Name))
			result.Winner = report.Player.Name
		}
		if report.Draw {
			con.Println()
			con.Printf("%s", cli.RenderGrid(sess.Board().Size(), sess.Board().At))
			con.Println("\nIt's a draw!")
			result.Draw = true
		}
	}

	result.Turns = sess.Turns()
	return result, nil
}
