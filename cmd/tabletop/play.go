package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tabletop/internal/core"
	"github.com/vovakirdan/tui-tabletop/internal/platform/cli"
	"github.com/vovakirdan/tui-tabletop/internal/registry"
	"github.com/vovakirdan/tui-tabletop/internal/storage"
)

var (
	flagConfig    string
	flagSize      int
	flagPlayers   string
	flagSnakes    int
	flagLadders   int
	flagDiceSides int
	flagOvershoot string
	flagCascade   bool
	flagYes       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Setup prompts may override --size and --players at session start;
pass --yes to accept the flag/config defaults without prompting.

Examples:
  tabletop play snakes
  tabletop play snakes --size 12 --players "You,Alice,Computer 1"
  tabletop play snakes --overshoot bounce --cascade --seed 42
  tabletop play snakes-classic
  tabletop play tictactoe --size 4
  tabletop play snakes --config ./my-snakes.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board dimension N (board is N×N)")
	playCmd.Flags().StringVar(&flagPlayers, "players", "", "Comma-separated player names (names starting with \"Computer\" are bots)")
	playCmd.Flags().IntVar(&flagSnakes, "snakes", 0, "Number of snakes to auto-generate")
	playCmd.Flags().IntVar(&flagLadders, "ladders", 0, "Number of ladders to auto-generate")
	playCmd.Flags().IntVar(&flagDiceSides, "dice-sides", 0, "Dice faces (default from config, 6)")
	playCmd.Flags().StringVar(&flagOvershoot, "overshoot", "", "Overshoot behavior: stay or bounce")
	playCmd.Flags().BoolVar(&flagCascade, "cascade", false, "Apply snakes/ladders repeatedly (chain effects)")
	playCmd.Flags().BoolVar(&flagYes, "yes", false, "Accept defaults instead of prompting")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := playGame(args[0], cmd.Flags().Changed("cascade")); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs one session of the given game and records the result.
// Shared by the play and menu commands.
func playGame(gameID string, cascadeSet bool) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'tabletop list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tabletop"})

	opts := core.DefaultRunOptions()
	opts.Seed = flagSeed
	opts.ConfigPath = flagConfig
	opts.Assume = flagYes
	opts.BoardSize = flagSize
	opts.Players = cli.SplitNames(flagPlayers)
	opts.SnakeCount = flagSnakes
	opts.LadderCount = flagLadders
	opts.DiceSides = flagDiceSides
	opts.Overshoot = flagOvershoot
	opts.Cascade = flagCascade
	opts.CascadeSet = cascadeSet

	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		opts.Width = w
	}

	// Open match storage; the game still works without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open matches database, results will not be saved", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	result, runErr := game.Run(opts)
	if runErr != nil {
		return runErr
	}

	if store != nil && (result.Winner != "" || result.Draw) {
		rec := storage.MatchRecord{
			GameID:  result.GameID,
			Players: result.Players,
			Winner:  result.Winner,
			Turns:   result.Turns,
			Draw:    result.Draw,
		}
		if _, err := store.SaveMatch(rec); err != nil {
			logger.Warn("could not save match result", "err", err)
		}
	}

	return nil
}
