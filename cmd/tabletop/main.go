// tabletop is a terminal platform for turn-based board games.
//
// Usage:
//
//	tabletop list              - List available games
//	tabletop play <game>       - Play a game
//	tabletop menu              - Start menu to pick games interactively
//	tabletop scores <game>     - Show match history for a game
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible sessions
//	--db <path>     - Set database path (default: ~/.tabletop/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tabletop/internal/games/snakeladder"
	_ "github.com/vovakirdan/tui-tabletop/internal/games/tictactoe"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tabletop",
	Short: "Tabletop - Play turn-based board games in your terminal",
	Long: `Tabletop is a terminal platform for playing classic turn-based
board games against friends or simple computer opponents.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View match history

Examples:
  tabletop list
  tabletop play snakes
  tabletop play snakes --size 12 --overshoot bounce --cascade --seed 42
  tabletop menu
  tabletop scores snakes`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tabletop/matches.db", "Path to matches database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
