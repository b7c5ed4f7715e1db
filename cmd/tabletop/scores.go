package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tabletop/internal/platform/tui"
	"github.com/vovakirdan/tui-tabletop/internal/registry"
	"github.com/vovakirdan/tui-tabletop/internal/storage"
)

var flagBrowse bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show match history for a game",
	Long: `Display win tallies and the most recent matches for the specified
game. Pass --browse to open the interactive history browser instead.

Examples:
  tabletop scores snakes
  tabletop scores tictactoe --browse`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive match browser")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening matches database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBrowse {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: specify a game, or pass --browse.")
		fmt.Fprintln(os.Stderr, "Run 'tabletop list' to see available games.")
		os.Exit(1)
	}
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tabletop list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Match history - %s\n\n", game.Title())

	wins, err := store.WinCounts(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving win counts: %v\n", err)
		os.Exit(1)
	}

	if len(wins) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tabletop play %s' to record the first match!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-20s  %s\n", "Rank", "Player", "Wins")
	fmt.Printf("  %-4s  %-20s  %s\n", "----", "------", "----")
	for i, wc := range wins {
		fmt.Printf("  %-4d  %-20s  %d\n", i+1, wc.Name, wc.Wins)
	}

	matches, err := store.RecentMatches(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Recent matches:")
	for _, rec := range matches {
		outcome := rec.Winner + " won"
		if rec.Draw {
			outcome = "draw"
		}
		fmt.Printf("  %s  %-30s  %s in %d turns\n",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			strings.Join(rec.Players, ", "),
			outcome,
			rec.Turns,
		)
	}
}
