package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tabletop/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive game picker menu",
	Long: `Shows a menu of all available games. Pick one with the arrow keys
and Enter; the selected game then runs as a regular interactive session.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	gameID, err := tui.RunMenu()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if gameID == "" {
		return // User quit without choosing
	}

	if err := playGame(gameID, false); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
