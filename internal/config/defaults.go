package config

import (
	_ "embed"
)

//go:embed defaults/snakes.yaml
var defaultSnakesYAML []byte

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

// DefaultSnakesConfig returns the default Snake & Ladder configuration.
func DefaultSnakesConfig() SnakesConfig {
	return SnakesConfig{
		Board: SnakesBoard{
			Size:        10,
			Snakes:      0, // auto: max(5, N)
			Ladders:     0,
			AvoidMargin: 2,
		},
		Dice: DiceConfig{
			Sides: 6,
		},
		Rules: RulesConfig{
			Overshoot: "stay",
			Cascade:   false,
		},
	}
}

// DefaultTicTacToeConfig returns the default Tic-Tac-Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		Board: TicTacToeBoard{
			Size: 3,
		},
		Players: []PlayerConfig{
			{Name: "You", Symbol: "X"},
			{Name: "Computer 1", Symbol: "O"},
		},
	}
}
