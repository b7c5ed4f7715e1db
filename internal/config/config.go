// Package config provides YAML-based game configuration loading for the
// tabletop platform.
package config

// SnakesConfig contains all configuration for the Snake & Ladder games.
type SnakesConfig struct {
	Board SnakesBoard `yaml:"board"`
	Dice  DiceConfig  `yaml:"dice"`
	Rules RulesConfig `yaml:"rules"`
}

// SnakesBoard defines board dimensions and link generation parameters.
type SnakesBoard struct {
	Size        int `yaml:"size"`         // Board dimension N (board is N×N)
	Snakes      int `yaml:"snakes"`       // Snakes to generate (0 = max(5, N))
	Ladders     int `yaml:"ladders"`      // Ladders to generate (0 = max(5, N))
	AvoidMargin int `yaml:"avoid_margin"` // Link-free cells after 1 and before N²
}

// DiceConfig defines the die used for rolls.
type DiceConfig struct {
	Sides int `yaml:"sides"`
}

// RulesConfig defines the move-resolution policies.
type RulesConfig struct {
	Overshoot string `yaml:"overshoot"` // "stay" or "bounce"
	Cascade   bool   `yaml:"cascade"`   // Follow link chains repeatedly
}

// TicTacToeConfig contains all configuration for generalized Tic-Tac-Toe.
type TicTacToeConfig struct {
	Board   TicTacToeBoard `yaml:"board"`
	Players []PlayerConfig `yaml:"players"`
}

// TicTacToeBoard defines the grid size.
type TicTacToeBoard struct {
	Size int `yaml:"size"`
}

// PlayerConfig names a default player and their mark.
type PlayerConfig struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}
