package tictactoe

import (
	"errors"
	"fmt"
)

// Session setup and play errors.
var (
	ErrSessionOver = errors.New("tictactoe: session already finished")
	ErrNeedPlayers = errors.New("tictactoe: need at least two players")
)

// Player is one participant with a unique board symbol.
type Player struct {
	Name   string
	Symbol rune
}

// MoveReport describes one accepted move.
type MoveReport struct {
	Player Player
	Row    int
	Col    int
	Won    bool
	Draw   bool
}

// Session runs one Tic-Tac-Toe game over an N×N board.
type Session struct {
	board    *Board
	players  []Player
	turn     int
	finished bool
	winner   int // index into players, -1 while running or on a draw
}

// NewSession assembles a game from validated setup input. Symbols must be
// unique; names and symbols come pre-validated from the setup layer.
func NewSession(size int, players []Player) (*Session, error) {
	if len(players) < 2 {
		return nil, ErrNeedPlayers
	}
	seen := make(map[rune]bool, len(players))
	for _, p := range players {
		if seen[p.Symbol] {
			return nil, fmt.Errorf("tictactoe: symbol %q used twice", p.Symbol)
		}
		seen[p.Symbol] = true
	}
	return &Session{
		board:   NewBoard(size),
		players: players,
		winner:  -1,
	}, nil
}

// Board exposes the grid for rendering.
func (s *Session) Board() *Board {
	return s.board
}

// Current returns the player whose turn it is.
func (s *Session) Current() Player {
	return s.players[s.turn%len(s.players)]
}

// Finished reports whether the game has ended.
func (s *Session) Finished() bool {
	return s.finished
}

// Winner returns the winning player, or nil while running or on a draw.
func (s *Session) Winner() *Player {
	if s.winner < 0 {
		return nil
	}
	p := s.players[s.winner]
	return &p
}

// Turns returns the number of accepted moves.
func (s *Session) Turns() int {
	return s.turn
}

// Move places the current player's symbol at (row, col). Invalid moves
// return an error and do not consume the turn.
func (s *Session) Move(row, col int) (MoveReport, error) {
	if s.finished {
		return MoveReport{}, ErrSessionOver
	}

	idx := s.turn % len(s.players)
	p := s.players[idx]

	if err := s.board.Place(row, col, p.Symbol); err != nil {
		return MoveReport{}, err
	}
	s.turn++

	report := MoveReport{Player: p, Row: row, Col: col}
	switch {
	case s.board.WinFor(p.Symbol):
		s.finished = true
		s.winner = idx
		report.Won = true
	case s.board.IsFull():
		s.finished = true
		report.Draw = true
	}
	return report, nil
}
