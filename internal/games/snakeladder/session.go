package snakeladder

import (
	"errors"
	"strings"

	"github.com/vovakirdan/tui-tabletop/internal/dice"
)

// ErrSessionOver is returned by TakeTurn after a player has already won.
var ErrSessionOver = errors.New("snakeladder: session already has a winner")

// ErrNeedPlayers is returned when a session is created with fewer than two
// players.
var ErrNeedPlayers = errors.New("snakeladder: need at least two players")

// Player is one participant. Position 0 means the player has not entered
// the board yet.
type Player struct {
	Name string
	Pos  int
}

// IsBot reports whether the player rolls automatically. Names starting
// with "computer" are bots, matching the CLI's default opponents.
func (p Player) IsBot() bool {
	return strings.HasPrefix(strings.ToLower(p.Name), "computer")
}

// TurnReport describes one completed turn for narration and bookkeeping.
type TurnReport struct {
	Player string
	Roll   int
	Events []Event
	NewPos int
	Won    bool
}

// Session runs one Snake & Ladder game. The link table is read-only after
// construction; only player positions mutate, one per completed turn.
type Session struct {
	players []Player
	rules   Rules
	links   LinkTable
	die     *dice.Dice
	turn    int
	winner  int // index into players, -1 while the game is running
}

// NewSession assembles a game from validated setup input.
func NewSession(names []string, rules Rules, links LinkTable, die *dice.Dice) (*Session, error) {
	if len(names) < 2 {
		return nil, ErrNeedPlayers
	}
	players := make([]Player, len(names))
	for i, name := range names {
		players[i] = Player{Name: name}
	}
	return &Session{
		players: players,
		rules:   rules,
		links:   links,
		die:     die,
		winner:  -1,
	}, nil
}

// Players returns a copy of the current standings.
func (s *Session) Players() []Player {
	out := make([]Player, len(s.players))
	copy(out, s.players)
	return out
}

// Rules returns the session's move-resolution policies.
func (s *Session) Rules() Rules {
	return s.rules
}

// Links returns the session's link table.
func (s *Session) Links() LinkTable {
	return s.links
}

// Current returns the player whose turn it is.
func (s *Session) Current() Player {
	return s.players[s.turn%len(s.players)]
}

// Winner returns the winning player, or nil while the game is running.
func (s *Session) Winner() *Player {
	if s.winner < 0 {
		return nil
	}
	p := s.players[s.winner]
	return &p
}

// Turns returns the number of completed turns.
func (s *Session) Turns() int {
	return s.turn
}

// Roll throws the session die for the current player.
func (s *Session) Roll() int {
	return s.die.Roll()
}

// TakeTurn resolves the given roll for the current player and advances the
// turn order. The roll is a parameter rather than drawn internally so tests
// can script exact sequences.
func (s *Session) TakeTurn(roll int) (TurnReport, error) {
	if s.winner >= 0 {
		return TurnReport{}, ErrSessionOver
	}

	idx := s.turn % len(s.players)
	p := &s.players[idx]

	out, err := Resolve(p.Pos, roll, s.rules, s.links)
	if err != nil {
		return TurnReport{}, err
	}

	p.Pos = out.NewPos
	s.turn++
	if out.Finished {
		s.winner = idx
	}

	return TurnReport{
		Player: p.Name,
		Roll:   roll,
		Events: out.Events,
		NewPos: out.NewPos,
		Won:    out.Finished,
	}, nil
}
