package dvonn

import (
	"fmt"

	"mogo/game"
)

type ActionType int

const (
	Place ActionType = iota
	Move
)

// Action places a ring on To, or moves the whole stack at From onto To.
// Comparable by value, as the engine's action contract requires.
type Action struct {
	Type ActionType
	To   Pos
	From Pos // only meaningful for Move
}

func (a Action) String() string {
	if a.Type == Place {
		return fmt.Sprintf("place at (%d,%d)", a.To.Row, a.To.Col)
	}
	return fmt.Sprintf("move (%d,%d) to (%d,%d)", a.From.Row, a.From.Col, a.To.Row, a.To.Col)
}

// Supply tracks the rings a player has left to place.
type Supply struct {
	PlayerRings int
	DvonnRings  int
}

// State is the full position: board, supplies, mover, and the cached legal
// actions for the mover. Computing legal actions is also how the game
// detects forced passes and termination, so the game recomputes and caches
// them after every action instead of on demand.
type State struct {
	CurrentPlayer int
	Board         Board
	Players       [2]Supply

	legalActions []game.Action
}

func newState() *State {
	return &State{
		Board: NewBoard(),
		Players: [2]Supply{
			{PlayerRings: 23, DvonnRings: 2}, // white
			{PlayerRings: 23, DvonnRings: 1}, // black
		},
	}
}

func (s *State) Player() int {
	return s.CurrentPlayer
}

func (s *State) Clone() game.State {
	clone := *s
	clone.legalActions = make([]game.Action, len(s.legalActions))
	copy(clone.legalActions, s.legalActions)
	return &clone
}

// Game implements game.Game for Dvonn.
type Game struct{}

// NewGame returns the position right before white's first dvonn-ring
// placement.
func (g Game) NewGame() game.State {
	s := newState()
	s.legalActions = g.calculateLegalActions(s)
	return s
}

func (Game) LegalActions(state game.State) []game.Action {
	return state.(*State).legalActions
}

func (g Game) Do(state game.State, action game.Action) {
	s := state.(*State)
	a := action.(Action)
	switch a.Type {
	case Place:
		g.doPlace(s, a.To)
	case Move:
		g.doMove(s, a.From, a.To)
	}
	s.legalActions = g.calculateLegalActions(s)
}

// IsOver reports whether neither player has a legal action left.
func (Game) IsOver(state game.State) bool {
	return len(state.(*State).legalActions) == 0
}

// Result returns the player owning the most rings at the end; a buried ring
// counts for whoever owns the stack it sits in. Ties go to black.
func (g Game) Result(state game.State) (int, error) {
	if !g.IsOver(state) {
		return 0, game.ErrNotTerminal
	}

	s := state.(*State)
	white, black := 0, 0
	for row := range s.Board.Grid {
		for _, cell := range s.Board.Grid[row] {
			switch cell.Owner {
			case White:
				white += cell.Rings()
			case Black:
				black += cell.Rings()
			}
		}
	}
	if white > black {
		return 0, nil
	}
	return 1, nil
}

// calculateLegalActions lists the mover's actions. While the mover still has
// rings in supply the game is in the placement phase; afterwards only stack
// moves remain. A mover with no moves passes implicitly: the turn advances
// here and the opponent's moves are returned instead.
func (g Game) calculateLegalActions(s *State) []game.Action {
	if s.Players[s.CurrentPlayer].PlayerRings > 0 {
		return g.placeActions(s)
	}
	moves := g.moveActions(s)
	if len(moves) == 0 {
		s.CurrentPlayer = (s.CurrentPlayer + 1) % 2
		return g.moveActions(s)
	}
	return moves
}

// placeActions permits placing on any empty cell.
func (Game) placeActions(s *State) []game.Action {
	var actions []game.Action
	for row := range s.Board.Grid {
		for col, cell := range s.Board.Grid[row] {
			if cell.Owner == Empty {
				actions = append(actions, Action{Type: Place, To: Pos{Row: row, Col: col}})
			}
		}
	}
	return actions
}

// moveActions permits moving a stack the mover owns, if it is not fully
// surrounded, exactly stack-height cells onto another occupied cell.
func (Game) moveActions(s *State) []game.Action {
	var actions []game.Action
	for row := range s.Board.Grid {
		for col, cell := range s.Board.Grid[row] {
			from := Pos{Row: row, Col: col}
			if !cell.OwnedBy(s.CurrentPlayer) || s.Board.Surrounded(from) {
				continue
			}
			for _, to := range neighbours(from, cell.Rings()) {
				if s.Board.OnBoard(to) && s.Board.Grid[to.Row][to.Col].Occupied() {
					actions = append(actions, Action{Type: Move, From: from, To: to})
				}
			}
		}
	}
	return actions
}

func (Game) doPlace(s *State, to Pos) {
	cell := &s.Board.Grid[to.Row][to.Col]
	player := &s.Players[s.CurrentPlayer]

	// Dvonn rings go down before any player rings.
	if player.DvonnRings > 0 {
		player.DvonnRings--
		cell.DvonnRings = 1
		cell.Owner = Dvonn
	} else {
		player.PlayerRings--
		if s.CurrentPlayer == 0 {
			cell.WhiteRings = 1
			cell.Owner = White
		} else {
			cell.BlackRings = 1
			cell.Owner = Black
		}
	}

	// The player who placed last moves first, so the turn stops alternating
	// once both supplies are empty.
	next := &s.Players[(s.CurrentPlayer+1)%2]
	if player.PlayerRings > 0 || next.PlayerRings > 0 {
		s.CurrentPlayer = (s.CurrentPlayer + 1) % 2
	}
}

func (Game) doMove(s *State, from, to Pos) {
	src := &s.Board.Grid[from.Row][from.Col]
	dst := &s.Board.Grid[to.Row][to.Col]

	// The whole stack lands on top of the destination stack.
	dst.WhiteRings += src.WhiteRings
	dst.BlackRings += src.BlackRings
	dst.DvonnRings += src.DvonnRings
	dst.Owner = src.Owner
	*src = Cell{}

	s.Board.RemoveIsolatedRings()
	s.CurrentPlayer = (s.CurrentPlayer + 1) % 2
}
