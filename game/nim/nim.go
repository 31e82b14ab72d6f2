// Package nim implements the heap game Nim against the engine's game
// contract. Players alternate taking 1..h counters from a single heap; the
// player who takes the last counter wins.
package nim

import (
	"fmt"

	"mogo/game"
)

// Action takes Take counters from heap Heap. Comparable by value, as the
// engine's action contract requires.
type Action struct {
	Heap int
	Take int
}

func (a Action) String() string {
	return fmt.Sprintf("take %d from heap %d", a.Take, a.Heap)
}

// State holds the remaining heaps and whose turn it is.
type State struct {
	Heaps         []int
	CurrentPlayer int
}

// NewState builds a position from explicit heaps, mainly for tests and
// experiments starting mid-game.
func NewState(heaps []int, currentPlayer int) *State {
	return &State{Heaps: heaps, CurrentPlayer: currentPlayer}
}

func (s *State) Player() int {
	return s.CurrentPlayer
}

func (s *State) Clone() game.State {
	heaps := make([]int, len(s.Heaps))
	copy(heaps, s.Heaps)
	return &State{Heaps: heaps, CurrentPlayer: s.CurrentPlayer}
}

func (s *State) String() string {
	return fmt.Sprintf("%v P%d", s.Heaps, s.CurrentPlayer)
}

// Game implements game.Game for Nim.
type Game struct{}

// NewGame starts with three heaps of 3, 4 and 5 counters.
func (Game) NewGame() game.State {
	return NewState([]int{3, 4, 5}, 0)
}

// LegalActions permits taking any number from 1 up to a heap's size, for
// every non-empty heap.
func (Game) LegalActions(state game.State) []game.Action {
	s := state.(*State)
	var actions []game.Action
	for heap, size := range s.Heaps {
		for take := 1; take <= size; take++ {
			actions = append(actions, Action{Heap: heap, Take: take})
		}
	}
	return actions
}

func (Game) Do(state game.State, action game.Action) {
	s := state.(*State)
	a := action.(Action)
	s.Heaps[a.Heap] -= a.Take
	s.CurrentPlayer = 1 - s.CurrentPlayer
}

// IsOver reports whether every heap is empty.
func (Game) IsOver(state game.State) bool {
	s := state.(*State)
	for _, size := range s.Heaps {
		if size > 0 {
			return false
		}
	}
	return true
}

// Result returns the winner of a finished game. The final take advanced the
// turn, so the winner is the previous player.
func (g Game) Result(state game.State) (int, error) {
	if !g.IsOver(state) {
		return 0, game.ErrNotTerminal
	}
	return 1 - state.(*State).CurrentPlayer, nil
}
