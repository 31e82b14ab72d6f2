// Package game declares the capability contract the search engine consumes.
// The engine knows nothing about board geometry or rules; it only drives
// states through legal actions until a terminal result.
package game

import (
	"errors"
	"fmt"
)

// ErrNotTerminal is returned by Game.Result when the queried state still has
// moves left to play.
var ErrNotTerminal = errors.New("game is not over yet")

// State is a mutable position snapshot owned by the game rules.
type State interface {
	// Player returns the zero-indexed player whose turn it is.
	Player() int

	// Clone returns an independent copy. The copy must not alias any
	// mutable substructure of the original: the engine mutates clones
	// freely during expansion and rollouts.
	Clone() State
}

// Action is an immutable value describing one legal move. Implementations
// must be comparable with ==; the engine relies on value equality to detect
// already-explored actions during expansion and as the key when merging
// trees grown by parallel workers.
type Action interface {
	fmt.Stringer
}

// Game supplies state transitions and termination queries for one rule set.
// The engine does not validate that a Game is internally consistent: a rule
// set that reports no legal actions on a live state will surface whatever
// runtime failure results.
type Game interface {
	// NewGame returns the starting state.
	NewGame() State

	// LegalActions lists every action the current player may take. An
	// empty slice means no move is available in this sub-phase;
	// termination is IsOver's business, not this method's.
	LegalActions(state State) []Action

	// Do applies action to state in place.
	Do(state State, action Action)

	// IsOver reports whether no more actions can be taken.
	IsOver(state State) bool

	// Result returns the zero-indexed winner of a completed game, or
	// ErrNotTerminal if the game is still in progress.
	Result(state State) (int, error)
}
