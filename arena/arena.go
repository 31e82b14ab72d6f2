// Package arena plays complete games between two search agents over any
// rule set implementing the game contract. Experiments use it to compare
// search configurations; it is also a convenient integration harness.
package arena

import (
	stderrors "errors"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"mogo/game"
)

// ErrMoveLimit is returned when a game exceeds the configured move limit,
// which guards experiment runs against non-terminating rule sets.
var ErrMoveLimit = stderrors.New("move limit exceeded")

// DefaultMoveLimit is generous: a full Dvonn game runs under 100 moves.
const DefaultMoveLimit = 300

// Searcher recommends a move for a state. *searcher.MCTS satisfies this.
type Searcher interface {
	Search(state game.State) (game.Action, error)
}

// MoveObserver is called after every played move with the 1-based move
// number and the player who made it.
type MoveObserver func(move, player int, action game.Action)

type Option func(a *Arena)

func WithMoveLimit(limit int) Option {
	return func(a *Arena) {
		if limit > 0 {
			a.moveLimit = limit
		}
	}
}

func WithMoveObserver(observer MoveObserver) Option {
	return func(a *Arena) {
		a.observer = observer
	}
}

// Arena runs one rule set with one agent per player index.
type Arena struct {
	game      game.Game
	agents    [2]Searcher
	moveLimit int
	observer  MoveObserver
}

func New(g game.Game, first, second Searcher, options ...Option) *Arena {
	a := &Arena{
		game:      g,
		agents:    [2]Searcher{first, second},
		moveLimit: DefaultMoveLimit,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Run plays a single game from the rule set's starting position until it is
// over, asking the agent whose turn it is for each move. It returns the
// winning player index and the number of moves played.
func (a *Arena) Run() (winner int, moves int, err error) {
	state := a.game.NewGame()

	for !a.game.IsOver(state) {
		if moves >= a.moveLimit {
			return 0, moves, errors.Wrapf(ErrMoveLimit, "after %d moves", moves)
		}

		player := state.Player()
		action, err := a.agents[player].Search(state)
		if err != nil {
			return 0, moves, errors.Wrapf(err, "player %d search failed at move %d", player, moves)
		}

		a.game.Do(state, action)
		moves++
		if a.observer != nil {
			a.observer(moves, player, action)
		}
		log.Debug().
			Int("move", moves).
			Int("player", player).
			Stringer("action", action).
			Msg("move played")
	}

	winner, err = a.game.Result(state)
	if err != nil {
		return 0, moves, errors.Wrap(err, "game over but no result")
	}
	return winner, moves, nil
}
