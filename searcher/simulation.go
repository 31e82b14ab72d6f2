package searcher

import (
	"golang.org/x/exp/rand"

	"mogo/game"
)

// RandomSimulation is the default rollout policy: a legal action chosen
// uniformly at random. A rule set that reports no legal actions on a live
// state makes this panic; per the game contract that is the collaborator's
// bug and is not defended against.
type RandomSimulation struct{}

func (RandomSimulation) Action(g game.Game, state game.State) game.Action {
	actions := g.LegalActions(state)
	return actions[rand.Intn(len(actions))]
}
