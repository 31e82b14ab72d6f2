package searcher

import "mogo/game"

// The three policy roles are small single-method interfaces rather than bare
// function values so stateful or composable variants stay pluggable and
// mockable.

// SelectionPolicy picks which existing child to descend into during the
// selection phase. It is only consulted for nodes whose legal actions have
// all been expanded at least once, so every child has total >= 1.
type SelectionPolicy interface {
	Select(node *Node) *Node
}

// SimulationPolicy chooses one legal action during a rollout.
type SimulationPolicy interface {
	Action(g game.Game, state game.State) game.Action
}

// BackupPolicy folds a simulation result into one node's statistics. It is
// invoked once per node on the path from the simulated node to the root.
type BackupPolicy interface {
	Update(node *Node, winner int)
}
